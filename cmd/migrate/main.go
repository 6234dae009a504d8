// Command migrate applies the store schema. The server only migrates on
// startup outside production.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"syahi/internal/config"
	"syahi/internal/database"
	"syahi/internal/observability"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}
	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	if cmd != "up" && cmd != "status" {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DBDriver == config.DriverMongo {
		return migrateMongo(cfg, cmd, logger)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	missing, err := database.MissingTables(db)
	if err != nil {
		return fmt.Errorf("schema status failed: %w", err)
	}

	switch cmd {
	case "status":
		logger.Info("schema status", zap.String("driver", cfg.DBDriver), zap.Strings("missing_tables", missing))
	case "up":
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("schema applied", zap.String("driver", cfg.DBDriver), zap.Strings("created_tables", missing))
	}
	return nil
}

// Collections are created on first write; connecting ensures the indexes.
func migrateMongo(cfg *config.Config, cmd string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, client, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	logger.Info("mongo indexes ensured", zap.String("command", cmd), zap.String("database", cfg.MongoDatabase))
	return nil
}
