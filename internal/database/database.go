// Package database handles store connections and migrations.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"syahi/internal/config"
	"syahi/internal/models"
	"syahi/internal/observability"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger routes GORM logs through zap and ignores ErrRecordNotFound.
type GormLogger struct {
	Config logger.Config
}

// NewGormLogger returns a GormLogger reporting queries slower than 200ms.
func NewGormLogger() *GormLogger {
	return &GormLogger{
		Config: logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	}
}

// LogMode sets the logging level and returns a new interface instance.
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newlogger := *l
	newlogger.Config.LogLevel = level
	return &newlogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= logger.Info {
		observability.FromContext(ctx).Info(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= logger.Warn {
		observability.FromContext(ctx).Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= logger.Error {
		observability.FromContext(ctx).Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed and slow queries, and every query at Info level.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Config.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := observability.FromContext(ctx)

	switch {
	case err != nil && l.Config.LogLevel >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("GORM query error",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	case elapsed > l.Config.SlowThreshold && l.Config.SlowThreshold != 0 && l.Config.LogLevel >= logger.Warn:
		log.Warn("GORM slow query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	case l.Config.LogLevel >= logger.Info:
		log.Info("GORM query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	}
}

// PostgresDSN builds the connection string for the postgres driver.
func PostgresDSN(cfg *config.Config) string {
	sslMode := cfg.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		sslMode,
	)
}

// GormConfig is shared by every relational connection, including tests.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
	}
}

// ConnectOptions controls what happens after the connection opens.
type ConnectOptions struct {
	// ApplySchema runs Migrate once connected.
	ApplySchema bool
}

// Connect opens the relational store selected by cfg.DBDriver and returns the gorm DB instance.
// Outside production the schema is migrated on connect; production deployments run cmd/migrate.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return ConnectWithOptions(cfg, ConnectOptions{ApplySchema: !cfg.IsProduction()})
}

// ConnectWithOptions is Connect with explicit control over schema application.
func ConnectWithOptions(cfg *config.Config, opts ConnectOptions) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres, "":
		dialector = postgres.Open(PostgresDSN(cfg))
	default:
		return nil, fmt.Errorf("driver %q is not relational", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	observability.Logger.Info("Database connected successfully", zap.String("driver", cfg.DBDriver))

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		if cfg.DBDriver == config.DriverSQLite {
			// sqlite serializes writers; one connection also keeps :memory: databases shared.
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if opts.ApplySchema {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		observability.Logger.Info("Database migration completed")
	}

	return db, nil
}

func schemaModels() []any {
	return []any{
		&models.User{},
		&models.Couplet{},
		&models.Blog{},
		&models.Problem{},
		&models.Answer{},
		&models.Bouquet{},
		&models.Flower{},
		&models.Like{},
	}
}

// Migrate creates or updates every table used by the relational backend.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(schemaModels()...)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// MissingTables lists the tables Migrate would create.
func MissingTables(db *gorm.DB) ([]string, error) {
	var missing []string
	for _, model := range schemaModels() {
		if db.Migrator().HasTable(model) {
			continue
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse %T: %w", model, err)
		}
		missing = append(missing, stmt.Schema.Table)
	}
	return missing, nil
}
