// Command seed fills the configured store with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"syahi/internal/config"
	"syahi/internal/observability"
	"syahi/internal/seed"
	"syahi/internal/server"

	"go.uber.org/zap"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	couplets := flag.Int("couplets", defaults.CoupletsPerUser, "Couplets per user")
	blogs := flag.Int("blogs", defaults.BlogsPerUser, "Blogs per user")
	problems := flag.Int("problems", defaults.Problems, "Number of problems to create")
	bouquets := flag.Int("bouquets", defaults.Bouquets, "Number of bouquets to create")
	flowers := flag.Int("flowers", defaults.Flowers, "Number of flowers to create")
	likes := flag.Int("likes", defaults.LikesPerDoc, "Maximum likes per public couplet or blog")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := server.OpenStore(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	ctx := context.Background()
	defer func() { _ = store.Close(ctx) }()

	s, err := seed.NewSeeder(store, seed.Options{
		Users:           *numUsers,
		CoupletsPerUser: *couplets,
		BlogsPerUser:    *blogs,
		Problems:        *problems,
		Bouquets:        *bouquets,
		Flowers:         *flowers,
		LikesPerDoc:     *likes,
		Seed:            *randSeed,
	})
	if err != nil {
		logger.Fatal("Failed to build seeder", zap.Error(err))
	}

	if _, err := s.Run(ctx); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("All seeded users share one password", zap.String("password", seed.DefaultPassword))
}
