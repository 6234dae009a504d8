package seed

import (
	"context"
	"fmt"

	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/repository"

	"go.uber.org/zap"
)

// Options controls how much data Run creates.
type Options struct {
	Users           int
	CoupletsPerUser int
	BlogsPerUser    int
	Problems        int
	Bouquets        int
	Flowers         int
	// LikesPerDoc caps how many users like each public couplet or blog.
	LikesPerDoc int
	Seed        int64
}

// DefaultOptions returns a small but lively dataset.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		CoupletsPerUser: 4,
		BlogsPerUser:    2,
		Problems:        10,
		Bouquets:        15,
		Flowers:         20,
		LikesPerDoc:     5,
	}
}

// Summary counts what Run created.
type Summary struct {
	Users, Couplets, Blogs, Problems, Bouquets, Flowers, Likes int
}

// Seeder fills a store with demo data.
type Seeder struct {
	store   *repository.Store
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder writing to store.
func NewSeeder(store *repository.Store, opts Options) (*Seeder, error) {
	f, err := NewFactory(store, opts.Seed)
	if err != nil {
		return nil, err
	}
	return &Seeder{store: store, factory: f, opts: opts}, nil
}

// Run creates users first and then content that references them.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	log := observability.FromContext(ctx)
	sum := &Summary{}

	if s.opts.Users <= 0 {
		return nil, fmt.Errorf("at least one user is required")
	}

	users := make([]*models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		u, err := s.factory.CreateUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	sum.Users = len(users)
	log.Info("seeded users", zap.Int("count", sum.Users))

	var couplets []*models.Couplet
	var blogs []*models.Blog
	for _, u := range users {
		for i := 0; i < s.opts.CoupletsPerUser; i++ {
			c, err := s.factory.CreateCouplet(ctx, u)
			if err != nil {
				return nil, fmt.Errorf("create couplet: %w", err)
			}
			couplets = append(couplets, c)
		}
		for i := 0; i < s.opts.BlogsPerUser; i++ {
			b, err := s.factory.CreateBlog(ctx, u)
			if err != nil {
				return nil, fmt.Errorf("create blog: %w", err)
			}
			blogs = append(blogs, b)
		}
	}
	sum.Couplets, sum.Blogs = len(couplets), len(blogs)

	likes, err := s.like(ctx, users, couplets, blogs)
	if err != nil {
		return nil, err
	}
	sum.Likes = likes

	for i := 0; i < s.opts.Problems; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		if _, err := s.factory.CreateProblem(ctx, author, users); err != nil {
			return nil, fmt.Errorf("create problem: %w", err)
		}
		sum.Problems++
	}

	for i := 0; i < s.opts.Bouquets; i++ {
		sender := users[s.factory.rng.Intn(len(users))]
		if _, err := s.factory.CreateBouquet(ctx, sender, couplets); err != nil {
			return nil, fmt.Errorf("create bouquet: %w", err)
		}
		sum.Bouquets++
	}

	for i := 0; i < s.opts.Flowers; i++ {
		sender := users[s.factory.rng.Intn(len(users))]
		if _, err := s.factory.CreateFlower(ctx, sender); err != nil {
			return nil, fmt.Errorf("create flower: %w", err)
		}
		sum.Flowers++
	}

	log.Info("seeding complete",
		zap.Int("couplets", sum.Couplets),
		zap.Int("blogs", sum.Blogs),
		zap.Int("problems", sum.Problems),
		zap.Int("bouquets", sum.Bouquets),
		zap.Int("flowers", sum.Flowers),
		zap.Int("likes", sum.Likes),
	)
	return sum, nil
}

// like has a random subset of users like each public couplet and blog.
func (s *Seeder) like(ctx context.Context, users []*models.User, couplets []*models.Couplet, blogs []*models.Blog) (int, error) {
	if s.opts.LikesPerDoc <= 0 {
		return 0, nil
	}
	total := 0
	pick := func() []*models.User {
		n := s.factory.rng.Intn(s.opts.LikesPerDoc + 1)
		if n > len(users) {
			n = len(users)
		}
		perm := s.factory.rng.Perm(len(users))[:n]
		out := make([]*models.User, n)
		for i, idx := range perm {
			out[i] = users[idx]
		}
		return out
	}

	for _, c := range couplets {
		if !c.IsPublic {
			continue
		}
		for _, u := range pick() {
			if _, _, err := s.store.Couplets.ToggleLike(ctx, c.ID, u.ID); err != nil {
				return total, fmt.Errorf("like couplet: %w", err)
			}
			total++
		}
	}
	for _, b := range blogs {
		if !b.IsPublic {
			continue
		}
		for _, u := range pick() {
			if _, _, err := s.store.Blogs.ToggleLike(ctx, b.ID, u.ID); err != nil {
				return total, fmt.Errorf("like blog: %w", err)
			}
			total++
		}
	}
	return total, nil
}
