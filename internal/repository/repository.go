// Package repository provides data access layer implementations for the application.
// Every interface has a GORM implementation and a MongoDB implementation.
package repository

import (
	"context"
	"errors"

	"syahi/internal/models"
)

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// CoupletRepository defines the interface for couplet data operations
type CoupletRepository interface {
	Create(ctx context.Context, couplet *models.Couplet) error
	GetByID(ctx context.Context, id string) (*models.Couplet, error)
	ListPublic(ctx context.Context) ([]*models.Couplet, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Couplet, error)
	Delete(ctx context.Context, id string) error
	// ToggleVisibility flips isPublic in a single update.
	ToggleVisibility(ctx context.Context, id string) (*models.Couplet, error)
	// ToggleLike adds or removes userID from the like set and reports the new membership.
	ToggleLike(ctx context.Context, id, userID string) (*models.Couplet, bool, error)
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	ListPublic(ctx context.Context) ([]*models.Blog, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error)
	Delete(ctx context.Context, id string) error
	ToggleVisibility(ctx context.Context, id string) (*models.Blog, error)
	ToggleLike(ctx context.Context, id, userID string) (*models.Blog, bool, error)
}

// ProblemRepository defines the interface for problems and their owned answers
type ProblemRepository interface {
	Create(ctx context.Context, problem *models.Problem) error
	GetByID(ctx context.Context, id string) (*models.Problem, error)
	List(ctx context.Context) ([]*models.Problem, error)
	// Delete removes the problem together with all of its answers.
	Delete(ctx context.Context, id string) error
	AddAnswer(ctx context.Context, problemID string, answer *models.Answer) (*models.Problem, error)
	RemoveAnswer(ctx context.Context, problemID, answerID string) (*models.Problem, error)
}

// BouquetRepository defines the interface for bouquet data operations
type BouquetRepository interface {
	Create(ctx context.Context, bouquet *models.Bouquet) error
	// GetByID returns the bouquet with its attached couplet expanded.
	GetByID(ctx context.Context, id string) (*models.Bouquet, error)
	ListPublic(ctx context.Context, limit int) ([]*models.Bouquet, error)
	ListBySender(ctx context.Context, senderID string) ([]*models.Bouquet, error)
	Delete(ctx context.Context, id string) error
}

// FlowerRepository defines the interface for flower data operations
type FlowerRepository interface {
	Create(ctx context.Context, flower *models.Flower) error
	GetByID(ctx context.Context, id string) (*models.Flower, error)
	List(ctx context.Context, limit int) ([]*models.Flower, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Backend  string
	Users    UserRepository
	Couplets CoupletRepository
	Blogs    BlogRepository
	Problems ProblemRepository
	Bouquets BouquetRepository
	Flowers  FlowerRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backing store answers.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
