package service

import (
	"context"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/repository"
)

type CoupletService struct {
	coupletRepo repository.CoupletRepository
}

type CreateCoupletInput struct {
	Author   Author
	Content  string
	IsPublic *bool
}

// CoupletActionInput names a couplet and the caller acting on it.
type CoupletActionInput struct {
	UserID    string
	CoupletID string
}

func NewCoupletService(coupletRepo repository.CoupletRepository) *CoupletService {
	return &CoupletService{coupletRepo: coupletRepo}
}

// Create stores a couplet stamped with the caller. isPublic defaults to true.
func (s *CoupletService) Create(ctx context.Context, in CreateCoupletInput) (*models.Couplet, error) {
	content := trimmed(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	couplet := &models.Couplet{
		Content:    content,
		AuthorID:   in.Author.ID,
		AuthorName: in.Author.Username,
		IsPublic:   boolOr(in.IsPublic, true),
		Likes:      []string{},
	}
	if err := s.coupletRepo.Create(ctx, couplet); err != nil {
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("couplet").Inc()
	if couplet.IsPublic {
		invalidate(ctx, cache.PublicCoupletsKey)
	}
	return couplet, nil
}

func (s *CoupletService) ListPublic(ctx context.Context) ([]*models.Couplet, error) {
	return cachedList(ctx, cache.PublicCoupletsKey, func() ([]*models.Couplet, error) {
		return s.coupletRepo.ListPublic(ctx)
	})
}

func (s *CoupletService) ListByAuthor(ctx context.Context, authorID string) ([]*models.Couplet, error) {
	return s.coupletRepo.ListByAuthor(ctx, authorID)
}

// owned loads the couplet and checks that userID wrote it.
func (s *CoupletService) owned(ctx context.Context, in CoupletActionInput) (*models.Couplet, error) {
	couplet, err := s.coupletRepo.GetByID(ctx, in.CoupletID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("Couplet not found")
		}
		return nil, err
	}
	if couplet.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("User not authorized to change this couplet")
	}
	return couplet, nil
}

func (s *CoupletService) Delete(ctx context.Context, in CoupletActionInput) error {
	if _, err := s.owned(ctx, in); err != nil {
		return err
	}
	if err := s.coupletRepo.Delete(ctx, in.CoupletID); err != nil {
		return err
	}
	// Deleting detaches the couplet from bouquets, so the cached public bouquets are stale too.
	invalidate(ctx, cache.PublicCoupletsKey, cache.PublicBouquetsKey)
	return nil
}

func (s *CoupletService) ToggleVisibility(ctx context.Context, in CoupletActionInput) (*models.Couplet, error) {
	if _, err := s.owned(ctx, in); err != nil {
		return nil, err
	}
	couplet, err := s.coupletRepo.ToggleVisibility(ctx, in.CoupletID)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, cache.PublicCoupletsKey)
	return couplet, nil
}

// ToggleLike flips the caller's membership in the couplet's likes.
func (s *CoupletService) ToggleLike(ctx context.Context, in CoupletActionInput) (*models.Couplet, error) {
	couplet, liked, err := s.coupletRepo.ToggleLike(ctx, in.CoupletID, in.UserID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("Couplet not found")
		}
		return nil, err
	}
	observability.LikesToggled.WithLabelValues("couplet", likeAction(liked)).Inc()
	if couplet.IsPublic {
		invalidate(ctx, cache.PublicCoupletsKey)
	}
	return couplet, nil
}
