package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/repository"
)

type FlowerService struct {
	flowerRepo repository.FlowerRepository
}

type CreateFlowerInput struct {
	Sender     Author
	Content    string
	FlowerType string
	Receiver   string
}

type DeleteFlowerInput struct {
	UserID   string
	FlowerID string
}

func NewFlowerService(flowerRepo repository.FlowerRepository) *FlowerService {
	return &FlowerService{flowerRepo: flowerRepo}
}

func (s *FlowerService) Create(ctx context.Context, in CreateFlowerInput) (*models.Flower, error) {
	content := trimmed(in.Content)
	if content == "" {
		return nil, models.NewValidationError("A flower needs words to bloom")
	}
	if utf8.RuneCountInString(content) > models.MaxFlowerContentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Content too long (max %d characters)", models.MaxFlowerContentLen))
	}

	flowerType := trimmed(in.FlowerType)
	if flowerType == "" {
		flowerType = models.FlowerRose
	}
	if !models.IsValidFlower(flowerType) {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown flower %q", flowerType))
	}

	receiver := trimmed(in.Receiver)
	if receiver == "" {
		receiver = models.DefaultReceiver
	}
	if err := maxLen("Receiver", receiver, models.MaxReceiverLen); err != nil {
		return nil, err
	}

	flower := &models.Flower{
		Content:    content,
		FlowerType: flowerType,
		SenderID:   in.Sender.ID,
		SenderName: in.Sender.Username,
		Receiver:   receiver,
	}
	if err := s.flowerRepo.Create(ctx, flower); err != nil {
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("flower").Inc()
	invalidate(ctx, cache.FlowersKey)
	return flower, nil
}

// List returns the newest flowers in the garden.
func (s *FlowerService) List(ctx context.Context) ([]*models.Flower, error) {
	return cachedList(ctx, cache.FlowersKey, func() ([]*models.Flower, error) {
		return s.flowerRepo.List(ctx, models.FlowerFeedLimit)
	})
}

func (s *FlowerService) Delete(ctx context.Context, in DeleteFlowerInput) error {
	flower, err := s.flowerRepo.GetByID(ctx, in.FlowerID)
	if err != nil {
		if models.IsNotFound(err) {
			return models.NewNotFoundMessage("The flower has already withered")
		}
		return err
	}
	if flower.SenderID != in.UserID {
		return models.NewUnauthorizedError("User not authorized to wither this flower")
	}

	if err := s.flowerRepo.Delete(ctx, in.FlowerID); err != nil {
		return err
	}
	invalidate(ctx, cache.FlowersKey)
	return nil
}
