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

type BouquetService struct {
	bouquetRepo repository.BouquetRepository
	coupletRepo repository.CoupletRepository
}

type CreateBouquetInput struct {
	Sender          Author
	Flowers         []string
	Message         string
	Receiver        string
	AttachedShayari string
	IsPublic        *bool
	SpotifyURL      string
	MusicData       *models.MusicData
	CakeType        string
}

type DeleteBouquetInput struct {
	UserID    string
	BouquetID string
}

func NewBouquetService(bouquetRepo repository.BouquetRepository, coupletRepo repository.CoupletRepository) *BouquetService {
	return &BouquetService{bouquetRepo: bouquetRepo, coupletRepo: coupletRepo}
}

// Create validates and stores a bouquet. isPublic defaults to false: a
// bouquet is shared by link unless the sender opts into the public listing.
func (s *BouquetService) Create(ctx context.Context, in CreateBouquetInput) (*models.Bouquet, error) {
	if len(in.Flowers) == 0 {
		return nil, models.NewValidationError("A bouquet needs flowers to bloom")
	}
	if len(in.Flowers) > models.MaxBouquetFlowers {
		return nil, models.NewValidationError(fmt.Sprintf("A bouquet holds at most %d flowers", models.MaxBouquetFlowers))
	}
	for _, f := range in.Flowers {
		if !models.IsValidFlower(f) {
			return nil, models.NewValidationError(fmt.Sprintf("Unknown flower %q", f))
		}
	}

	message := trimmed(in.Message)
	if message == "" {
		return nil, models.NewValidationError("A bouquet needs words to carry")
	}
	if utf8.RuneCountInString(message) > models.MaxBouquetMessageLen {
		return nil, models.NewValidationError(fmt.Sprintf("Message too long (max %d characters)", models.MaxBouquetMessageLen))
	}

	cakeType := trimmed(in.CakeType)
	if cakeType != "" && !models.IsValidCake(cakeType) {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown cake %q", cakeType))
	}

	receiver := trimmed(in.Receiver)
	if receiver == "" {
		receiver = models.DefaultReceiver
	}
	if err := maxLen("Receiver", receiver, models.MaxReceiverLen); err != nil {
		return nil, err
	}
	spotifyURL := trimmed(in.SpotifyURL)
	if err := maxLen("Spotify URL", spotifyURL, models.MaxSpotifyURLLen); err != nil {
		return nil, err
	}

	bouquet := &models.Bouquet{
		Flowers:    append([]string(nil), in.Flowers...),
		Message:    message,
		SenderID:   in.Sender.ID,
		SenderName: in.Sender.Username,
		Receiver:   receiver,
		IsPublic:   boolOr(in.IsPublic, false),
		SpotifyURL: spotifyURL,
		MusicData:  in.MusicData,
		CakeType:   cakeType,
	}

	if ref := trimmed(in.AttachedShayari); ref != "" {
		if _, err := s.coupletRepo.GetByID(ctx, ref); err != nil {
			if models.IsNotFound(err) {
				return nil, models.NewValidationError("Attached couplet does not exist")
			}
			return nil, err
		}
		bouquet.AttachedShayariID = &ref
	}

	if err := s.bouquetRepo.Create(ctx, bouquet); err != nil {
		return nil, err
	}

	observability.ContentCreated.WithLabelValues("bouquet").Inc()
	if bouquet.IsPublic {
		invalidate(ctx, cache.PublicBouquetsKey)
	}
	return bouquet, nil
}

// ListPublic returns the most recent public bouquets without expanding attachments.
func (s *BouquetService) ListPublic(ctx context.Context) ([]*models.Bouquet, error) {
	return cachedList(ctx, cache.PublicBouquetsKey, func() ([]*models.Bouquet, error) {
		return s.bouquetRepo.ListPublic(ctx, models.PublicBouquetLimit)
	})
}

func (s *BouquetService) ListBySender(ctx context.Context, senderID string) ([]*models.Bouquet, error) {
	return s.bouquetRepo.ListBySender(ctx, senderID)
}

// Get returns any bouquet by ID regardless of isPublic.
func (s *BouquetService) Get(ctx context.Context, id string) (*models.Bouquet, error) {
	bouquet, err := s.bouquetRepo.GetByID(ctx, id)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewNotFoundMessage("The bouquet has withered and vanished")
		}
		return nil, err
	}
	return bouquet, nil
}

func (s *BouquetService) Delete(ctx context.Context, in DeleteBouquetInput) error {
	bouquet, err := s.bouquetRepo.GetByID(ctx, in.BouquetID)
	if err != nil {
		if models.IsNotFound(err) {
			return models.NewNotFoundMessage("Bouquet not found")
		}
		return err
	}
	if bouquet.SenderID != in.UserID {
		return models.NewUnauthorizedError("Not authorized to wither this bouquet")
	}

	if err := s.bouquetRepo.Delete(ctx, in.BouquetID); err != nil {
		return err
	}
	if bouquet.IsPublic {
		invalidate(ctx, cache.PublicBouquetsKey)
	}
	return nil
}
