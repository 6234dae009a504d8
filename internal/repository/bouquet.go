package repository

import (
	"context"
	"time"

	"syahi/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bouquetRepository implements BouquetRepository
type bouquetRepository struct {
	db *gorm.DB
}

// NewBouquetRepository creates a new bouquet repository
func NewBouquetRepository(db *gorm.DB) BouquetRepository {
	return &bouquetRepository{db: db}
}

func (r *bouquetRepository) Create(ctx context.Context, bouquet *models.Bouquet) error {
	defer track(backendSQL, "bouquets.create")()
	if bouquet.ID == "" {
		bouquet.ID = models.NewID()
	}
	if bouquet.CreatedAt.IsZero() {
		bouquet.CreatedAt = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(bouquet).Error
	return translate(err, "Bouquet", bouquet.ID)
}

// GetByID expands the attached couplet. A reference to a couplet that no
// longer exists leaves AttachedShayari nil.
func (r *bouquetRepository) GetByID(ctx context.Context, id string) (*models.Bouquet, error) {
	defer track(backendSQL, "bouquets.get")()
	var bouquet models.Bouquet
	if err := r.db.WithContext(ctx).Preload("AttachedShayari").First(&bouquet, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Bouquet", id)
	}
	if bouquet.AttachedShayari == nil {
		bouquet.AttachedShayariID = nil
	} else {
		likes, err := loadLikes(ctx, r.db, models.LikeTargetCouplet, []string{bouquet.AttachedShayari.ID})
		if err != nil {
			return nil, translate(err, "Bouquet", id)
		}
		bouquet.AttachedShayari.Likes = emptyIfNil(likes[bouquet.AttachedShayari.ID])
	}
	return &bouquet, nil
}

func (r *bouquetRepository) ListPublic(ctx context.Context, limit int) ([]*models.Bouquet, error) {
	defer track(backendSQL, "bouquets.list_public")()
	var bouquets []*models.Bouquet
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&bouquets).Error
	if err != nil {
		return nil, translate(err, "Bouquet", "")
	}
	return bouquets, nil
}

func (r *bouquetRepository) ListBySender(ctx context.Context, senderID string) ([]*models.Bouquet, error) {
	defer track(backendSQL, "bouquets.list_by_sender")()
	var bouquets []*models.Bouquet
	err := r.db.WithContext(ctx).
		Where("sender = ?", senderID).
		Order("created_at DESC").
		Find(&bouquets).Error
	if err != nil {
		return nil, translate(err, "Bouquet", "")
	}
	return bouquets, nil
}

func (r *bouquetRepository) Delete(ctx context.Context, id string) error {
	defer track(backendSQL, "bouquets.delete")()
	res := r.db.WithContext(ctx).Delete(&models.Bouquet{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "Bouquet", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Bouquet", id)
	}
	return nil
}
