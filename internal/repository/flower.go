package repository

import (
	"context"
	"time"

	"syahi/internal/models"

	"gorm.io/gorm"
)

// flowerRepository implements FlowerRepository
type flowerRepository struct {
	db *gorm.DB
}

// NewFlowerRepository creates a new flower repository
func NewFlowerRepository(db *gorm.DB) FlowerRepository {
	return &flowerRepository{db: db}
}

func (r *flowerRepository) Create(ctx context.Context, flower *models.Flower) error {
	defer track(backendSQL, "flowers.create")()
	if flower.ID == "" {
		flower.ID = models.NewID()
	}
	if flower.CreatedAt.IsZero() {
		flower.CreatedAt = time.Now().UTC()
	}
	return translate(r.db.WithContext(ctx).Create(flower).Error, "Flower", flower.ID)
}

func (r *flowerRepository) GetByID(ctx context.Context, id string) (*models.Flower, error) {
	defer track(backendSQL, "flowers.get")()
	var flower models.Flower
	if err := r.db.WithContext(ctx).First(&flower, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Flower", id)
	}
	return &flower, nil
}

func (r *flowerRepository) List(ctx context.Context, limit int) ([]*models.Flower, error) {
	defer track(backendSQL, "flowers.list")()
	var flowers []*models.Flower
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&flowers).Error
	if err != nil {
		return nil, translate(err, "Flower", "")
	}
	return flowers, nil
}

func (r *flowerRepository) Delete(ctx context.Context, id string) error {
	defer track(backendSQL, "flowers.delete")()
	res := r.db.WithContext(ctx).Delete(&models.Flower{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "Flower", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Flower", id)
	}
	return nil
}
