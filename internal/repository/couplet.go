package repository

import (
	"context"
	"time"

	"syahi/internal/models"

	"gorm.io/gorm"
)

// coupletRepository implements CoupletRepository
type coupletRepository struct {
	db *gorm.DB
}

// NewCoupletRepository creates a new couplet repository
func NewCoupletRepository(db *gorm.DB) CoupletRepository {
	return &coupletRepository{db: db}
}

func (r *coupletRepository) Create(ctx context.Context, couplet *models.Couplet) error {
	defer track(backendSQL, "couplets.create")()
	if couplet.ID == "" {
		couplet.ID = models.NewID()
	}
	if couplet.CreatedAt.IsZero() {
		couplet.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(couplet).Error; err != nil {
		return translate(err, "Couplet", couplet.ID)
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	return nil
}

func (r *coupletRepository) GetByID(ctx context.Context, id string) (*models.Couplet, error) {
	defer track(backendSQL, "couplets.get")()
	var couplet models.Couplet
	if err := r.db.WithContext(ctx).First(&couplet, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Couplet", id)
	}
	if err := r.hydrate(ctx, []*models.Couplet{&couplet}); err != nil {
		return nil, translate(err, "Couplet", id)
	}
	return &couplet, nil
}

func (r *coupletRepository) ListPublic(ctx context.Context) ([]*models.Couplet, error) {
	defer track(backendSQL, "couplets.list_public")()
	return r.list(ctx, r.db.WithContext(ctx).Where("is_public = ?", true))
}

func (r *coupletRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Couplet, error) {
	defer track(backendSQL, "couplets.list_by_author")()
	return r.list(ctx, r.db.WithContext(ctx).Where("author = ?", authorID))
}

func (r *coupletRepository) list(ctx context.Context, query *gorm.DB) ([]*models.Couplet, error) {
	var couplets []*models.Couplet
	if err := query.Order("created_at DESC").Find(&couplets).Error; err != nil {
		return nil, translate(err, "Couplet", "")
	}
	if err := r.hydrate(ctx, couplets); err != nil {
		return nil, translate(err, "Couplet", "")
	}
	return couplets, nil
}

// Delete removes the couplet, its likes, and detaches it from any bouquet.
func (r *coupletRepository) Delete(ctx context.Context, id string) error {
	defer track(backendSQL, "couplets.delete")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLikes(tx, models.LikeTargetCouplet, id); err != nil {
			return err
		}
		if err := tx.Model(&models.Bouquet{}).
			Where("attached_shayari = ?", id).
			Update("attached_shayari", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Couplet{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "Couplet", id)
}

func (r *coupletRepository) ToggleVisibility(ctx context.Context, id string) (*models.Couplet, error) {
	defer track(backendSQL, "couplets.toggle_visibility")()
	res := r.db.WithContext(ctx).Model(&models.Couplet{}).
		Where("id = ?", id).
		Update("is_public", gorm.Expr("NOT is_public"))
	if res.Error != nil {
		return nil, translate(res.Error, "Couplet", id)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Couplet", id)
	}
	return r.GetByID(ctx, id)
}

func (r *coupletRepository) ToggleLike(ctx context.Context, id, userID string) (*models.Couplet, bool, error) {
	defer track(backendSQL, "couplets.toggle_like")()
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Couplet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, false, translate(err, "Couplet", id)
	}
	if count == 0 {
		return nil, false, models.NewNotFoundError("Couplet", id)
	}

	liked, err := toggleLike(ctx, r.db, models.LikeTargetCouplet, id, userID)
	if err != nil {
		return nil, false, translate(err, "Couplet", id)
	}
	couplet, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return couplet, liked, nil
}

func (r *coupletRepository) hydrate(ctx context.Context, couplets []*models.Couplet) error {
	ids := make([]string, 0, len(couplets))
	for _, c := range couplets {
		ids = append(ids, c.ID)
	}
	likes, err := loadLikes(ctx, r.db, models.LikeTargetCouplet, ids)
	if err != nil {
		return err
	}
	for _, c := range couplets {
		c.Likes = emptyIfNil(likes[c.ID])
	}
	return nil
}
