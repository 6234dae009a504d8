package repository

import (
	"context"
	"time"

	"syahi/internal/models"

	"gorm.io/gorm"
)

// blogRepository implements BlogRepository
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	defer track(backendSQL, "blogs.create")()
	if blog.ID == "" {
		blog.ID = models.NewID()
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return translate(err, "Blog", blog.ID)
	}
	blog.Likes = emptyIfNil(blog.Likes)
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	defer track(backendSQL, "blogs.get")()
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Blog", id)
	}
	if err := r.hydrate(ctx, []*models.Blog{&blog}); err != nil {
		return nil, translate(err, "Blog", id)
	}
	return &blog, nil
}

func (r *blogRepository) ListPublic(ctx context.Context) ([]*models.Blog, error) {
	defer track(backendSQL, "blogs.list_public")()
	return r.list(ctx, r.db.WithContext(ctx).Where("is_public = ?", true))
}

func (r *blogRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	defer track(backendSQL, "blogs.list_by_author")()
	return r.list(ctx, r.db.WithContext(ctx).Where("author = ?", authorID))
}

func (r *blogRepository) list(ctx context.Context, query *gorm.DB) ([]*models.Blog, error) {
	var blogs []*models.Blog
	if err := query.Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, translate(err, "Blog", "")
	}
	if err := r.hydrate(ctx, blogs); err != nil {
		return nil, translate(err, "Blog", "")
	}
	return blogs, nil
}

// Delete removes the blog together with its likes.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	defer track(backendSQL, "blogs.delete")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLikes(tx, models.LikeTargetBlog, id); err != nil {
			return err
		}
		res := tx.Delete(&models.Blog{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "Blog", id)
}

func (r *blogRepository) ToggleVisibility(ctx context.Context, id string) (*models.Blog, error) {
	defer track(backendSQL, "blogs.toggle_visibility")()
	res := r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("id = ?", id).
		Update("is_public", gorm.Expr("NOT is_public"))
	if res.Error != nil {
		return nil, translate(res.Error, "Blog", id)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Blog", id)
	}
	return r.GetByID(ctx, id)
}

func (r *blogRepository) ToggleLike(ctx context.Context, id, userID string) (*models.Blog, bool, error) {
	defer track(backendSQL, "blogs.toggle_like")()
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, false, translate(err, "Blog", id)
	}
	if count == 0 {
		return nil, false, models.NewNotFoundError("Blog", id)
	}

	liked, err := toggleLike(ctx, r.db, models.LikeTargetBlog, id, userID)
	if err != nil {
		return nil, false, translate(err, "Blog", id)
	}
	blog, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return blog, liked, nil
}

func (r *blogRepository) hydrate(ctx context.Context, blogs []*models.Blog) error {
	ids := make([]string, 0, len(blogs))
	for _, c := range blogs {
		ids = append(ids, c.ID)
	}
	likes, err := loadLikes(ctx, r.db, models.LikeTargetBlog, ids)
	if err != nil {
		return err
	}
	for _, c := range blogs {
		c.Likes = emptyIfNil(likes[c.ID])
	}
	return nil
}
