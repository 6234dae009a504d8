package repository

import (
	"context"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBlogRepository struct {
	col *mongo.Collection
}

// NewMongoBlogRepository creates a blog repository over the blogs collection
func NewMongoBlogRepository(db *mongo.Database) BlogRepository {
	return &mongoBlogRepository{col: db.Collection(database.BlogsCollection)}
}

func (r *mongoBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	defer track(backendMongo, "blogs.create")()
	if blog.ID == "" {
		blog.ID = models.NewID()
	}
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now().UTC()
	}
	blog.Likes = emptyIfNil(blog.Likes)
	_, err := r.col.InsertOne(ctx, blog)
	return translateMongo(err, "Blog", blog.ID)
}

func (r *mongoBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	defer track(backendMongo, "blogs.get")()
	blog, err := findByID[models.Blog](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Blog", id)
	}
	blog.Likes = emptyIfNil(blog.Likes)
	return blog, nil
}

func (r *mongoBlogRepository) ListPublic(ctx context.Context) ([]*models.Blog, error) {
	defer track(backendMongo, "blogs.list_public")()
	return r.list(ctx, bson.M{"isPublic": true})
}

func (r *mongoBlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Blog, error) {
	defer track(backendMongo, "blogs.list_by_author")()
	return r.list(ctx, bson.M{"author": authorID})
}

func (r *mongoBlogRepository) list(ctx context.Context, filter bson.M) ([]*models.Blog, error) {
	blogs, err := findAll[models.Blog](ctx, r.col, filter, 0)
	if err != nil {
		return nil, translateMongo(err, "Blog", "")
	}
	for _, c := range blogs {
		c.Likes = emptyIfNil(c.Likes)
	}
	return blogs, nil
}

func (r *mongoBlogRepository) Delete(ctx context.Context, id string) error {
	defer track(backendMongo, "blogs.delete")()
	return translateMongo(deleteByID(ctx, r.col, id), "Blog", id)
}

func (r *mongoBlogRepository) ToggleVisibility(ctx context.Context, id string) (*models.Blog, error) {
	defer track(backendMongo, "blogs.toggle_visibility")()
	blog, err := toggleVisibilityDoc[models.Blog](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Blog", id)
	}
	blog.Likes = emptyIfNil(blog.Likes)
	return blog, nil
}

func (r *mongoBlogRepository) ToggleLike(ctx context.Context, id, userID string) (*models.Blog, bool, error) {
	defer track(backendMongo, "blogs.toggle_like")()
	blog, liked, err := toggleLikeDoc[models.Blog](ctx, r.col, id, userID)
	if err != nil {
		return nil, false, translateMongo(err, "Blog", id)
	}
	blog.Likes = emptyIfNil(blog.Likes)
	return blog, liked, nil
}
