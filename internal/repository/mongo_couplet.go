package repository

import (
	"context"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCoupletRepository struct {
	col      *mongo.Collection
	bouquets *mongo.Collection
}

// NewMongoCoupletRepository creates a couplet repository over the couplets collection
func NewMongoCoupletRepository(db *mongo.Database) CoupletRepository {
	return &mongoCoupletRepository{
		col:      db.Collection(database.CoupletsCollection),
		bouquets: db.Collection(database.BouquetsCollection),
	}
}

func (r *mongoCoupletRepository) Create(ctx context.Context, couplet *models.Couplet) error {
	defer track(backendMongo, "couplets.create")()
	if couplet.ID == "" {
		couplet.ID = models.NewID()
	}
	if couplet.CreatedAt.IsZero() {
		couplet.CreatedAt = time.Now().UTC()
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	_, err := r.col.InsertOne(ctx, couplet)
	return translateMongo(err, "Couplet", couplet.ID)
}

func (r *mongoCoupletRepository) GetByID(ctx context.Context, id string) (*models.Couplet, error) {
	defer track(backendMongo, "couplets.get")()
	couplet, err := findByID[models.Couplet](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Couplet", id)
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	return couplet, nil
}

func (r *mongoCoupletRepository) ListPublic(ctx context.Context) ([]*models.Couplet, error) {
	defer track(backendMongo, "couplets.list_public")()
	return r.list(ctx, bson.M{"isPublic": true})
}

func (r *mongoCoupletRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Couplet, error) {
	defer track(backendMongo, "couplets.list_by_author")()
	return r.list(ctx, bson.M{"author": authorID})
}

func (r *mongoCoupletRepository) list(ctx context.Context, filter bson.M) ([]*models.Couplet, error) {
	couplets, err := findAll[models.Couplet](ctx, r.col, filter, 0)
	if err != nil {
		return nil, translateMongo(err, "Couplet", "")
	}
	for _, c := range couplets {
		c.Likes = emptyIfNil(c.Likes)
	}
	return couplets, nil
}

// Delete removes the couplet and clears references to it from bouquets.
func (r *mongoCoupletRepository) Delete(ctx context.Context, id string) error {
	defer track(backendMongo, "couplets.delete")()
	if err := deleteByID(ctx, r.col, id); err != nil {
		return translateMongo(err, "Couplet", id)
	}
	_, err := r.bouquets.UpdateMany(ctx,
		bson.M{"attachedShayari": id},
		bson.M{"$unset": bson.M{"attachedShayari": ""}},
	)
	return translateMongo(err, "Couplet", id)
}

func (r *mongoCoupletRepository) ToggleVisibility(ctx context.Context, id string) (*models.Couplet, error) {
	defer track(backendMongo, "couplets.toggle_visibility")()
	couplet, err := toggleVisibilityDoc[models.Couplet](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Couplet", id)
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	return couplet, nil
}

func (r *mongoCoupletRepository) ToggleLike(ctx context.Context, id, userID string) (*models.Couplet, bool, error) {
	defer track(backendMongo, "couplets.toggle_like")()
	couplet, liked, err := toggleLikeDoc[models.Couplet](ctx, r.col, id, userID)
	if err != nil {
		return nil, false, translateMongo(err, "Couplet", id)
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	return couplet, liked, nil
}
