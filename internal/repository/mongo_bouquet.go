package repository

import (
	"context"
	"errors"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBouquetRepository struct {
	col      *mongo.Collection
	couplets *mongo.Collection
}

// NewMongoBouquetRepository creates a bouquet repository over the bouquets collection
func NewMongoBouquetRepository(db *mongo.Database) BouquetRepository {
	return &mongoBouquetRepository{
		col:      db.Collection(database.BouquetsCollection),
		couplets: db.Collection(database.CoupletsCollection),
	}
}

func (r *mongoBouquetRepository) Create(ctx context.Context, bouquet *models.Bouquet) error {
	defer track(backendMongo, "bouquets.create")()
	if bouquet.ID == "" {
		bouquet.ID = models.NewID()
	}
	if bouquet.CreatedAt.IsZero() {
		bouquet.CreatedAt = time.Now().UTC()
	}
	bouquet.Flowers = emptyIfNil(bouquet.Flowers)
	_, err := r.col.InsertOne(ctx, bouquet)
	return translateMongo(err, "Bouquet", bouquet.ID)
}

// GetByID resolves attachedShayari with a second lookup. A dangling
// reference is cleared so it renders as null.
func (r *mongoBouquetRepository) GetByID(ctx context.Context, id string) (*models.Bouquet, error) {
	defer track(backendMongo, "bouquets.get")()
	bouquet, err := findByID[models.Bouquet](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Bouquet", id)
	}
	if bouquet.AttachedShayariID == nil {
		return bouquet, nil
	}

	couplet, err := findByID[models.Couplet](ctx, r.couplets, *bouquet.AttachedShayariID)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		bouquet.AttachedShayariID = nil
		return bouquet, nil
	case err != nil:
		return nil, translateMongo(err, "Bouquet", id)
	}
	couplet.Likes = emptyIfNil(couplet.Likes)
	bouquet.AttachedShayari = couplet
	return bouquet, nil
}

func (r *mongoBouquetRepository) ListPublic(ctx context.Context, limit int) ([]*models.Bouquet, error) {
	defer track(backendMongo, "bouquets.list_public")()
	bouquets, err := findAll[models.Bouquet](ctx, r.col, bson.M{"isPublic": true}, int64(limit))
	return bouquets, translateMongo(err, "Bouquet", "")
}

func (r *mongoBouquetRepository) ListBySender(ctx context.Context, senderID string) ([]*models.Bouquet, error) {
	defer track(backendMongo, "bouquets.list_by_sender")()
	bouquets, err := findAll[models.Bouquet](ctx, r.col, bson.M{"sender": senderID}, 0)
	return bouquets, translateMongo(err, "Bouquet", "")
}

func (r *mongoBouquetRepository) Delete(ctx context.Context, id string) error {
	defer track(backendMongo, "bouquets.delete")()
	return translateMongo(deleteByID(ctx, r.col, id), "Bouquet", id)
}
