package repository

import (
	"context"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoFlowerRepository struct {
	col *mongo.Collection
}

// NewMongoFlowerRepository creates a flower repository over the flowers collection
func NewMongoFlowerRepository(db *mongo.Database) FlowerRepository {
	return &mongoFlowerRepository{col: db.Collection(database.FlowersCollection)}
}

func (r *mongoFlowerRepository) Create(ctx context.Context, flower *models.Flower) error {
	defer track(backendMongo, "flowers.create")()
	if flower.ID == "" {
		flower.ID = models.NewID()
	}
	if flower.CreatedAt.IsZero() {
		flower.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, flower)
	return translateMongo(err, "Flower", flower.ID)
}

func (r *mongoFlowerRepository) GetByID(ctx context.Context, id string) (*models.Flower, error) {
	defer track(backendMongo, "flowers.get")()
	flower, err := findByID[models.Flower](ctx, r.col, id)
	if err != nil {
		return nil, translateMongo(err, "Flower", id)
	}
	return flower, nil
}

func (r *mongoFlowerRepository) List(ctx context.Context, limit int) ([]*models.Flower, error) {
	defer track(backendMongo, "flowers.list")()
	flowers, err := findAll[models.Flower](ctx, r.col, bson.M{}, int64(limit))
	return flowers, translateMongo(err, "Flower", "")
}

func (r *mongoFlowerRepository) Delete(ctx context.Context, id string) error {
	defer track(backendMongo, "flowers.delete")()
	return translateMongo(deleteByID(ctx, r.col, id), "Flower", id)
}
