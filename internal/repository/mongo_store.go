package repository

import (
	"context"
	"errors"

	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const backendMongo = "mongo"

// NewMongoStore builds a Store backed by MongoDB collections in db.
func NewMongoStore(db *mongo.Database, client *mongo.Client) *Store {
	return &Store{
		Backend:  backendMongo,
		Users:    NewMongoUserRepository(db),
		Couplets: NewMongoCoupletRepository(db),
		Blogs:    NewMongoBlogRepository(db),
		Problems: NewMongoProblemRepository(db),
		Bouquets: NewMongoBouquetRepository(db),
		Flowers:  NewMongoFlowerRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

func translateMongo(err error, resource, id string) error {
	var appErr *models.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.NewNotFoundError(resource, id)
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return models.NewInternalError(err)
	}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, limit int64) ([]*T, error) {
	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	var doc T
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// toggleVisibilityDoc negates isPublic server-side and returns the updated document.
func toggleVisibilityDoc[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "isPublic", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublic"}}}}}}},
	}
	var doc T
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnAfter()).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// toggleLikeDoc adds userID to the likes array when absent and pulls it
// otherwise. Each branch is a single conditional update on the document.
func toggleLikeDoc[T any](ctx context.Context, col *mongo.Collection, id, userID string) (*T, bool, error) {
	var doc T
	err := col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likes": userID}},
		returnAfter(),
	).Decode(&doc)
	if err == nil {
		return &doc, true, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
		returnAfter(),
	).Decode(&doc)
	if err != nil {
		return nil, false, err
	}
	return &doc, false, nil
}
