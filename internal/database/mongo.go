package database

import (
	"context"
	"fmt"
	"time"

	"syahi/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names on the document backend.
const (
	UsersCollection    = "users"
	CoupletsCollection = "couplets"
	BlogsCollection    = "blogs"
	ProblemsCollection = "problems"
	BouquetsCollection = "bouquets"
	FlowersCollection  = "flowers"
)

// ConnectMongo connects to uri, verifies the connection and ensures indexes on dbName.
func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	observability.Logger.Info("MongoDB connected successfully", zap.String("database", dbName))
	return db, client, nil
}

// EnsureMongoIndexes creates the unique identity indexes and the recency
// indexes used by the listings.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, unique); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	recency := map[string][]mongo.IndexModel{
		CoupletsCollection: {
			{Keys: bson.D{{Key: "isPublic", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		BlogsCollection: {
			{Keys: bson.D{{Key: "isPublic", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ProblemsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		BouquetsCollection: {
			{Keys: bson.D{{Key: "isPublic", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		FlowersCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
	for name, idx := range recency {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("%s indexes: %w", name, err)
		}
	}
	return nil
}
