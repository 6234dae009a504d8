package repository

import (
	"context"
	"time"

	"syahi/internal/database"
	"syahi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a user repository over the users collection
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{col: db.Collection(database.UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	defer track(backendMongo, "users.create")()
	if user.ID == "" {
		user.ID = models.NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.UpdatedAt = user.CreatedAt
	_, err := r.col.InsertOne(ctx, user)
	return translateMongo(err, "User", user.ID)
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer track(backendMongo, "users.get")()
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer track(backendMongo, "users.get_by_email")()
	return r.findOne(ctx, bson.M{"email": email}, email)
}

func (r *mongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	defer track(backendMongo, "users.get_by_username")()
	return r.findOne(ctx, bson.M{"username": username}, username)
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M, key string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongo(err, "User", key)
	}
	return &user, nil
}
