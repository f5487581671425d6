package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/database"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
}

type MongoUserRepository struct {
	DB *mongo.Database
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{DB: db}
}

func (r *MongoUserRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.UsersCollection)
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Create inserts a user; the unique email index turns a concurrent second
// insert for the same address into ErrDuplicate.
func (r *MongoUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now()
	user.ID = primitive.NilObjectID
	if user.Role == "" {
		user.Role = models.RoleAdmin
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return models.User{}, wrapWriteError(err)
	}
	user.ID = insertedID(res)
	return user, nil
}
