package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/database"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HomePageRepository interface {
	// Get returns nil when the homepage has never been saved.
	Get(ctx context.Context) (*models.HomePage, error)
	Upsert(ctx context.Context, input models.UpdateHomePageInput) (models.HomePage, error)
}

type MongoHomePageRepository struct {
	DB *mongo.Database
}

func NewHomePageRepository(db *mongo.Database) HomePageRepository {
	return &MongoHomePageRepository{DB: db}
}

func (r *MongoHomePageRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.HomePageCollection)
}

var singletonFilter = bson.M{"singleton": models.HomePageKey}

func (r *MongoHomePageRepository) Get(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	if err := r.collection().FindOne(ctx, singletonFilter).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get homepage: %w", err)
	}
	return &page, nil
}

// Upsert creates the document on first write and updates it in place
// afterwards, in a single atomic operation keyed by the singleton field.
func (r *MongoHomePageRepository) Upsert(ctx context.Context, input models.UpdateHomePageInput) (models.HomePage, error) {
	now := time.Now()
	input.UpdatedAt = now
	update := bson.M{
		"$set": input,
		"$setOnInsert": bson.M{
			"singleton": models.HomePageKey,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var page models.HomePage
	if err := r.collection().FindOneAndUpdate(ctx, singletonFilter, update, opts).Decode(&page); err != nil {
		return models.HomePage{}, fmt.Errorf("upsert homepage: %w", err)
	}
	return page, nil
}
