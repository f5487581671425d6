package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/database"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CollectionRepository interface {
	List(ctx context.Context) ([]models.Collection, error)
	Create(ctx context.Context, item models.Collection) (models.Collection, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCollectionInput) (models.Collection, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoCollectionRepository struct {
	DB *mongo.Database
}

func NewCollectionRepository(db *mongo.Database) CollectionRepository {
	return &MongoCollectionRepository{DB: db}
}

func (r *MongoCollectionRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.CollectionsCollection)
}

func (r *MongoCollectionRepository) List(ctx context.Context) ([]models.Collection, error) {
	items, err := findAll[models.Collection](ctx, r.collection(), bson.M{}, displayOrder)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return items, nil
}

func (r *MongoCollectionRepository) Create(ctx context.Context, item models.Collection) (models.Collection, error) {
	now := time.Now()
	item.ID = primitive.NilObjectID
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, item)
	if err != nil {
		return models.Collection{}, wrapWriteError(err)
	}
	item.ID = insertedID(res)
	return item, nil
}

func (r *MongoCollectionRepository) Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCollectionInput) (models.Collection, error) {
	input.UpdatedAt = time.Now()
	return updateByID[models.Collection](ctx, r.collection(), id, input)
}

func (r *MongoCollectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection(), id)
}
