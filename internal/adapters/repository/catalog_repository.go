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

type CatalogRepository interface {
	List(ctx context.Context) ([]models.Catalog, error)
	Create(ctx context.Context, catalog models.Catalog) (models.Catalog, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCatalogInput) (models.Catalog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoCatalogRepository struct {
	DB *mongo.Database
}

func NewCatalogRepository(db *mongo.Database) CatalogRepository {
	return &MongoCatalogRepository{DB: db}
}

func (r *MongoCatalogRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.CatalogsCollection)
}

func (r *MongoCatalogRepository) List(ctx context.Context) ([]models.Catalog, error) {
	items, err := findAll[models.Catalog](ctx, r.collection(), bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return items, nil
}

func (r *MongoCatalogRepository) Create(ctx context.Context, catalog models.Catalog) (models.Catalog, error) {
	now := time.Now()
	catalog.ID = primitive.NilObjectID
	catalog.CreatedAt = now
	catalog.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, catalog)
	if err != nil {
		return models.Catalog{}, wrapWriteError(err)
	}
	catalog.ID = insertedID(res)
	return catalog, nil
}

func (r *MongoCatalogRepository) Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCatalogInput) (models.Catalog, error) {
	input.UpdatedAt = time.Now()
	return updateByID[models.Catalog](ctx, r.collection(), id, input)
}

func (r *MongoCatalogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection(), id)
}
