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

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCategoryInput) (models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoCategoryRepository struct {
	DB *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{DB: db}
}

func (r *MongoCategoryRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.CategoriesCollection)
}

func (r *MongoCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories, err := findAll[models.Category](ctx, r.collection(), bson.M{}, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create relies on the unique slug index; a clash surfaces as ErrDuplicate.
func (r *MongoCategoryRepository) Create(ctx context.Context, category models.Category) (models.Category, error) {
	now := time.Now()
	category.ID = primitive.NilObjectID
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, wrapWriteError(err)
	}
	category.ID = insertedID(res)
	return category, nil
}

func (r *MongoCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, input models.UpdateCategoryInput) (models.Category, error) {
	input.UpdatedAt = time.Now()
	return updateByID[models.Category](ctx, r.collection(), id, input)
}

// Delete leaves products pointing at the category untouched; they render
// without a category.
func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection(), id)
}
