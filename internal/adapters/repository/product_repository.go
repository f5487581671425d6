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

type ProductRepository interface {
	List(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) (models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByAsset removes every product that uses the given hosted image,
	// matched by public id or, for older records, by URL.
	DeleteByAsset(ctx context.Context, publicID, url string) (int64, error)
}

type MongoProductRepository struct {
	DB *mongo.Database
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{DB: db}
}

func (r *MongoProductRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.ProductsCollection)
}

// productFilter translates storefront filters into a Mongo filter. A price
// bound only matches documents that have a price.
func productFilter(q models.ProductQuery) bson.M {
	filter := bson.M{}
	if q.CategoryID != nil {
		filter["categoryId"] = *q.CategoryID
	}
	if q.Gender != "" {
		filter["gender"] = q.Gender
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}
	return filter
}

func productSort(sort models.ProductSort) bson.D {
	switch sort {
	case models.SortOldest:
		return bson.D{{Key: "createdAt", Value: 1}}
	case models.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "createdAt", Value: -1}}
	case models.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "createdAt", Value: -1}}
	case models.SortName:
		return bson.D{{Key: "name", Value: 1}, {Key: "createdAt", Value: -1}}
	default:
		return newestFirst
	}
}

func productPipeline(q models.ProductQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: productFilter(q)}},
		{{Key: "$sort", Value: productSort(q.Sort)}},
	}
	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: int64((page - 1) * q.Limit)}},
			bson.D{{Key: "$limit", Value: int64(q.Limit)}},
		)
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.CategoriesCollection,
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
	)
}

func (r *MongoProductRepository) List(ctx context.Context, q models.ProductQuery) ([]models.Product, int64, error) {
	collection := r.collection()

	cursor, err := collection.Aggregate(ctx, productPipeline(q))
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	total, err := collection.CountDocuments(ctx, productFilter(q))
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return products, total, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	now := time.Now()
	product.ID = primitive.NilObjectID
	product.Category = nil
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, wrapWriteError(err)
	}
	product.ID = insertedID(res)
	return product, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) (models.Product, error) {
	input.UpdatedAt = time.Now()
	return updateByID[models.Product](ctx, r.collection(), id, input)
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection(), id)
}

func (r *MongoProductRepository) DeleteByAsset(ctx context.Context, publicID, url string) (int64, error) {
	var or bson.A
	if publicID != "" {
		or = append(or, bson.M{"cloudinaryPublicId": publicID})
	}
	if url != "" {
		or = append(or, bson.M{"imageUrl": url})
	}
	if len(or) == 0 {
		return 0, nil
	}

	res, err := r.collection().DeleteMany(ctx, bson.M{"$or": or})
	if err != nil {
		return 0, fmt.Errorf("delete products for asset: %w", err)
	}
	return res.DeletedCount, nil
}
