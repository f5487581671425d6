package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

func indexSpecs() []collectionIndex {
	return []collectionIndex{
		// Storefront filters
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "categoryId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_category_date"),
		}},
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created"),
		}},
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("idx_price"),
		}},
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "featured", Value: 1}},
			Options: options.Index().SetName("idx_featured"),
		}},
		// Media cascade lookups
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "cloudinaryPublicId", Value: 1}},
			Options: options.Index().SetName("idx_cloudinary_public_id").SetSparse(true),
		}},
		{ProductsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "imageUrl", Value: 1}},
			Options: options.Index().SetName("idx_image_url"),
		}},

		{CategoriesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("idx_slug").SetUnique(true),
		}},
		{CollectionsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_order_date"),
		}},
		{TestimonialsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "featured", Value: 1}, {Key: "order", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_featured_order_date"),
		}},
		{ContactCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_status_date"),
		}},
		{CatalogsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created"),
		}},
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email").SetUnique(true),
		}},
		{HomePageCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "singleton", Value: 1}},
			Options: options.Index().SetName("idx_singleton").SetUnique(true),
		}},
	}
}

// EnsureIndexes creates every index the query layer relies on. Index
// creation is idempotent; failures are collected so one bad index does not
// hide the others.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var errs []error
	for _, idx := range indexSpecs() {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", idx.collection, err))
			continue
		}
		logrus.WithFields(logrus.Fields{
			"collection": idx.collection,
			"index":      name,
		}).Debug("Index ready")
	}
	return errors.Join(errs...)
}
