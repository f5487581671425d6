package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductsCollection     = "products"
	CategoriesCollection   = "categories"
	CollectionsCollection  = "collections"
	TestimonialsCollection = "testimonials"
	ContactCollection      = "contactMessages"
	HomePageCollection     = "homepage"
	CatalogsCollection     = "catalogs"
	UsersCollection        = "users"
)

// Connect opens the process-wide client and verifies it with a ping. The
// driver keeps its own pool, so the returned database is shared by every
// request.
func Connect(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).SetServerSelectionTimeout(20 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	logrus.WithField("database", name).Info("Connected to MongoDB")
	return client, client.Database(name), nil
}
