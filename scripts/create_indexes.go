package main

import (
	"context"
	"log"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/developia-II/jewellery-storefront/internal/database"
)

// Run this script once after provisioning a new database.
// Usage: go run scripts/create_indexes.go
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("Connecting to MongoDB...")
	client, db, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("All indexes created successfully")
}
