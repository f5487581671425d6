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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	List(ctx context.Context, status models.ContactStatus) ([]models.ContactMessage, error)
	Create(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	// UpdateStatus sets the status and returns the updated message together
	// with the status it had before.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ContactStatus) (models.ContactMessage, models.ContactStatus, error)
}

type MongoContactRepository struct {
	DB *mongo.Database
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &MongoContactRepository{DB: db}
}

func (r *MongoContactRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.ContactCollection)
}

func (r *MongoContactRepository) List(ctx context.Context, status models.ContactStatus) ([]models.ContactMessage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	messages, err := findAll[models.ContactMessage](ctx, r.collection(), filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func (r *MongoContactRepository) Create(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	now := time.Now()
	message.ID = primitive.NilObjectID
	message.Status = models.ContactNew
	message.CreatedAt = now
	message.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, message)
	if err != nil {
		return models.ContactMessage{}, wrapWriteError(err)
	}
	message.ID = insertedID(res)
	return message, nil
}

func (r *MongoContactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ContactStatus) (models.ContactMessage, models.ContactStatus, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before models.ContactMessage
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ContactMessage{}, "", ErrNotFound
		}
		return models.ContactMessage{}, "", fmt.Errorf("update contact status: %w", err)
	}

	after := before
	after.Status = status
	after.UpdatedAt = now
	return after, before.Status, nil
}
