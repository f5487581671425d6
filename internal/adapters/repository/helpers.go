package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// newestFirst is the default listing order.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// displayOrder sorts items with an explicit order field, newest first on ties.
var displayOrder = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find().SetSort(sort)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// updateByID applies $set with the given input and returns the stored
// document after the update.
func updateByID[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, input any) (T, error) {
	var updated T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": input}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return updated, ErrNotFound
		}
		return updated, wrapWriteError(err)
	}
	return updated, nil
}

// deleteByID removes a document. A missing document is not an error.
func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) error {
	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func insertedID(res *mongo.InsertOneResult) primitive.ObjectID {
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

func wrapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
