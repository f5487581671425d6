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

type TestimonialRepository interface {
	List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error)
	Create(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.UpdateTestimonialInput) (models.Testimonial, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoTestimonialRepository struct {
	DB *mongo.Database
}

func NewTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &MongoTestimonialRepository{DB: db}
}

func (r *MongoTestimonialRepository) collection() *mongo.Collection {
	return r.DB.Collection(database.TestimonialsCollection)
}

func (r *MongoTestimonialRepository) List(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	filter := bson.M{}
	if featuredOnly {
		filter["featured"] = true
	}
	items, err := findAll[models.Testimonial](ctx, r.collection(), filter, displayOrder)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

func (r *MongoTestimonialRepository) Create(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	now := time.Now()
	testimonial.ID = primitive.NilObjectID
	testimonial.CreatedAt = now
	testimonial.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, testimonial)
	if err != nil {
		return models.Testimonial{}, wrapWriteError(err)
	}
	testimonial.ID = insertedID(res)
	return testimonial, nil
}

func (r *MongoTestimonialRepository) Update(ctx context.Context, id primitive.ObjectID, input models.UpdateTestimonialInput) (models.Testimonial, error) {
	input.UpdatedAt = time.Now()
	return updateByID[models.Testimonial](ctx, r.collection(), id, input)
}

func (r *MongoTestimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection(), id)
}
