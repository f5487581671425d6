package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Rating      int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Text        string             `json:"text" bson:"text" validate:"required"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Designation string             `json:"designation,omitempty" bson:"designation,omitempty"`
	// Featured testimonials are shown in the homepage carousel.
	Featured  bool      `json:"featured" bson:"featured"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type UpdateTestimonialInput struct {
	ID          string    `json:"id" bson:"-" validate:"required"`
	Name        *string   `json:"name" bson:"name,omitempty" validate:"omitnil,min=1"`
	Rating      *int      `json:"rating" bson:"rating,omitempty" validate:"omitnil,min=1,max=5"`
	Text        *string   `json:"text" bson:"text,omitempty" validate:"omitnil,min=1"`
	ImageURL    *string   `json:"imageUrl" bson:"imageUrl,omitempty"`
	Designation *string   `json:"designation" bson:"designation,omitempty"`
	Featured    *bool     `json:"featured" bson:"featured,omitempty"`
	Order       *int      `json:"order" bson:"order,omitempty"`
	UpdatedAt   time.Time `json:"-" bson:"updatedAt"`
}
