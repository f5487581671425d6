package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Slug        string             `json:"slug" bson:"slug" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type UpdateCategoryInput struct {
	ID          string    `json:"id" bson:"-" validate:"required"`
	Name        *string   `json:"name" bson:"name,omitempty" validate:"omitnil,min=1"`
	Slug        *string   `json:"slug" bson:"slug,omitempty" validate:"omitnil,min=1"`
	Description *string   `json:"description" bson:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl" bson:"imageUrl,omitempty"`
	UpdatedAt   time.Time `json:"-" bson:"updatedAt"`
}
