package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog is a downloadable brochure (PDF or image).
type Catalog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `json:"title" bson:"title" validate:"required"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	FileURL      string             `json:"fileUrl" bson:"fileUrl" validate:"required"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type UpdateCatalogInput struct {
	ID           string    `json:"id" bson:"-" validate:"required"`
	Title        *string   `json:"title" bson:"title,omitempty" validate:"omitnil,min=1"`
	Description  *string   `json:"description" bson:"description,omitempty"`
	FileURL      *string   `json:"fileUrl" bson:"fileUrl,omitempty" validate:"omitnil,min=1"`
	ThumbnailURL *string   `json:"thumbnailUrl" bson:"thumbnailUrl,omitempty"`
	UpdatedAt    time.Time `json:"-" bson:"updatedAt"`
}
