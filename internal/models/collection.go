package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaType string

const (
	MediaYouTube   MediaType = "youtube"
	MediaInstagram MediaType = "instagram"
	MediaImage     MediaType = "image"
)

// Collection is a showcase item on the collections page: an embedded video
// or an image. Items are displayed by ascending Order.
type Collection struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `json:"title,omitempty" bson:"title,omitempty"`
	MediaType          MediaType          `json:"mediaType" bson:"mediaType" validate:"oneof=youtube instagram image"`
	MediaURL           string             `json:"mediaUrl" bson:"mediaUrl" validate:"required"`
	ImageURL           string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CloudinaryPublicID string             `json:"cloudinaryPublicId,omitempty" bson:"cloudinaryPublicId,omitempty"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	Order              int                `json:"order" bson:"order"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (c *Collection) ApplyDefaults() {
	if c.MediaType == "" {
		c.MediaType = MediaImage
	}
}

type UpdateCollectionInput struct {
	ID                 string     `json:"id" bson:"-" validate:"required"`
	Title              *string    `json:"title" bson:"title,omitempty"`
	MediaType          *MediaType `json:"mediaType" bson:"mediaType,omitempty" validate:"omitnil,oneof=youtube instagram image"`
	MediaURL           *string    `json:"mediaUrl" bson:"mediaUrl,omitempty" validate:"omitnil,min=1"`
	ImageURL           *string    `json:"imageUrl" bson:"imageUrl,omitempty"`
	CloudinaryPublicID *string    `json:"cloudinaryPublicId" bson:"cloudinaryPublicId,omitempty"`
	Description        *string    `json:"description" bson:"description,omitempty"`
	Order              *int       `json:"order" bson:"order,omitempty"`
	UpdatedAt          time.Time  `json:"-" bson:"updatedAt"`
}
