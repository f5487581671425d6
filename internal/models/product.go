package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `json:"name" bson:"name" validate:"required"`
	CategoryID         primitive.ObjectID `json:"categoryId" bson:"categoryId" validate:"required"`
	ImageURL           string             `json:"imageUrl" bson:"imageUrl" validate:"required"`
	CloudinaryPublicID string             `json:"cloudinaryPublicId,omitempty" bson:"cloudinaryPublicId,omitempty"`

	// A nil price means "price on request".
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitnil,gte=0"`
	Size        string   `json:"size,omitempty" bson:"size,omitempty"`
	Gender      Gender   `json:"gender" bson:"gender" validate:"oneof=Male Female Unisex"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Featured    bool     `json:"featured" bson:"featured"`
	AIGenerated bool     `json:"aiGenerated" bson:"aiGenerated"`
	Features    []string `json:"features" bson:"features"`

	// Populated from categoryId on list; nil when the category is gone.
	Category *Category `json:"category" bson:"category,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the fields that have a storefront default.
func (p *Product) ApplyDefaults() {
	if p.Gender == "" {
		p.Gender = GenderUnisex
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}

type UpdateProductInput struct {
	ID                 string              `json:"id" bson:"-" validate:"required"`
	Name               *string             `json:"name" bson:"name,omitempty" validate:"omitnil,min=1"`
	CategoryID         *primitive.ObjectID `json:"categoryId" bson:"categoryId,omitempty"`
	ImageURL           *string             `json:"imageUrl" bson:"imageUrl,omitempty" validate:"omitnil,min=1"`
	CloudinaryPublicID *string             `json:"cloudinaryPublicId" bson:"cloudinaryPublicId,omitempty"`
	Price              *float64            `json:"price" bson:"price,omitempty" validate:"omitnil,gte=0"`
	Size               *string             `json:"size" bson:"size,omitempty"`
	Gender             *Gender             `json:"gender" bson:"gender,omitempty" validate:"omitnil,oneof=Male Female Unisex"`
	Description        *string             `json:"description" bson:"description,omitempty"`
	Featured           *bool               `json:"featured" bson:"featured,omitempty"`
	AIGenerated        *bool               `json:"aiGenerated" bson:"aiGenerated,omitempty"`
	Features           *[]string           `json:"features" bson:"features,omitempty"`
	UpdatedAt          time.Time           `json:"-" bson:"updatedAt"`
}

type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortOldest    ProductSort = "oldest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
)

// ProductQuery holds the storefront filters. Zero values impose no constraint.
type ProductQuery struct {
	CategoryID *primitive.ObjectID
	Gender     string
	MinPrice   *float64
	MaxPrice   *float64
	Featured   *bool
	Sort       ProductSort
	// Page and Limit are only applied when Limit > 0.
	Page  int
	Limit int
}
