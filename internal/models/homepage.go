package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HomePageKey is the well-known key of the single homepage document.
const HomePageKey = "homepage"

type GalleryImage struct {
	URL                string `json:"url" bson:"url"`
	Caption            string `json:"caption,omitempty" bson:"caption,omitempty"`
	CloudinaryPublicID string `json:"cloudinaryPublicId,omitempty" bson:"cloudinaryPublicId,omitempty"`
}

type Gallery struct {
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Images      []GalleryImage `json:"images" bson:"images" validate:"dive"`
}

type ContentBlock struct {
	Title              string `json:"title" bson:"title"`
	Text               string `json:"text" bson:"text"`
	ImageURL           string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CloudinaryPublicID string `json:"cloudinaryPublicId,omitempty" bson:"cloudinaryPublicId,omitempty"`
	Order              int    `json:"order" bson:"order"`
}

// Highlight is a small icon/title/text card, used for trust badges and
// the "why choose us" strip.
type Highlight struct {
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
	Title string `json:"title" bson:"title"`
	Text  string `json:"text,omitempty" bson:"text,omitempty"`
}

type HomePage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Singleton string             `json:"-" bson:"singleton"`

	HeroTitle    string `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle" bson:"heroSubtitle"`
	HeroImage    string `json:"heroImage" bson:"heroImage"`
	AboutTitle   string `json:"aboutTitle" bson:"aboutTitle"`
	AboutText    string `json:"aboutText" bson:"aboutText"`
	AboutImage   string `json:"aboutImage" bson:"aboutImage"`
	AboutImage2  string `json:"aboutImage2,omitempty" bson:"aboutImage2,omitempty"`
	AboutText2   string `json:"aboutText2,omitempty" bson:"aboutText2,omitempty"`

	Galleries     []Gallery      `json:"galleries" bson:"galleries"`
	ContentBlocks []ContentBlock `json:"contentBlocks" bson:"contentBlocks"`
	TrustBadges   []Highlight    `json:"trustBadges" bson:"trustBadges"`
	WhyChooseUs   []Highlight    `json:"whyChooseUs" bson:"whyChooseUs"`

	NewsletterEnabled bool   `json:"newsletterEnabled" bson:"newsletterEnabled"`
	NewsletterTitle   string `json:"newsletterTitle,omitempty" bson:"newsletterTitle,omitempty"`
	NewsletterText    string `json:"newsletterText,omitempty" bson:"newsletterText,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UpdateHomePageInput carries the fields an admin edit replaces. Absent
// fields keep their stored value.
type UpdateHomePageInput struct {
	HeroTitle    *string `json:"heroTitle" bson:"heroTitle,omitempty"`
	HeroSubtitle *string `json:"heroSubtitle" bson:"heroSubtitle,omitempty"`
	HeroImage    *string `json:"heroImage" bson:"heroImage,omitempty"`
	AboutTitle   *string `json:"aboutTitle" bson:"aboutTitle,omitempty"`
	AboutText    *string `json:"aboutText" bson:"aboutText,omitempty"`
	AboutImage   *string `json:"aboutImage" bson:"aboutImage,omitempty"`
	AboutImage2  *string `json:"aboutImage2" bson:"aboutImage2,omitempty"`
	AboutText2   *string `json:"aboutText2" bson:"aboutText2,omitempty"`

	Galleries     *[]Gallery      `json:"galleries" bson:"galleries,omitempty" validate:"omitnil,dive"`
	ContentBlocks *[]ContentBlock `json:"contentBlocks" bson:"contentBlocks,omitempty"`
	TrustBadges   *[]Highlight    `json:"trustBadges" bson:"trustBadges,omitempty"`
	WhyChooseUs   *[]Highlight    `json:"whyChooseUs" bson:"whyChooseUs,omitempty"`

	NewsletterEnabled *bool   `json:"newsletterEnabled" bson:"newsletterEnabled,omitempty"`
	NewsletterTitle   *string `json:"newsletterTitle" bson:"newsletterTitle,omitempty"`
	NewsletterText    *string `json:"newsletterText" bson:"newsletterText,omitempty"`

	UpdatedAt time.Time `json:"-" bson:"updatedAt"`
}
