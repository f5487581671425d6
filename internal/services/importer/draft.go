package importer

import (
	"fmt"
	"strings"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/developia-II/jewellery-storefront/internal/services/vision"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPrice = 999.0
	DefaultSize  = "Standard"
)

type Image struct {
	URL      string `json:"url" validate:"required,url"`
	PublicID string `json:"publicId"`
	Filename string `json:"filename"`
}

func (i Image) name() string {
	if i.Filename != "" {
		return i.Filename
	}
	if i.PublicID != "" {
		return media.Filename(i.PublicID)
	}
	return i.URL
}

// MatchCategory maps a model-suggested category name onto a stored
// category. Names are compared after normalizing case, spacing and a plural
// "s", so "Necklace" finds "Necklaces" but "Bridal Sets" does not find
// "Sets". No match returns the zero id and matched false; such drafts need
// an admin to pick the category.
func MatchCategory(categories []models.Category, suggested string) (id primitive.ObjectID, matched bool) {
	key := normalizeCategory(suggested)
	if key == "" {
		return primitive.NilObjectID, false
	}
	for _, c := range categories {
		if normalizeCategory(c.Name) == key {
			return c.ID, true
		}
	}
	return primitive.NilObjectID, false
}

func normalizeCategory(name string) string {
	name = strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		name = strings.TrimSuffix(name, "s")
	}
	return name
}

// BuildDraft turns an analysis into an unsaved product for the image.
func BuildDraft(image Image, analysis vision.Analysis, categories []models.Category) (models.Product, bool) {
	categoryID, matched := MatchCategory(categories, analysis.Category)

	name := strings.TrimSpace(analysis.Name)
	if name == "" {
		name = fmt.Sprintf("Product %s", image.name())
	}
	price := float64(analysis.EstimatedPrice)
	if price <= 0 {
		price = DefaultPrice
	}
	gender := models.Gender(analysis.Gender)
	if !gender.Valid() {
		gender = models.GenderUnisex
	}
	size := strings.TrimSpace(analysis.Size)
	if size == "" {
		size = DefaultSize
	}
	features := analysis.Features
	if features == nil {
		features = []string{}
	}

	return models.Product{
		Name:               name,
		CategoryID:         categoryID,
		ImageURL:           image.URL,
		CloudinaryPublicID: image.PublicID,
		Price:              &price,
		Size:               size,
		Gender:             gender,
		Description:        strings.TrimSpace(analysis.Description),
		AIGenerated:        true,
		Features:           features,
	}, matched
}
