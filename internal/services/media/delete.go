package media

import (
	"context"

	"github.com/sirupsen/logrus"
)

type DeleteRequest struct {
	PublicID string `json:"publicId" validate:"required"`
	URL      string `json:"url"`
}

type DeleteError struct {
	PublicID string `json:"publicId"`
	Error    string `json:"error"`
}

type DeleteReport struct {
	Deleted         int           `json:"deleted"`
	ProductsDeleted int64         `json:"productsDeleted"`
	Errors          []DeleteError `json:"errors"`
}

// ProductCleaner removes the products that display a given asset.
type ProductCleaner interface {
	DeleteByAsset(ctx context.Context, publicID, url string) (int64, error)
}

// DeleteAssets removes each asset from the host, then the products that
// used it. Assets are handled one at a time and a failure on one does not
// stop the rest.
func DeleteAssets(ctx context.Context, host AssetHost, products ProductCleaner, images []DeleteRequest) DeleteReport {
	report := DeleteReport{Errors: []DeleteError{}}

	for _, image := range images {
		log := logrus.WithField("publicId", image.PublicID)

		if err := host.Destroy(ctx, image.PublicID); err != nil {
			log.WithError(err).Error("Failed to delete asset")
			report.Errors = append(report.Errors, DeleteError{PublicID: image.PublicID, Error: err.Error()})
			continue
		}
		report.Deleted++

		n, err := products.DeleteByAsset(ctx, image.PublicID, image.URL)
		if err != nil {
			log.WithError(err).Error("Asset deleted but its products were not")
			report.Errors = append(report.Errors, DeleteError{PublicID: image.PublicID, Error: err.Error()})
			continue
		}
		report.ProductsDeleted += n
		if n > 0 {
			log.WithField("products", n).Info("Deleted products using asset")
		}
	}
	return report
}
