package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/services/vision"
	"github.com/sirupsen/logrus"
)

// State tracks one image through a batch.
type State string

const (
	StatePending  State = "pending"
	StateAnalyzed State = "analyzed"
	StateFailed   State = "failed"
	StateImported State = "imported"
	// StateUnmatched is an analyzed image whose category could not be
	// mapped. It is never auto-imported.
	StateUnmatched State = "unmatched"
)

type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

type ProductCreator interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
}

type Result struct {
	ImageInfo       Image           `json:"imageInfo"`
	Analysis        vision.Analysis `json:"analysis"`
	ProductData     models.Product  `json:"productData"`
	CategoryMatched bool            `json:"categoryMatched"`
	Status          State           `json:"status"`
	Product         *models.Product `json:"product,omitempty"`
}

type ItemError struct {
	Image string `json:"image"`
	Error string `json:"error"`
}

type Report struct {
	Analyzed  int         `json:"analyzed"`
	Failed    int         `json:"failed"`
	Imported  int         `json:"imported"`
	Unmatched int         `json:"unmatched"`
	Results   []Result    `json:"results"`
	Errors    []ItemError `json:"errors"`
}

type ImportReport struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Products []models.Product `json:"products"`
	Errors   []ItemError      `json:"errors"`
}

// AnalyzeTimeout bounds the work spent on one image.
const AnalyzeTimeout = 60 * time.Second

var errNoCategory = errors.New("no category available for product")

type Service struct {
	analyzer   vision.Analyzer
	categories CategoryLister
	products   ProductCreator
}

func NewService(analyzer vision.Analyzer, categories CategoryLister, products ProductCreator) *Service {
	return &Service{analyzer: analyzer, categories: categories, products: products}
}

// CanAnalyze reports whether an image analyzer is configured. Drafts can
// be imported without one.
func (s *Service) CanAnalyze() bool {
	return s.analyzer != nil
}

// AnalyzeBatch analyzes images one at a time. A failing image is reported
// and the batch moves on. With autoImport each draft with a matched
// category is saved; unmatched drafts are returned for manual import.
// The returned error is only set when the batch could not start.
func (s *Service) AnalyzeBatch(ctx context.Context, images []Image, autoImport bool) (Report, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load categories: %w", err)
	}

	report := Report{Results: []Result{}, Errors: []ItemError{}}
	for _, image := range images {
		if err := ctx.Err(); err != nil {
			report.fail(image, err)
			continue
		}

		result, err := s.process(ctx, image, categories, autoImport)
		if err != nil {
			logrus.WithError(err).WithField("image", image.URL).Warn("Image import failed")
			report.fail(image, err)
			continue
		}

		report.Results = append(report.Results, result)
		report.Analyzed++
		switch result.Status {
		case StateImported:
			report.Imported++
		case StateUnmatched:
			report.Unmatched++
		}
	}

	logrus.WithFields(logrus.Fields{
		"analyzed":  report.Analyzed,
		"failed":    report.Failed,
		"imported":  report.Imported,
		"unmatched": report.Unmatched,
	}).Info("AI import batch finished")
	return report, nil
}

func (s *Service) process(ctx context.Context, image Image, categories []models.Category, autoImport bool) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, AnalyzeTimeout)
	defer cancel()

	analysis, err := s.analyzer.Analyze(ctx, image.URL)
	if err != nil {
		return Result{}, fmt.Errorf("analysis failed: %w", err)
	}

	draft, matched := BuildDraft(image, analysis, categories)
	result := Result{
		ImageInfo:       image,
		Analysis:        analysis,
		ProductData:     draft,
		CategoryMatched: matched,
		Status:          StateAnalyzed,
	}
	if !matched {
		result.Status = StateUnmatched
		return result, nil
	}
	if !autoImport {
		return result, nil
	}

	product, err := s.create(ctx, draft)
	if err != nil {
		return Result{}, fmt.Errorf("import failed: %w", err)
	}
	result.Product = &product
	result.Status = StateImported
	return result, nil
}

// ImportDrafts saves drafts reviewed by an admin. Each draft is validated
// on its own.
func (s *Service) ImportDrafts(ctx context.Context, drafts []models.Product) ImportReport {
	report := ImportReport{Products: []models.Product{}, Errors: []ItemError{}}
	for _, draft := range drafts {
		draft.AIGenerated = true
		product, err := s.create(ctx, draft)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, ItemError{Image: draft.ImageURL, Error: err.Error()})
			continue
		}
		report.Imported++
		report.Products = append(report.Products, product)
	}
	return report
}

func (s *Service) create(ctx context.Context, draft models.Product) (models.Product, error) {
	if draft.CategoryID.IsZero() {
		return models.Product{}, errNoCategory
	}
	draft.ApplyDefaults()
	if err := models.Validate(draft); err != nil {
		return models.Product{}, err
	}
	return s.products.Create(ctx, draft)
}

func (r *Report) fail(image Image, err error) {
	r.Failed++
	r.Errors = append(r.Errors, ItemError{Image: image.name(), Error: err.Error()})
}
