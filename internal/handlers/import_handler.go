package handlers

import (
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/services/importer"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importer *importer.Service
}

func NewImportHandler(svc *importer.Service) *ImportHandler {
	return &ImportHandler{importer: svc}
}

type analyzeRequest struct {
	Images     []importer.Image `json:"images" validate:"required,min=1,dive"`
	AutoImport bool             `json:"autoImport"`
}

// AnalyzeAndImport drafts a product for each image and, with autoImport,
// saves the drafts straight away.
func (h *ImportHandler) AnalyzeAndImport(c *gin.Context) {
	if !h.importer.CanAnalyze() {
		c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse("AI analysis is not configured"))
		return
	}
	var req analyzeRequest
	if !decodeJSON(c, &req) || !validateBody(c, req) {
		return
	}

	report, err := h.importer.AnalyzeBatch(c.Request.Context(), req.Images, req.AutoImport)
	if err != nil {
		internalError(c, "failed to start analysis", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analyzed":  report.Analyzed,
		"failed":    report.Failed,
		"imported":  report.Imported,
		"unmatched": report.Unmatched,
		"results":   report.Results,
		"errors":    report.Errors,
	})
}

type importRequest struct {
	Products []models.Product `json:"products" validate:"required,min=1"`
}

// ImportProducts saves drafts an admin reviewed after analysis.
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	var req importRequest
	if !decodeJSON(c, &req) || !validateBody(c, req) {
		return
	}

	report := h.importer.ImportDrafts(c.Request.Context(), req.Products)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imported": report.Imported,
		"failed":   report.Failed,
		"products": report.Products,
		"errors":   report.Errors,
	})
}
