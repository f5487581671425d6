package handlers

import (
	"context"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	repo repository.CatalogRepository
	resource[models.Catalog, models.UpdateCatalogInput]
}

func NewCatalogHandler(repo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{
		repo: repo,
		resource: resource[models.Catalog, models.UpdateCatalogInput]{
			name:     "catalog",
			store:    repo,
			recordID: func(in models.UpdateCatalogInput) string { return in.ID },
		},
	}
}

func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	items, err := h.repo.List(ctx)
	if err != nil {
		internalError(c, "failed to fetch catalogs", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("catalogs fetched successfully", gin.H{
		"catalogs": items,
	}))
}

func (h *CatalogHandler) CreateCatalog(c *gin.Context) { h.create(c) }
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) { h.update(c) }
func (h *CatalogHandler) DeleteCatalog(c *gin.Context) { h.remove(c) }
