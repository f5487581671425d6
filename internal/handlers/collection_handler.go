package handlers

import (
	"context"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	repo repository.CollectionRepository
	resource[models.Collection, models.UpdateCollectionInput]
}

func NewCollectionHandler(repo repository.CollectionRepository) *CollectionHandler {
	return &CollectionHandler{
		repo: repo,
		resource: resource[models.Collection, models.UpdateCollectionInput]{
			name:     "collection",
			store:    repo,
			recordID: func(in models.UpdateCollectionInput) string { return in.ID },
		},
	}
}

func (h *CollectionHandler) ListCollections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	items, err := h.repo.List(ctx)
	if err != nil {
		internalError(c, "failed to fetch collections", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("collections fetched successfully", gin.H{
		"collections": items,
	}))
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) { h.create(c) }
func (h *CollectionHandler) UpdateCollection(c *gin.Context) { h.update(c) }
func (h *CollectionHandler) DeleteCollection(c *gin.Context) { h.remove(c) }
