package handlers

import (
	"context"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

// CategoryHandler manages product categories. Deleting a category leaves
// its products in place; they list with a null category.
type CategoryHandler struct {
	repo repository.CategoryRepository
	resource[models.Category, models.UpdateCategoryInput]
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		repo: repo,
		resource: resource[models.Category, models.UpdateCategoryInput]{
			name:     "category",
			store:    repo,
			recordID: func(in models.UpdateCategoryInput) string { return in.ID },
		},
	}
}

func (h *CategoryHandler) GetAllProductCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	categories, err := h.repo.List(ctx)
	if err != nil {
		internalError(c, "failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("categories fetched successfully", gin.H{
		"categories": categories,
	}))
}

func (h *CategoryHandler) CreateProductCategory(c *gin.Context) { h.create(c) }
func (h *CategoryHandler) UpdateProductCategory(c *gin.Context) { h.update(c) }
func (h *CategoryHandler) DeleteProductCategory(c *gin.Context) { h.remove(c) }
