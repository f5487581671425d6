package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type ProductHandler struct {
	repo repository.ProductRepository
	resource[models.Product, models.UpdateProductInput]
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		repo: repo,
		resource: resource[models.Product, models.UpdateProductInput]{
			name:     "product",
			store:    repo,
			recordID: func(in models.UpdateProductInput) string { return in.ID },
		},
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	query, msg := parseProductQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(msg))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	products, total, err := h.repo.List(ctx, query)
	if err != nil {
		internalError(c, "failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("products fetched successfully", gin.H{
		"products": products,
		"total":    total,
	}))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) { h.create(c) }
func (h *ProductHandler) UpdateProduct(c *gin.Context) { h.update(c) }
func (h *ProductHandler) DeleteProduct(c *gin.Context) { h.remove(c) }

// parseProductQuery reads the storefront filters. A non-empty message means
// a parameter was malformed.
func parseProductQuery(c *gin.Context) (models.ProductQuery, string) {
	var q models.ProductQuery

	if raw := c.Query("category"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			return q, "invalid category id"
		}
		q.CategoryID = &id
	}
	q.Gender = c.Query("gender")

	var ok bool
	if q.MinPrice, ok = optionalFloat(c.Query("minPrice")); !ok {
		return q, "minPrice must be a number"
	}
	if q.MaxPrice, ok = optionalFloat(c.Query("maxPrice")); !ok {
		return q, "maxPrice must be a number"
	}

	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return q, "featured must be true or false"
		}
		q.Featured = &featured
	}

	q.Sort = models.ProductSort(c.Query("sort"))
	switch q.Sort {
	case "", models.SortNewest, models.SortOldest, models.SortPriceAsc, models.SortPriceDesc, models.SortName:
	default:
		return q, "sort must be one of newest, oldest, price_asc, price_desc, name"
	}

	page, limit := c.Query("page"), c.Query("limit")
	if page == "" && limit == "" {
		return q, ""
	}
	q.Page = 1
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return q, "page must be a positive integer"
		}
		q.Page = n
	}
	q.Limit = 20
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > maxPageSize {
			return q, "limit must be between 1 and 100"
		}
		q.Limit = n
	}
	return q, ""
}

func optionalFloat(raw string) (*float64, bool) {
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}
