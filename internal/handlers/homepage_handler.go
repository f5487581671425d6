package handlers

import (
	"context"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type HomePageHandler struct {
	repo repository.HomePageRepository
}

func NewHomePageHandler(repo repository.HomePageRepository) *HomePageHandler {
	return &HomePageHandler{repo: repo}
}

// GetHomePage returns the homepage content, with null data before the
// first save.
func (h *HomePageHandler) GetHomePage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	page, err := h.repo.Get(ctx)
	if err != nil {
		internalError(c, "failed to fetch homepage", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("homepage fetched successfully", page))
}

func (h *HomePageHandler) UpdateHomePage(c *gin.Context) {
	var input models.UpdateHomePageInput
	if !decodeJSON(c, &input) || !validateBody(c, input) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	page, err := h.repo.Upsert(ctx, input)
	if err != nil {
		internalError(c, "failed to save homepage", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("homepage saved successfully", page))
}
