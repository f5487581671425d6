package handlers

import (
	"context"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	repo repository.TestimonialRepository
	resource[models.Testimonial, models.UpdateTestimonialInput]
}

func NewTestimonialHandler(repo repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{
		repo: repo,
		resource: resource[models.Testimonial, models.UpdateTestimonialInput]{
			name:     "testimonial",
			store:    repo,
			recordID: func(in models.UpdateTestimonialInput) string { return in.ID },
		},
	}
}

// ListTestimonials returns every testimonial, or only featured ones with
// ?featured=true for the homepage carousel.
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	items, err := h.repo.List(ctx, c.Query("featured") == "true")
	if err != nil {
		internalError(c, "failed to fetch testimonials", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("testimonials fetched successfully", gin.H{
		"testimonials": items,
	}))
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) { h.create(c) }
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) { h.update(c) }
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) { h.remove(c) }
