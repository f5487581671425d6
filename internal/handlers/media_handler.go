package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	assets   media.AssetHost
	products media.ProductCleaner
	folder   string
	now      func() time.Time
}

// NewMediaHandler accepts a nil host; every media route then answers 503.
func NewMediaHandler(assets media.AssetHost, products media.ProductCleaner, folder string) *MediaHandler {
	return &MediaHandler{assets: assets, products: products, folder: folder, now: time.Now}
}

func (h *MediaHandler) available(c *gin.Context) bool {
	if h.assets == nil {
		c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse("media storage is not configured"))
		return false
	}
	return true
}

type signatureRequest struct {
	Folder string `json:"folder"`
}

// UploadSignature signs a direct browser upload into the media folder.
func (h *MediaHandler) UploadSignature(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req signatureRequest
	if c.Request.ContentLength > 0 && !decodeJSON(c, &req) {
		return
	}
	folder := strings.Trim(req.Folder, "/ ")
	if folder == "" {
		folder = h.folder
	}

	sig, err := h.assets.SignUpload(folder, h.now())
	if err != nil {
		internalError(c, "failed to sign upload", err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	if !h.available(c) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	prefix := h.folder
	if prefix != "" {
		prefix += "/"
	}
	images, err := h.assets.List(ctx, prefix, media.MaxListResults)
	if err != nil {
		internalError(c, "failed to list media", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(images), "images": images})
}

type deleteMediaRequest struct {
	Images []media.DeleteRequest `json:"images" validate:"required,min=1,dive"`
}

// DeleteMedia removes hosted images and every product that shows them.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req deleteMediaRequest
	if !decodeJSON(c, &req) || !validateBody(c, req) {
		return
	}

	report := media.DeleteAssets(c.Request.Context(), h.assets, h.products, req.Images)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted":         report.Deleted,
		"productsDeleted": report.ProductsDeleted,
		"errors":          report.Errors,
	})
}
