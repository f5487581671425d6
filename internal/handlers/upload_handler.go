package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20

var uploadExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadImage streams a multipart "image" field to the asset host. The
// content type is sniffed from the bytes, not trusted from the client, and
// the file is stored under a fresh UUID.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	if !h.available(c) {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("No file provided or file too large (Max 10MB)"))
		return
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Failed to read file for validation"))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		internalError(c, "failed to rewind upload", err)
		return
	}

	contentType := http.DetectContentType(buffer[:n])
	fallbackExt, ok := uploadExtensions[contentType]
	if !ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Unsupported file type. Please upload JPG, PNG, WEBP, or GIF"))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = fallbackExt
	}
	publicID := uuid.New().String()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*dbTimeout)
	defer cancel()

	res, err := h.assets.Upload(ctx, file, h.folder, publicID)
	if err != nil {
		internalError(c, "Cloudinary upload failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Image uploaded successfully",
		"url":      res.URL,
		"publicId": res.PublicID,
		"filename": fmt.Sprintf("%s%s", publicID, ext),
		"size":     header.Size,
		"type":     contentType,
	})
}
