package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/services/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMediaUnavailableWithoutHost(t *testing.T) {
	env := newTestEnv(t, func(o *Options) { o.Assets = nil })
	w := env.do(http.MethodGet, "/api/media/list", nil, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUploadSignature(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/media/upload-signature", nil, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sig media.UploadSignature
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sig))
	assert.Equal(t, "jewellery", sig.Folder)
	assert.Equal(t, "demo", sig.CloudName)
	assert.WithinDuration(t, time.Now(), time.Unix(sig.Timestamp, 0), time.Minute)

	w = env.do(http.MethodPost, "/api/media/upload-signature", map[string]any{"folder": "/bridal/"}, true)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sig))
	assert.Equal(t, "bridal", sig.Folder)
}

func TestListMedia(t *testing.T) {
	env := newTestEnv(t)
	env.assets.assets = []media.Asset{{PublicID: "jewellery/ring", URL: "https://cdn/ring.jpg", Filename: "ring"}}

	w := env.do(http.MethodGet, "/api/media/list", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count  int           `json:"count"`
		Images []media.Asset `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "ring", body.Images[0].Filename)
}

func TestDeleteMediaCascadesToProducts(t *testing.T) {
	env := newTestEnv(t)
	categoryID := primitive.NewObjectID()
	env.products.items = []models.Product{
		{ID: primitive.NewObjectID(), Name: "by id", CategoryID: categoryID, CloudinaryPublicID: "jewellery/a", ImageURL: "https://cdn/new-a.jpg"},
		{ID: primitive.NewObjectID(), Name: "legacy by url", CategoryID: categoryID, ImageURL: "https://cdn/a.jpg"},
		{ID: primitive.NewObjectID(), Name: "unrelated", CategoryID: categoryID, ImageURL: "https://cdn/b.jpg"},
	}

	w := env.do(http.MethodPost, "/api/media/delete", map[string]any{"images": []map[string]string{
		{"publicId": "jewellery/a", "url": "https://cdn/a.jpg"},
		{"publicId": "missing", "url": "https://cdn/missing.jpg"},
	}}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Deleted         int                 `json:"deleted"`
		ProductsDeleted int64               `json:"productsDeleted"`
		Errors          []media.DeleteError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Deleted)
	assert.Equal(t, int64(2), body.ProductsDeleted)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "missing", body.Errors[0].PublicID)
	require.Len(t, env.products.items, 1)
	assert.Equal(t, "unrelated", env.products.items[0].Name)
}

func TestDeleteMediaRequiresImages(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/media/delete", map[string]any{"images": []any{}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartImage(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	body, contentType := multipartImage(t, "ring.png", png)
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		URL      string `json:"url"`
		PublicID string `json:"publicId"`
		Filename string `json:"filename"`
		Type     string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "image/png", res.Type)
	assert.Contains(t, res.PublicID, "jewellery/")
	assert.NotContains(t, res.Filename, "ring")
	assert.Equal(t, 1, env.assets.uploaded)
}

func TestUploadRejectsNonImages(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartImage(t, "evil.png", []byte("<html><script>alert(1)</script></html>"))
	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.assets.uploaded)
}
