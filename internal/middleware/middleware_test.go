package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(UserIDKey), "email": c.GetString(EmailKey)})
	})
	r.GET("/private", chain...)
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken(secret, "u1", "admin@shop.in", "admin", time.Now())
	require.NoError(t, err)
	r := newRouter(AuthMiddleware(secret))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"no token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"userId":"u1","email":"admin@shop.in"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	admin, err := utils.GenerateToken(secret, "u1", "a@shop.in", "admin", time.Now())
	require.NoError(t, err)
	viewer, err := utils.GenerateToken(secret, "u2", "v@shop.in", "viewer", time.Now())
	require.NoError(t, err)
	roleless, err := utils.GenerateToken(secret, "u3", "r@shop.in", "", time.Now())
	require.NoError(t, err)

	r := newRouter(AuthMiddleware(secret), RoleMiddleware("Admin"))

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+admin).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+viewer).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+roleless).Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"path":"/boom"`)
}
