package handlers

import (
	"net/http"
	"testing"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type loginData struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func TestLoginProvisionsFirstAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": " Owner@Shop.in ", "password": "kundan123"}, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data loginData
	decode(t, w, &data)
	assert.Equal(t, "owner@shop.in", data.User.Email)
	assert.Equal(t, models.RoleAdmin, data.User.Role)
	assert.Equal(t, 1, env.users.creates)

	claims, err := utils.VerifyToken(testSecret, data.Token)
	require.NoError(t, err)
	assert.Equal(t, data.User.ID, claims.UserID)

	stored := env.users.byEmail["owner@shop.in"]
	assert.NotEqual(t, "kundan123", stored.Password)

	w = env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "owner@shop.in", "password": "kundan123"}, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.users.creates)
}

func TestLoginWrongPasswordCreatesNothing(t *testing.T) {
	env := newTestEnv(t)
	hash, err := utils.HashPassword("right")
	require.NoError(t, err)
	env.users.byEmail["owner@shop.in"] = models.User{ID: primitive.NewObjectID(), Email: "owner@shop.in", Password: hash, Role: models.RoleAdmin}

	w := env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "owner@shop.in", "password": "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w, nil).Message)
	assert.Equal(t, 0, env.users.creates)
	assert.Len(t, env.users.byEmail, 1)
}

func TestLoginWithoutAutoProvision(t *testing.T) {
	env := newTestEnv(t, func(o *Options) { o.AutoProvision = false })

	w := env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "stranger@shop.in", "password": "x"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.users.byEmail)
}

func TestLoginConcurrentProvisionFallsBackToStoredUser(t *testing.T) {
	env := newTestEnv(t)
	hash, err := utils.HashPassword("first")
	require.NoError(t, err)
	winner := models.User{ID: primitive.NewObjectID(), Email: "owner@shop.in", Password: hash, Role: models.RoleAdmin}
	env.users.raceWith = &winner

	w := env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "owner@shop.in", "password": "second"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.users.creates)

	w = env.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "owner@shop.in", "password": "first"}, false)
	require.Equal(t, http.StatusOK, w.Code)
	var data loginData
	decode(t, w, &data)
	assert.Equal(t, winner.ID.Hex(), data.User.ID)
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)
	for _, body := range []map[string]any{
		{"email": "owner@shop.in"},
		{"email": "not-an-email", "password": "x"},
		{},
	} {
		w := env.do(http.MethodPost, "/api/auth/login", body, false)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, env.users.byEmail)
}
