package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	users         repository.UserRepository
	secret        string
	autoProvision bool
	now           func() time.Time
}

func NewAuthHandler(users repository.UserRepository, secret string, autoProvision bool) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, autoProvision: autoProvision, now: time.Now}
}

// LoginUser exchanges email and password for a token. When auto-provisioning
// is on, the first login with an unknown email creates that admin account.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var input models.LoginInput
	if !decodeJSON(c, &input) {
		return
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if !validateBody(c, input) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, repository.ErrNotFound) && h.autoProvision:
		user, err = h.provision(ctx, input)
		if err != nil {
			internalError(c, "failed to create user", err)
			return
		}
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid credentials"))
		return
	case err != nil:
		internalError(c, "failed to look up user", err)
		return
	}

	if !utils.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(h.secret, user.ID.Hex(), user.Email, user.Role, h.now())
	if err != nil {
		internalError(c, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("login successful", gin.H{
		"token": token,
		"user":  user.Public(),
	}))
}

// provision creates an admin for an unseen email. If another request
// created it first, the stored user is returned instead so the password
// check runs against it.
func (h *AuthHandler) provision(ctx context.Context, input models.LoginInput) (models.User, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := h.users.Create(ctx, models.User{Email: input.Email, Password: hash, Role: models.RoleAdmin})
	if errors.Is(err, repository.ErrDuplicate) {
		return h.users.FindByEmail(ctx, input.Email)
	}
	if err != nil {
		return models.User{}, err
	}

	logrus.WithField("email", user.Email).Warn("Auto-provisioned admin account on first login")
	return user, nil
}
