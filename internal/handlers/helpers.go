package handlers

import (
	"net/http"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dbTimeout = 10 * time.Second

type defaulter interface {
	ApplyDefaults()
}

func parseID(raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	return id, err == nil
}

func decodeJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return false
	}
	return true
}

func validateBody(c *gin.Context, v any) bool {
	if err := models.Validate(v); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse(models.ValidationMessage(err)))
		return false
	}
	return true
}

// internalError logs err and answers 500 with the failing dependency's
// message appended.
func internalError(c *gin.Context, message string, err error) {
	logrus.WithError(err).WithField("path", c.FullPath()).Error(message)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse(message+": "+err.Error()))
}
