package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store[T, U any] interface {
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id primitive.ObjectID, input U) (T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// resource serves create, update and delete for one admin-managed entity.
// T is the entity and U its partial update body.
type resource[T, U any] struct {
	name     string
	store    store[T, U]
	recordID func(U) string
}

func (r resource[T, U]) create(c *gin.Context) {
	var item T
	if !decodeJSON(c, &item) {
		return
	}
	if d, ok := any(&item).(defaulter); ok {
		d.ApplyDefaults()
	}
	if !validateBody(c, item) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	created, err := r.store.Create(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, utils.ErrorResponse(r.name+" already exists"))
			return
		}
		internalError(c, "failed to create "+r.name, err)
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(r.name+" created successfully", created))
}

func (r resource[T, U]) update(c *gin.Context) {
	var input U
	if !decodeJSON(c, &input) || !validateBody(c, input) {
		return
	}
	id, ok := parseID(r.recordID(input))
	if !ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid "+r.name+" id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	updated, err := r.store.Update(ctx, id, input)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse(r.name+" not found"))
		return
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, utils.ErrorResponse(r.name+" already exists"))
		return
	case err != nil:
		internalError(c, "failed to update "+r.name, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(r.name+" updated successfully", updated))
}

// remove is idempotent: deleting an id that does not exist still succeeds.
func (r resource[T, U]) remove(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid "+r.name+" id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	if err := r.store.Delete(ctx, id); err != nil {
		internalError(c, "failed to delete "+r.name, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(r.name+" deleted successfully", gin.H{"id": id.Hex()}))
}
