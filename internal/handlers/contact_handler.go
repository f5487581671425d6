package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/adapters/repository"
	"github.com/developia-II/jewellery-storefront/internal/models"
	"github.com/developia-II/jewellery-storefront/internal/notify"
	"github.com/developia-II/jewellery-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const notifyTimeout = 30 * time.Second

type ContactHandler struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
}

func NewContactHandler(repo repository.ContactRepository, notifier notify.Notifier) *ContactHandler {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ContactHandler{repo: repo, notifier: notifier}
}

// SubmitContact stores a message from the public contact form.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if !decodeJSON(c, &msg) {
		return
	}
	msg.Status = models.ContactNew
	if !validateBody(c, msg) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	created, err := h.repo.Create(ctx, msg)
	if err != nil {
		internalError(c, "failed to save message", err)
		return
	}

	go h.notify(created)
	c.JSON(http.StatusCreated, utils.SuccessResponse("message received", created))
}

func (h *ContactHandler) notify(msg models.ContactMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := h.notifier.ContactReceived(ctx, msg); err != nil {
		logrus.WithError(err).WithField("contactId", msg.ID.Hex()).Error("Failed to send contact notification")
	}
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	status := models.ContactStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("status must be one of new, read, replied"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	messages, err := h.repo.List(ctx, status)
	if err != nil {
		internalError(c, "failed to fetch messages", err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("messages fetched successfully", gin.H{
		"messages": messages,
	}))
}

// UpdateContactStatus moves a message through new, read and replied.
// Moving backwards is allowed and logged.
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var input models.UpdateContactStatusInput
	if !decodeJSON(c, &input) || !validateBody(c, input) {
		return
	}
	id, ok := parseID(input.ID)
	if !ok {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid message id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbTimeout)
	defer cancel()

	updated, previous, err := h.repo.UpdateStatus(ctx, id, input.Status)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("message not found"))
		return
	}
	if err != nil {
		internalError(c, "failed to update message", err)
		return
	}

	if previous.IsBackward(input.Status) {
		logrus.WithFields(logrus.Fields{
			"contactId": id.Hex(),
			"from":      previous,
			"to":        input.Status,
			"userId":    c.GetString("userId"),
		}).Warn("Contact message status moved backwards")
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("message updated successfully", updated))
}
