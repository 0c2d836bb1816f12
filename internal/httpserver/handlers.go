package httpserver

import (
	"errors"
	"net/http"

	"gearstore/internal/domain"
	"gearstore/internal/logger"
	"gearstore/internal/storefront"
	"github.com/gin-gonic/gin"
)

const (
	noticeSubscribed  = "Successfully subscribed to newsletter!"
	noticeMessageSent = "Message sent successfully!"
)

type handlers struct {
	log     *logger.Logger
	catalog catalogReader
	carts   cartService
	content storefront.Content
}

// errorStatus maps service errors to an HTTP status and a visitor-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrInvalidVariant):
		return http.StatusBadRequest, "Please choose an available color and size"
	default:
		return http.StatusInternalServerError, "Something went wrong, please try again"
	}
}

func (h *handlers) respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error(c.Request.Context(), "request failed", err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func respondBindError(c *gin.Context, err error, req any) {
	body := gin.H{"error": "invalid request"}
	if fields := fieldErrors(err, req, "json"); fields != nil {
		body["error"] = "validation failed"
		body["fields"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}
