package handler

import (
	"context"
	"errors"
	"net/http"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/pricing"
	"surveyquote-api/internal/service"

	"github.com/gin-gonic/gin"
)

// EnquiryHandler handles enquiry submission requests
type EnquiryHandler struct {
	service EnquiryService
}

// Service interface for dependency injection
type EnquiryService interface {
	Submit(context.Context, models.EnquiryRequest) (models.Enquiry, error)
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(svc EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: svc}
}

// Submit handles POST /enquiries requests
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req models.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	enquiry, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEnquiry):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		case errors.Is(err, pricing.ErrUnsupportedSurveyType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported survey type"})
		case enquiry.ID != 0:
			// Stored but not forwarded; the office picks it up from the
			// database.
			c.JSON(http.StatusAccepted, gin.H{"id": enquiry.ID, "forwarded": false})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": enquiry.ID, "forwarded": true})
}
