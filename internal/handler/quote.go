package handler

import (
	"context"
	"errors"
	"net/http"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/pricing"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote calculation requests
type QuoteHandler struct {
	service QuoteService
}

// Service interface for dependency injection
type QuoteService interface {
	BuildQuote(context.Context, models.QuoteRequest) (pricing.Breakdown, error)
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(svc QuoteService) *QuoteHandler {
	return &QuoteHandler{service: svc}
}

// Quote handles POST /quote requests
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breakdown, err := h.service.BuildQuote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrUnsupportedSurveyType) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported survey type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// Surveys handles GET /surveys requests, listing the survey catalogue with
// its distance bands and add-on services.
func (h *QuoteHandler) Surveys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"surveys":        pricing.Surveys,
		"distance_bands": pricing.DistanceBands,
		"extras":         pricing.Extras,
	})
}
