package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/postcode"
	"surveyquote-api/internal/service"

	"github.com/gin-gonic/gin"
)

// DistanceHandler handles distance and coverage requests
type DistanceHandler struct {
	service DistanceService
}

// Service interface for dependency injection
type DistanceService interface {
	EstimateDistance(context.Context, string) (models.DistanceReport, error)
	MatchOutcodes(query string, limit int) []postcode.Match
	DescribeArea(outcode string) (string, []postcode.Area, error)
}

// NewDistanceHandler creates a new distance handler
func NewDistanceHandler(svc DistanceService) *DistanceHandler {
	return &DistanceHandler{service: svc}
}

// Distance handles GET /distance requests
func (h *DistanceHandler) Distance(c *gin.Context) {
	query := c.Query("postcode")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'postcode'"})
		return
	}

	report, err := h.service.EstimateDistance(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrNoPostcode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no postcode found in input"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Outcodes handles GET /outcodes requests
func (h *DistanceHandler) Outcodes(c *gin.Context) {
	limit := postcode.DefaultMatchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	matches := h.service.MatchOutcodes(c.Query("q"), limit)
	c.JSON(http.StatusOK, matches)
}

// Areas handles GET /areas requests
func (h *DistanceHandler) Areas(c *gin.Context) {
	outcode := c.Query("outcode")
	if outcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'outcode'"})
		return
	}

	description, areas, err := h.service.DescribeArea(outcode)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid outcode"})
		return
	}

	token, _ := postcode.ExtractOutcode(outcode)
	c.JSON(http.StatusOK, gin.H{
		"outcode":     token,
		"description": description,
		"areas":       areas,
	})
}
