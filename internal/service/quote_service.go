package service

import (
	"context"
	"errors"
	"fmt"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/pricing"
)

// DistanceEstimator interface for dependency injection
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, text string) (models.DistanceReport, error)
}

// QuoteService contains the core business logic for quote calculation
type QuoteService struct {
	distance DistanceEstimator
}

// NewQuoteService creates a new quote service
func NewQuoteService(distance DistanceEstimator) *QuoteService {
	return &QuoteService{distance: distance}
}

// BuildQuote normalises a raw form payload and computes its fee breakdown.
// An explicit distance band wins; otherwise the band is derived from the
// postcode or address when one was supplied.
func (s *QuoteService) BuildQuote(ctx context.Context, req models.QuoteRequest) (pricing.Breakdown, error) {
	input := pricing.QuoteInput{
		SurveyType:      req.SurveyType,
		Bedrooms:        pricing.ParseBedroomsValue(req.Bedrooms),
		PropertyValue:   pricing.ParseCurrencyValue(req.PropertyValue),
		Complexity:      req.Complexity,
		PropertyType:    req.PropertyType,
		PropertyAge:     req.PropertyAge,
		ExtensionStatus: req.ExtensionStatus,
		DistanceBandID:  req.DistanceBandID,
		Extras:          req.Extras,
	}

	if input.DistanceBandID == "" {
		if miles, ok := s.estimateMiles(ctx, req); ok {
			input.DistanceMiles = &miles
		}
	}

	breakdown, err := pricing.CalculateQuote(input)
	if err != nil {
		if errors.Is(err, pricing.ErrUnsupportedSurveyType) {
			return pricing.Breakdown{}, err
		}
		return pricing.Breakdown{}, fmt.Errorf("service: failed to calculate quote: %w", err)
	}

	return breakdown, nil
}

func (s *QuoteService) estimateMiles(ctx context.Context, req models.QuoteRequest) (float64, bool) {
	if s.distance == nil {
		return 0, false
	}

	for _, text := range []string{req.Postcode, req.Address} {
		if text == "" {
			continue
		}
		report, err := s.distance.EstimateDistance(ctx, text)
		if err != nil || report.Source == models.DistanceSourceUnknown {
			continue
		}
		return report.DistanceMiles, true
	}
	return 0, false
}
