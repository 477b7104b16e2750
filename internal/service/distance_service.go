package service

import (
	"context"
	"errors"
	"fmt"

	"surveyquote-api/internal/geoclient"
	"surveyquote-api/internal/models"
	"surveyquote-api/internal/postcode"
	"surveyquote-api/internal/pricing"

	"github.com/rs/zerolog/log"
)

// ErrNoPostcode means no postcode or outward code could be read from the
// supplied text.
var ErrNoPostcode = errors.New("service: no postcode found in input")

// GeoLocator interface for dependency injection
type GeoLocator interface {
	Locate(ctx context.Context, query string) (geoclient.Coordinates, error)
}

// DistanceService estimates travel distance from the home base to a
// property. Live geocoding is preferred; the embedded outcode table is the
// fallback so an estimate is still produced offline.
type DistanceService struct {
	resolver *postcode.Resolver
	geo      GeoLocator
}

// NewDistanceService creates a new distance service. geo may be nil, in
// which case only the static outcode table is consulted.
func NewDistanceService(resolver *postcode.Resolver, geo GeoLocator) *DistanceService {
	return &DistanceService{resolver: resolver, geo: geo}
}

// EstimateDistance reads a postcode out of free text and reports the
// distance and travel band for it. Unknown locations report the farthest
// band rather than failing, so a quote is never under-priced.
func (s *DistanceService) EstimateDistance(ctx context.Context, text string) (models.DistanceReport, error) {
	full := postcode.ExtractPostcodeFromAddress(text)
	if full == "" {
		full = postcode.NormalisePostcode(text)
	}
	outcode, ok := postcode.ExtractOutcode(full)
	if !ok {
		return models.DistanceReport{}, ErrNoPostcode
	}

	report := models.DistanceReport{
		Postcode: full,
		Outcode:  outcode,
	}

	if miles, ok := s.locateLive(ctx, full); ok {
		report.DistanceMiles = miles
		report.Source = models.DistanceSourceLive
	} else if miles, ok := s.resolver.DistanceFromOutcode(outcode); ok {
		report.DistanceMiles = miles
		report.Source = models.DistanceSourceStatic
	} else {
		report.Source = models.DistanceSourceUnknown
	}

	band := pricing.FallbackBand()
	if report.Source != models.DistanceSourceUnknown {
		band = pricing.BandForMiles(report.DistanceMiles)
	}
	report.BandID = band.ID
	report.BandLabel = band.Label
	report.Surcharge = band.Surcharge

	return report, nil
}

func (s *DistanceService) locateLive(ctx context.Context, query string) (float64, bool) {
	if s.geo == nil {
		return 0, false
	}

	coords, err := s.geo.Locate(ctx, query)
	if err != nil {
		if !errors.Is(err, geoclient.ErrNotFound) {
			log.Warn().Err(err).Str("query", query).Msg("live geocode failed, using static outcode table")
		}
		return 0, false
	}

	miles := postcode.HaversineMiles(postcode.HomeBase, postcode.Coordinates{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
	return pricing.Round2(miles), true
}

// MatchOutcodes searches the outcode table by free text. An empty query
// returns the nearest outcodes to the home base.
func (s *DistanceService) MatchOutcodes(query string, limit int) []postcode.Match {
	return s.resolver.MatchOutcodes(query, limit)
}

// DescribeArea answers the service-area lookups behind the coverage pages.
func (s *DistanceService) DescribeArea(outcode string) (string, []postcode.Area, error) {
	token, ok := postcode.ExtractOutcode(outcode)
	if !ok {
		return "", nil, fmt.Errorf("service: invalid outcode %q", outcode)
	}
	description, _ := s.resolver.DescribeOutcode(token)
	return description, s.resolver.AreasForOutcode(token), nil
}
