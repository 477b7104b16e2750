package pricing

import (
	"math"
	"strconv"
	"strings"
)

// MaxBedrooms caps the bedroom count a quote will price for.
const MaxBedrooms = 8

// ParseCurrencyValue reads a property value from free text ("£275,500",
// "GBP 98,750.99"). Non-numeric or non-positive input becomes 0.
func ParseCurrencyValue(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) || parsed <= 0 {
		return 0
	}
	return parsed
}

// ParseBedroomsValue reads a bedroom count from free text ("4 bedrooms").
// Anything unparseable or below 1 becomes 1; counts cap at MaxBedrooms.
func ParseBedroomsValue(value string) int {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	parsed, err := strconv.Atoi(b.String())
	if err != nil || parsed < 1 {
		return 1
	}
	return ClampBedrooms(parsed)
}

// ClampBedrooms forces a bedroom count into [1, MaxBedrooms].
func ClampBedrooms(bedrooms int) int {
	if bedrooms < 1 {
		return 1
	}
	if bedrooms > MaxBedrooms {
		return MaxBedrooms
	}
	return bedrooms
}
