package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateQuote_StandardLevel2(t *testing.T) {
	breakdown, err := CalculateQuote(QuoteInput{
		SurveyType:     "level2",
		Bedrooms:       3,
		PropertyValue:  250000,
		Complexity:     "standard",
		DistanceBandID: "within-10-miles",
	})
	require.NoError(t, err)

	assert.Equal(t, 545.0, breakdown.Base.Gross)
	assert.Equal(t, 545.0, breakdown.Total.Gross)
	assert.Equal(t, QuoteRange{Min: 515, Max: 575}, breakdown.Range)
	assert.Empty(t, breakdown.Adjustments)
	assert.Zero(t, breakdown.BedroomAdjustment)
	assert.Zero(t, breakdown.ValueAdjustment)
	assert.Zero(t, breakdown.DistanceSurcharge)
}

func TestCalculateQuote_PeriodPropertyFarAway(t *testing.T) {
	breakdown, err := CalculateQuote(QuoteInput{
		SurveyType:     "level2",
		Bedrooms:       5,
		PropertyValue:  800000,
		Complexity:     "period",
		DistanceBandID: "over-50-miles",
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(breakdown.Adjustments))
	for _, a := range breakdown.Adjustments {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"complexity", "extra-bedrooms", "distance"}, ids)

	assert.Equal(t, 170.0, breakdown.ValueAdjustment)
	assert.Equal(t, 40.0, breakdown.BedroomAdjustment)
	assert.Equal(t, 55.0, breakdown.DistanceSurcharge)
	assert.Equal(t, 940.0, breakdown.Total.Gross)
}

func TestCalculateQuote_AdjustmentReportingOrder(t *testing.T) {
	breakdown, err := CalculateQuote(QuoteInput{
		SurveyType:      "level3",
		Bedrooms:        6,
		PropertyValue:   475000,
		Complexity:      "extended",
		PropertyType:    "detached-house",
		PropertyAge:     "pre-1900",
		ExtensionStatus: "extended-and-converted",
		DistanceBandID:  "within-35-miles",
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(breakdown.Adjustments))
	for _, a := range breakdown.Adjustments {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{
		"property-type",
		"property-age",
		"extension",
		"complexity",
		"extra-bedrooms",
		"distance",
	}, ids)

	// 825 + 35 + 90 + 60 + 70 + 2*30 + 35 + value 70
	assert.Equal(t, 1245.0, breakdown.Total.Gross)
}

func TestCalculateQuote_UnknownSurveyType(t *testing.T) {
	_, err := CalculateQuote(QuoteInput{SurveyType: "drone-survey"})
	assert.ErrorIs(t, err, ErrUnsupportedSurveyType)

	_, err = CalculateQuote(QuoteInput{})
	assert.ErrorIs(t, err, ErrUnsupportedSurveyType)
}

func TestCalculateQuote_VATReconciles(t *testing.T) {
	inputs := []QuoteInput{
		{SurveyType: "level1", Bedrooms: 1, DistanceBandID: "within-10-miles"},
		{SurveyType: "level2", Bedrooms: 4, PropertyValue: 320000, Complexity: "extended", DistanceBandID: "within-20-miles"},
		{SurveyType: "level3", Bedrooms: 8, PropertyValue: 1200000, Complexity: "period", DistanceBandID: "over-50-miles", Extras: []string{"valuation", "thermal"}},
		{SurveyType: "epc", Bedrooms: 2, DistanceBandID: "within-50-miles"},
	}

	for _, input := range inputs {
		breakdown, err := CalculateQuote(input)
		require.NoError(t, err)
		assert.Equal(t, breakdown.Total.Gross, Round2(breakdown.Total.Net+breakdown.Total.VAT))
		assert.Equal(t, breakdown.Base.Gross, Round2(breakdown.Base.Net+breakdown.Base.VAT))
	}
}

func TestCalculateQuote_DefaultsAreConservative(t *testing.T) {
	// No band, no mileage: the farthest band applies so an unknown
	// location is never under-charged.
	breakdown, err := CalculateQuote(QuoteInput{SurveyType: "level1", Bedrooms: 2})
	require.NoError(t, err)
	assert.Equal(t, "over-50-miles", breakdown.DistanceBand.ID)
	assert.Equal(t, 55.0, breakdown.DistanceSurcharge)

	// Unrecognised band id degrades the same way.
	breakdown, err = CalculateQuote(QuoteInput{SurveyType: "level1", Bedrooms: 2, DistanceBandID: "teleport"})
	require.NoError(t, err)
	assert.Equal(t, "over-50-miles", breakdown.DistanceBand.ID)
}

func TestCalculateQuote_MileageResolvesBand(t *testing.T) {
	miles := 17.3
	breakdown, err := CalculateQuote(QuoteInput{SurveyType: "level2", Bedrooms: 3, DistanceMiles: &miles})
	require.NoError(t, err)
	assert.Equal(t, "within-20-miles", breakdown.DistanceBand.ID)
	assert.Equal(t, 25.0, breakdown.DistanceSurcharge)
}

func TestCalculateQuote_BedroomClamping(t *testing.T) {
	low, err := CalculateQuote(QuoteInput{SurveyType: "level2", Bedrooms: -4, DistanceBandID: "within-10-miles"})
	require.NoError(t, err)
	assert.Zero(t, low.BedroomAdjustment)

	high, err := CalculateQuote(QuoteInput{SurveyType: "level2", Bedrooms: 14, DistanceBandID: "within-10-miles"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.BedroomAdjustment) // capped at 8 bedrooms, 5 over the allowance
}

func TestCalculateQuote_ExtrasDeduplicated(t *testing.T) {
	breakdown, err := CalculateQuote(QuoteInput{
		SurveyType:     "epc",
		Bedrooms:       1,
		DistanceBandID: "within-10-miles",
		Extras:         []string{"thermal", "thermal", "valuation", "jetwash"},
	})
	require.NoError(t, err)

	require.Len(t, breakdown.AppliedExtras, 2)
	assert.Equal(t, "thermal", breakdown.AppliedExtras[0].ID)
	assert.Equal(t, "valuation", breakdown.AppliedExtras[1].ID)
	assert.Equal(t, 235.0, breakdown.ExtrasTotal)
}

func TestCalculateQuote_UnknownComplexityDefaultsToStandard(t *testing.T) {
	breakdown, err := CalculateQuote(QuoteInput{SurveyType: "level2", Bedrooms: 3, Complexity: "haunted", DistanceBandID: "within-10-miles"})
	require.NoError(t, err)
	assert.Equal(t, "standard", breakdown.Complexity.ID)
	assert.Equal(t, 545.0, breakdown.Total.Gross)
}

func TestBandForMiles(t *testing.T) {
	tests := []struct {
		name     string
		miles    float64
		expected string
	}{
		{name: "just inside first band", miles: 9.99, expected: "within-10-miles"},
		{name: "boundary belongs to lower band", miles: 10, expected: "within-10-miles"},
		{name: "just over first boundary", miles: 10.01, expected: "within-20-miles"},
		{name: "twenty mile boundary", miles: 20, expected: "within-20-miles"},
		{name: "thirty five mile boundary", miles: 35, expected: "within-35-miles"},
		{name: "fifty mile boundary", miles: 50, expected: "within-50-miles"},
		{name: "beyond fifty", miles: 50.01, expected: "over-50-miles"},
		{name: "zero", miles: 0, expected: "within-10-miles"},
		{name: "negative clamps to zero", miles: -3, expected: "within-10-miles"},
		{name: "NaN falls through to farthest", miles: math.NaN(), expected: "over-50-miles"},
		{name: "infinity falls through to farthest", miles: math.Inf(1), expected: "over-50-miles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BandForMiles(tt.miles).ID)
		})
	}
}

func TestBreakdownFromGross(t *testing.T) {
	money := BreakdownFromGross(545)
	assert.Equal(t, 454.17, money.Net)
	assert.Equal(t, 90.83, money.VAT)
	assert.Equal(t, 545.0, Round2(money.Net+money.VAT))
}

func TestRangeForTotal(t *testing.T) {
	assert.Equal(t, QuoteRange{Min: 515, Max: 575}, RangeForTotal(545))
	assert.Equal(t, QuoteRange{Min: 0, Max: 50}, RangeForTotal(20))
}

func TestRoundToNearestFive(t *testing.T) {
	assert.Equal(t, 545.0, RoundToNearestFive(544))
	assert.Equal(t, 545.0, RoundToNearestFive(547.49))
	assert.Equal(t, 550.0, RoundToNearestFive(547.5))
	assert.Equal(t, 0.0, RoundToNearestFive(2.4))
}

func TestParseCurrencyValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "plain number", input: "250000", expected: 250000},
		{name: "pound sign and commas", input: "£275,500", expected: 275500},
		{name: "currency prefix with pennies", input: "GBP 98,750.99", expected: 98750.99},
		{name: "no digits", input: "ask the agent", expected: 0},
		{name: "empty", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrencyValue(tt.input))
		})
	}
}

func TestParseBedroomsValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain count", input: "4", expected: 4},
		{name: "count with suffix", input: "4 bedrooms", expected: 4},
		{name: "no digits clamps to one", input: "studio", expected: 1},
		{name: "zero clamps to one", input: "0", expected: 1},
		{name: "large count caps", input: "12", expected: MaxBedrooms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBedroomsValue(tt.input))
		})
	}
}
