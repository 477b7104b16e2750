package pricing

import "errors"

// ErrUnsupportedSurveyType is returned when a quote names a survey type the
// fee table does not carry. Every other malformed input degrades to a safe
// default; a missing base fee cannot.
var ErrUnsupportedSurveyType = errors.New("pricing: unsupported survey type")

// QuoteInput is everything a quote is calculated from. Bedrooms below 1
// clamp to 1 and above MaxBedrooms clamp to MaxBedrooms; PropertyValue at or
// below 0 means "not supplied". DistanceBandID takes precedence over
// DistanceMiles; with neither present the farthest band applies.
type QuoteInput struct {
	SurveyType      string
	Bedrooms        int
	PropertyValue   float64
	Complexity      string
	PropertyType    string
	PropertyAge     string
	ExtensionStatus string
	DistanceBandID  string
	DistanceMiles   *float64
	Extras          []string
}

// Adjustment is one reported additive term of a quote.
type Adjustment struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown exposes every additive term of a quote individually, alongside
// the rolled-up totals and the displayed range.
type Breakdown struct {
	Survey            SurveyTier       `json:"survey"`
	Complexity        ComplexityOption `json:"complexity"`
	DistanceBand      DistanceBand     `json:"distance_band"`
	Base              MoneyBreakdown   `json:"base"`
	BedroomAdjustment float64          `json:"bedroom_adjustment"`
	ValueAdjustment   float64          `json:"value_adjustment"`
	DistanceSurcharge float64          `json:"distance_surcharge"`
	Adjustments       []Adjustment     `json:"adjustments"`
	AppliedExtras     []ExtraService   `json:"applied_extras"`
	ExtrasTotal       float64          `json:"extras_total"`
	Total             MoneyBreakdown   `json:"total"`
	Range             QuoteRange       `json:"range"`
}

// CalculateQuote computes a deterministic fee breakdown. It is pure: the
// same input always yields an identical breakdown, and nothing is mutated.
func CalculateQuote(input QuoteInput) (Breakdown, error) {
	survey, ok := SurveyByID(input.SurveyType)
	if !ok {
		return Breakdown{}, ErrUnsupportedSurveyType
	}

	complexity := ComplexityByID(input.Complexity)
	band := resolveBand(input)

	bedrooms := ClampBedrooms(input.Bedrooms)
	bedroomAdjustment := 0.0
	if survey.BedroomPremium > 0 && bedrooms > survey.BedroomsIncluded {
		bedroomAdjustment = float64(bedrooms-survey.BedroomsIncluded) * survey.BedroomPremium
	}

	valueAdjustment := valueAdjustmentFor(input.PropertyValue)

	// Reporting order is fixed: property type, property age, extension,
	// complexity, extra bedrooms, distance. Zero-amount rules are omitted.
	adjustments := make([]Adjustment, 0, 6)
	appendNonZero := func(id, label string, amount float64) {
		if amount != 0 {
			adjustments = append(adjustments, Adjustment{ID: id, Label: label, Amount: amount})
		}
	}
	appendNonZero("property-type", propertyTypeLabels[input.PropertyType], propertyTypeAdjustments[input.PropertyType])
	appendNonZero("property-age", propertyAgeLabels[input.PropertyAge], propertyAgeAdjustments[input.PropertyAge])
	appendNonZero("extension", extensionLabels[input.ExtensionStatus], extensionAdjustments[input.ExtensionStatus])
	appendNonZero("complexity", complexity.Label, complexity.Adjustment)
	appendNonZero("extra-bedrooms", "Additional bedrooms", bedroomAdjustment)
	appendNonZero("distance", band.Label, band.Surcharge)

	applied, extrasTotal := selectExtras(input.Extras)

	totalGross := survey.BaseFee + valueAdjustment + extrasTotal
	for _, a := range adjustments {
		totalGross += a.Amount
	}
	totalGross = RoundToNearestFive(totalGross)

	return Breakdown{
		Survey:            survey,
		Complexity:        complexity,
		DistanceBand:      band,
		Base:              BreakdownFromGross(survey.BaseFee),
		BedroomAdjustment: bedroomAdjustment,
		ValueAdjustment:   valueAdjustment,
		DistanceSurcharge: band.Surcharge,
		Adjustments:       adjustments,
		AppliedExtras:     applied,
		ExtrasTotal:       extrasTotal,
		Total:             BreakdownFromGross(totalGross),
		Range:             RangeForTotal(totalGross),
	}, nil
}

// resolveBand picks the distance band: an explicit band id wins, then raw
// mileage, then the farthest band when nothing is known.
func resolveBand(input QuoteInput) DistanceBand {
	if input.DistanceBandID != "" {
		if band, ok := BandByID(input.DistanceBandID); ok {
			return band
		}
		return FallbackBand()
	}
	if input.DistanceMiles != nil {
		return BandForMiles(*input.DistanceMiles)
	}
	return FallbackBand()
}

// selectExtras resolves extra-service ids, dropping unknown ids and
// deduplicating repeats while keeping first-seen order.
func selectExtras(ids []string) ([]ExtraService, float64) {
	if len(ids) == 0 {
		return nil, 0
	}

	seen := make(map[string]struct{}, len(ids))
	applied := make([]ExtraService, 0, len(ids))
	total := 0.0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if extra, ok := ExtraByID(id); ok {
			applied = append(applied, extra)
			total += extra.Price
		}
	}
	if len(applied) == 0 {
		return nil, 0
	}
	return applied, total
}
