package pricing

import (
	"encoding/json"
	"math"
)

// SurveyTier is one of the services a quote can be produced for. BaseFee and
// BedroomPremium are gross (VAT-inclusive) figures; BedroomsIncluded is how
// many bedrooms the base fee already covers.
type SurveyTier struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	BaseFee          float64 `json:"base_fee"`
	BedroomsIncluded int     `json:"bedrooms_included"`
	BedroomPremium   float64 `json:"bedroom_premium"`
}

// Surveys is the fee table, in display order.
var Surveys = []SurveyTier{
	{ID: "level1", Label: "RICS Level 1 Home Survey", BaseFee: 425, BedroomsIncluded: 3, BedroomPremium: 20},
	{ID: "level2", Label: "RICS Level 2 Home Survey", BaseFee: 545, BedroomsIncluded: 3, BedroomPremium: 20},
	{ID: "level3", Label: "RICS Level 3 Building Survey", BaseFee: 825, BedroomsIncluded: 4, BedroomPremium: 30},
	{ID: "damp", Label: "Damp & Timber Investigation", BaseFee: 545, BedroomsIncluded: 0, BedroomPremium: 0},
	{ID: "ventilation", Label: "Ventilation & Condensation Assessment", BaseFee: 525, BedroomsIncluded: 0, BedroomPremium: 0},
	{ID: "epc", Label: "EPC with Floorplan", BaseFee: 180, BedroomsIncluded: 0, BedroomPremium: 0},
	{ID: "measured", Label: "Measured Survey & Floorplans", BaseFee: 395, BedroomsIncluded: 3, BedroomPremium: 15},
	// "unsure" is priced as the most requested survey so the guide figure
	// always exists.
	{ID: "unsure", Label: "Not sure yet", BaseFee: 545, BedroomsIncluded: 3, BedroomPremium: 20},
}

// ComplexityOption is a qualitative construction modifier with its flat
// gross surcharge.
type ComplexityOption struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Adjustment float64 `json:"adjustment"`
}

// ComplexityOptions in display order; the first entry is the default.
var ComplexityOptions = []ComplexityOption{
	{ID: "standard", Label: "Standard construction", Adjustment: 0},
	{ID: "extended", Label: "Extended / altered", Adjustment: 70},
	{ID: "period", Label: "Period / non-standard", Adjustment: 130},
}

// DistanceBand is a labelled mileage range carrying a flat travel surcharge.
// MaxMiles is +Inf on the final band; boundaries are upper-edge inclusive.
type DistanceBand struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	MinMiles  float64 `json:"min_miles"`
	MaxMiles  float64 `json:"max_miles"`
	Surcharge float64 `json:"surcharge"`
}

// DistanceBands partitions [0, inf) with no gaps, ascending.
var DistanceBands = []DistanceBand{
	{ID: "within-10-miles", Label: "0-10 miles", MinMiles: 0, MaxMiles: 10, Surcharge: 0},
	{ID: "within-20-miles", Label: "10-20 miles", MinMiles: 10, MaxMiles: 20, Surcharge: 25},
	{ID: "within-35-miles", Label: "20-35 miles", MinMiles: 20, MaxMiles: 35, Surcharge: 35},
	{ID: "within-50-miles", Label: "35-50 miles", MinMiles: 35, MaxMiles: 50, Surcharge: 45},
	{ID: "over-50-miles", Label: "50+ miles", MinMiles: 50, MaxMiles: math.Inf(1), Surcharge: 55},
}

// MarshalJSON leaves out max_miles on the final band; its open upper bound
// has no JSON representation.
func (b DistanceBand) MarshalJSON() ([]byte, error) {
	type band struct {
		ID        string   `json:"id"`
		Label     string   `json:"label"`
		MinMiles  float64  `json:"min_miles"`
		MaxMiles  *float64 `json:"max_miles,omitempty"`
		Surcharge float64  `json:"surcharge"`
	}
	out := band{ID: b.ID, Label: b.Label, MinMiles: b.MinMiles, Surcharge: b.Surcharge}
	if !math.IsInf(b.MaxMiles, 1) {
		out.MaxMiles = &b.MaxMiles
	}
	return json.Marshal(out)
}

// valueTier is a property-value band: the first tier whose limit is at or
// above the value applies.
type valueTier struct {
	limit  float64
	amount float64
}

var valueTiers = []valueTier{
	{limit: 250_000, amount: 0},
	{limit: 400_000, amount: 35},
	{limit: 550_000, amount: 70},
	{limit: 750_000, amount: 115},
	{limit: 950_000, amount: 170},
	{limit: math.Inf(1), amount: 240},
}

// Flat surcharges keyed by the form's property-type, property-age and
// extension identifiers. Unknown ids contribute nothing.
var propertyTypeAdjustments = map[string]float64{
	"flat-apartment":      0,
	"mid-terrace-house":   10,
	"end-terrace-house":   15,
	"semi-detached-house": 20,
	"bungalow":            25,
	"detached-house":      35,
	"cottage":             40,
}

var propertyAgeAdjustments = map[string]float64{
	"post-2000":           0,
	"1980-1999":           5,
	"1945-1979":           15,
	"1919-1944":           30,
	"victorian-edwardian": 50,
	"pre-1900":            90,
}

var extensionAdjustments = map[string]float64{
	"none":                   0,
	"extended":               40,
	"converted":              30,
	"extended-and-converted": 60,
}

var propertyTypeLabels = map[string]string{
	"flat-apartment":      "Flat / apartment",
	"mid-terrace-house":   "Mid-terrace house",
	"end-terrace-house":   "End-terrace house",
	"semi-detached-house": "Semi-detached house",
	"bungalow":            "Bungalow",
	"detached-house":      "Detached house",
	"cottage":             "Cottage",
}

var propertyAgeLabels = map[string]string{
	"post-2000":           "Built after 2000",
	"1980-1999":           "Built 1980-1999",
	"1945-1979":           "Built 1945-1979",
	"1919-1944":           "Built 1919-1944",
	"victorian-edwardian": "Victorian / Edwardian",
	"pre-1900":            "Pre-1900",
}

var extensionLabels = map[string]string{
	"extended":               "Extended",
	"converted":              "Loft or garage conversion",
	"extended-and-converted": "Extended with conversion",
}

// ExtraService is a discrete add-on with a flat gross price.
type ExtraService struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Extras is the add-on catalogue.
var Extras = []ExtraService{
	{ID: "valuation", Label: "Market valuation report", Price: 150},
	{ID: "thermal", Label: "Thermal imaging survey", Price: 85},
	{ID: "aerial", Label: "Aerial roof inspection", Price: 95},
	{ID: "floorplan", Label: "Marketing floorplan", Price: 75},
}

// SurveyByID looks up a survey tier.
func SurveyByID(id string) (SurveyTier, bool) {
	for _, s := range Surveys {
		if s.ID == id {
			return s, true
		}
	}
	return SurveyTier{}, false
}

// ComplexityByID looks up a complexity option, defaulting to standard.
func ComplexityByID(id string) ComplexityOption {
	for _, c := range ComplexityOptions {
		if c.ID == id {
			return c
		}
	}
	return ComplexityOptions[0]
}

// BandByID looks up a distance band.
func BandByID(id string) (DistanceBand, bool) {
	for _, b := range DistanceBands {
		if b.ID == id {
			return b, true
		}
	}
	return DistanceBand{}, false
}

// FallbackBand is the farthest band, applied whenever distance is unknown so
// an unpriced location can never be under-charged.
func FallbackBand() DistanceBand {
	return DistanceBands[len(DistanceBands)-1]
}

// BandForMiles selects the band containing a mileage figure. Negative values
// clamp to zero; non-finite values select the fallback band. Boundary values
// belong to the lower band.
func BandForMiles(miles float64) DistanceBand {
	if math.IsNaN(miles) || math.IsInf(miles, 0) {
		return FallbackBand()
	}
	if miles < 0 {
		miles = 0
	}
	for _, b := range DistanceBands {
		if miles <= b.MaxMiles {
			return b
		}
	}
	return FallbackBand()
}

// ExtraByID looks up an add-on service.
func ExtraByID(id string) (ExtraService, bool) {
	for _, e := range Extras {
		if e.ID == id {
			return e, true
		}
	}
	return ExtraService{}, false
}

func valueAdjustmentFor(propertyValue float64) float64 {
	if !(propertyValue > 0) {
		return 0
	}
	for _, tier := range valueTiers {
		if propertyValue <= tier.limit {
			return tier.amount
		}
	}
	return valueTiers[len(valueTiers)-1].amount
}
