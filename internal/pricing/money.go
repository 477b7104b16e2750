package pricing

import "math"

// VATRate is the UK standard VAT rate applied to every fee.
const VATRate = 0.20

// RangeSpread is the presentation spread around a guide total, in pounds.
const RangeSpread = 30.0

// MoneyBreakdown splits a VAT-inclusive amount into its net and VAT parts.
// Configured fees are gross, so net+vat reconstructs the gross exactly.
type MoneyBreakdown struct {
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"`
	VAT   float64 `json:"vat"`
}

// BreakdownFromGross derives the net/VAT split of a gross amount.
func BreakdownFromGross(gross float64) MoneyBreakdown {
	net := Round2(gross / (1 + VATRate))
	return MoneyBreakdown{
		Gross: gross,
		Net:   net,
		VAT:   Round2(gross - net),
	}
}

// Round2 rounds to the nearest penny.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundToNearestFive rounds to the nearest five pounds, the unit all guide
// figures are presented in.
func RoundToNearestFive(v float64) float64 {
	return math.Round(v/5) * 5
}

// QuoteRange is the displayed min/max band around a guide total.
type QuoteRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeForTotal spreads a guide total into its displayed range, never
// dropping below zero.
func RangeForTotal(totalGross float64) QuoteRange {
	min := totalGross - RangeSpread
	if min < 0 {
		min = 0
	}
	return QuoteRange{Min: min, Max: totalGross + RangeSpread}
}
