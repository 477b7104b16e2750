package postcode

import (
	"regexp"
	"strings"
)

var (
	outwardPattern      = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?$`)
	fullPostcodePattern = regexp.MustCompile(`^([A-Z]{1,2}[0-9][A-Z0-9]?)([0-9][A-Z]{2})$`)
)

// NormalisePostcode uppercases the input, collapses internal whitespace and
// re-inserts the single space before the 3-character inward code. It performs
// no grammar validation beyond the reformatting.
func NormalisePostcode(text string) string {
	collapsed := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if len(collapsed) > 3 {
		return collapsed[:len(collapsed)-3] + " " + collapsed[len(collapsed)-3:]
	}
	return collapsed
}

// ExtractOutcode returns the outward code of a postcode-shaped input, or
// ok=false when the input is neither a full postcode nor a bare outward code.
// Matching runs against the collapsed text: splitting on the re-inserted
// space would shear bare 4-character outward codes ("SY13" -> "S Y13").
func ExtractOutcode(text string) (string, bool) {
	collapsed := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if collapsed == "" {
		return "", false
	}

	if m := fullPostcodePattern.FindStringSubmatch(collapsed); m != nil {
		return m[1], true
	}
	if outwardPattern.MatchString(collapsed) {
		return collapsed, true
	}
	return "", false
}

// ExtractPostcodeFromAddress scans the last four comma/whitespace-delimited
// tokens of a free-text address from the end backwards, looking for a full UK
// postcode. Postcodes split across two tokens ("CH7" "1AA") are re-joined.
// When no full postcode is present the first outward-shaped token encountered
// in the window is returned bare, or an empty string if nothing qualifies.
func ExtractPostcodeFromAddress(address string) string {
	fields := strings.FieldsFunc(strings.ToUpper(address), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == '\t' || r == ' '
	})

	start := len(fields) - 4
	if start < 0 {
		start = 0
	}

	outwardFallback := ""
	for i := len(fields) - 1; i >= start; i-- {
		if i > 0 {
			joined := fields[i-1] + fields[i]
			if m := fullPostcodePattern.FindStringSubmatch(joined); m != nil {
				return m[1] + " " + m[2]
			}
		}

		if m := fullPostcodePattern.FindStringSubmatch(fields[i]); m != nil {
			return m[1] + " " + m[2]
		}

		if outwardFallback == "" && outwardPattern.MatchString(fields[i]) {
			outwardFallback = fields[i]
		}
	}

	return outwardFallback
}
