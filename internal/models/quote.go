package models

// QuoteRequest is the form payload a quote is calculated from. Bedrooms and
// property value arrive as free text because the public form does not
// validate them; the service normalises both.
type QuoteRequest struct {
	SurveyType      string   `json:"survey_type" binding:"required"`
	Bedrooms        string   `json:"bedrooms"`
	PropertyValue   string   `json:"property_value"`
	Complexity      string   `json:"complexity"`
	PropertyType    string   `json:"property_type"`
	PropertyAge     string   `json:"property_age"`
	ExtensionStatus string   `json:"extension_status"`
	DistanceBandID  string   `json:"distance_band_id"`
	Postcode        string   `json:"postcode"`
	Address         string   `json:"address"`
	Extras          []string `json:"extras"`
}

// DistanceReport describes how far an address is from the home base and
// which travel band that distance falls in.
type DistanceReport struct {
	Postcode      string  `json:"postcode"`
	Outcode       string  `json:"outcode"`
	DistanceMiles float64 `json:"distance_miles"`
	BandID        string  `json:"band_id"`
	BandLabel     string  `json:"band_label"`
	Surcharge     float64 `json:"surcharge"`
	Source        string  `json:"source"`
}

// Distance sources, in order of preference.
const (
	DistanceSourceLive    = "live"
	DistanceSourceStatic  = "static"
	DistanceSourceUnknown = "unknown"
)

// Enquiry is a survey enquiry as stored and as forwarded to the mail
// pipeline. Contact fields come from the form; quote fields are the computed
// breakdown at submission time.
type Enquiry struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Postcode      string   `json:"postcode"`
	Message       string   `json:"message"`
	SurveyType    string   `json:"survey_type"`
	SurveyLabel   string   `json:"survey_label"`
	Bedrooms      int      `json:"bedrooms"`
	PropertyValue float64  `json:"property_value"`
	DistanceBand  string   `json:"distance_band"`
	QuoteTotal    float64  `json:"quote_total"`
	QuoteMin      float64  `json:"quote_min"`
	QuoteMax      float64  `json:"quote_max"`
	Extras        []string `json:"extras"`
}

// EnquiryRequest is the raw enquiry form payload. Legacy forms used several
// field names for the same value, so most contact fields have aliases; the
// service resolves them in a fixed order.
type EnquiryRequest struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Contact  string `json:"contact_name"`

	Email        string `json:"email"`
	EmailAddress string `json:"email_address"`

	Phone     string `json:"phone"`
	Telephone string `json:"telephone"`
	Mobile    string `json:"mobile"`

	Address  string `json:"address"`
	Property string `json:"property_address"`

	Postcode string `json:"postcode"`
	Message  string `json:"message"`

	Quote QuoteRequest `json:"quote"`
}
