package service

import (
	"context"
	"errors"
	"fmt"

	"surveyquote-api/internal/models"
	"surveyquote-api/internal/pricing"
)

// ErrInvalidEnquiry means the submission is missing required contact details.
var ErrInvalidEnquiry = errors.New("service: enquiry requires a name and email address")

// EnquiryRepository interface for dependency injection
type EnquiryRepository interface {
	InsertEnquiry(ctx context.Context, enquiry models.Enquiry) (int64, error)
}

// EnquirySender interface for dependency injection
type EnquirySender interface {
	Send(ctx context.Context, enquiry models.Enquiry) error
}

// QuoteBuilder interface for dependency injection
type QuoteBuilder interface {
	BuildQuote(ctx context.Context, req models.QuoteRequest) (pricing.Breakdown, error)
}

// EnquiryService accepts survey enquiries: it prices the quote, stores the
// enquiry, then forwards it to the mail/PDF pipeline.
type EnquiryService struct {
	repo   EnquiryRepository
	mail   EnquirySender
	quotes QuoteBuilder
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(repo EnquiryRepository, mail EnquirySender, quotes QuoteBuilder) *EnquiryService {
	return &EnquiryService{repo: repo, mail: mail, quotes: quotes}
}

// Submit validates and prices an enquiry, persists it, and forwards it.
// Persistence happens before forwarding so a mail outage never loses the
// enquiry; a forwarding failure is still reported to the caller.
func (s *EnquiryService) Submit(ctx context.Context, req models.EnquiryRequest) (models.Enquiry, error) {
	enquiry := buildEnquiry(req)
	if enquiry.Name == "" || enquiry.Email == "" {
		return models.Enquiry{}, ErrInvalidEnquiry
	}

	breakdown, err := s.quotes.BuildQuote(ctx, req.Quote)
	if err != nil {
		return models.Enquiry{}, fmt.Errorf("service: failed to price enquiry: %w", err)
	}

	enquiry.SurveyType = breakdown.Survey.ID
	enquiry.SurveyLabel = breakdown.Survey.Label
	enquiry.Bedrooms = pricing.ParseBedroomsValue(req.Quote.Bedrooms)
	enquiry.PropertyValue = pricing.ParseCurrencyValue(req.Quote.PropertyValue)
	enquiry.DistanceBand = breakdown.DistanceBand.ID
	enquiry.QuoteTotal = breakdown.Total.Gross
	enquiry.QuoteMin = breakdown.Range.Min
	enquiry.QuoteMax = breakdown.Range.Max
	enquiry.Extras = extraIDs(breakdown.AppliedExtras)

	id, err := s.repo.InsertEnquiry(ctx, enquiry)
	if err != nil {
		return models.Enquiry{}, fmt.Errorf("service: failed to store enquiry: %w", err)
	}
	enquiry.ID = id

	if err := s.mail.Send(ctx, enquiry); err != nil {
		return enquiry, fmt.Errorf("service: enquiry %d stored but not forwarded: %w", id, err)
	}

	return enquiry, nil
}

// buildEnquiry resolves the legacy field aliases. Each contact field takes
// the first non-empty alias, checked in a fixed order.
func buildEnquiry(req models.EnquiryRequest) models.Enquiry {
	return models.Enquiry{
		Name:     firstNonEmpty(req.Name, req.FullName, req.Contact),
		Email:    firstNonEmpty(req.Email, req.EmailAddress),
		Phone:    firstNonEmpty(req.Phone, req.Telephone, req.Mobile),
		Address:  firstNonEmpty(req.Address, req.Property, req.Quote.Address),
		Postcode: firstNonEmpty(req.Postcode, req.Quote.Postcode),
		Message:  req.Message,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func extraIDs(extras []pricing.ExtraService) []string {
	if len(extras) == 0 {
		return nil
	}
	ids := make([]string, len(extras))
	for i, e := range extras {
		ids[i] = e.ID
	}
	return ids
}
