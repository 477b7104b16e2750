package mailapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"surveyquote-api/internal/models"
)

// Sender forwards a completed enquiry to the external mail/PDF pipeline.
type Sender interface {
	Send(ctx context.Context, enquiry models.Enquiry) error
}

type sender struct {
	endpoint string
	http     *http.Client
}

// New builds a Sender posting to the given endpoint URL.
func New(endpoint string, httpClient *http.Client) Sender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &sender{endpoint: endpoint, http: httpClient}
}

// Send posts the enquiry as JSON. One attempt; the caller decides whether a
// failure is fatal for the submission.
func (s *sender) Send(ctx context.Context, enquiry models.Enquiry) error {
	body, err := json.Marshal(enquiry)
	if err != nil {
		return fmt.Errorf("mailapi: marshal enquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("mailapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mailapi: status %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
