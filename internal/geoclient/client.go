package geoclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"surveyquote-api/internal/postcode"
)

// ErrNotFound means the geocoding service knows nothing about the query,
// after both the postcode and outcode lookups were tried.
var ErrNotFound = errors.New("geoclient: postcode not found")

// Coordinates is a geocoded point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client geocodes UK postcodes and outward codes.
type Client interface {
	Locate(ctx context.Context, query string) (Coordinates, error)
}

type client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client against a postcodes.io-compatible base URL.
func New(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Locate geocodes a full postcode, falling back to the outward-code endpoint
// when the full postcode is unknown. One attempt per endpoint, no retries.
// Whitespace is stripped before the lookup, so "CH5 4HS" requests
// /postcodes/CH54HS.
func (c *client) Locate(ctx context.Context, query string) (Coordinates, error) {
	compact := strings.ToUpper(strings.Join(strings.Fields(query), ""))
	if compact == "" {
		return Coordinates{}, ErrNotFound
	}

	coords, err := c.fetch(ctx, fmt.Sprintf("%s/postcodes/%s", c.baseURL, url.PathEscape(compact)))
	if err == nil {
		return coords, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Coordinates{}, err
	}

	// Full postcode unknown; the outward code alone is often enough for a
	// travel estimate.
	outcode, ok := postcode.ExtractOutcode(compact)
	if !ok {
		return Coordinates{}, ErrNotFound
	}
	return c.fetch(ctx, fmt.Sprintf("%s/outcodes/%s", c.baseURL, url.PathEscape(outcode)))
}

func (c *client) fetch(ctx context.Context, endpoint string) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geoclient: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geoclient: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Coordinates{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Coordinates{}, fmt.Errorf("geoclient: status %d: %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Result *Coordinates `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinates{}, fmt.Errorf("geoclient: decode response: %w", err)
	}
	if payload.Result == nil {
		return Coordinates{}, ErrNotFound
	}
	return *payload.Result, nil
}
