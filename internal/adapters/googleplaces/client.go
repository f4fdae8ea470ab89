// internal/adapters/googleplaces/client.go
package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"geosuggest/internal/adapters/observability"
)

// DefaultBaseURL is the Google Places web service root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Web service statuses we treat specially.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
}

func New(base, key string) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
	}, nil
}

// APIError is a non-OK status in an otherwise well-formed provider response.
type APIError struct {
	Endpoint string
	Status   string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places %s: %s: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("places %s: %s", e.Endpoint, e.Status)
}

type autocompleteResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message"`
	Predictions  []map[string]any `json:"predictions"`
}

type detailsResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Result       map[string]any `json:"result"`
}

// Autocomplete returns the raw prediction records for a query, restricted to
// geographic/establishment place classes, in English.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("input", query)
	q.Set("types", "geocode|establishment")
	q.Set("language", "en")

	var out autocompleteResponse
	if err := c.get(ctx, "autocomplete", q, &out); err != nil {
		return nil, err
	}
	if out.Status != statusOK && out.Status != statusZeroResults {
		return nil, &APIError{Endpoint: "autocomplete", Status: out.Status, Message: out.ErrorMessage}
	}
	return out.Predictions, nil
}

// Details fetches the raw detail record for one place, limited to the
// requested fields.
func (c *Client) Details(ctx context.Context, placeID string, fields []string) (map[string]any, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", strings.Join(fields, ","))
	q.Set("language", "en")

	var out detailsResponse
	if err := c.get(ctx, "details", q, &out); err != nil {
		return nil, err
	}
	if out.Status != statusOK {
		return nil, &APIError{Endpoint: "details", Status: out.Status, Message: out.ErrorMessage}
	}
	if out.Result == nil {
		return nil, fmt.Errorf("places details: empty result for %s", placeID)
	}
	return out.Result, nil
}

// get performs a single GET and decodes the JSON envelope into out.
// No retries and no client-side throttling: one incoming request maps to
// exactly one upstream call per endpoint.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("key", c.key)
	u := fmt.Sprintf("%s/%s/json?%s", c.base, endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "geosuggest/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("google_places", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("google_places", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("places %s: unexpected HTTP %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places %s: decode response: %w", endpoint, err)
	}
	return nil
}
