package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultUserAgent is the user agent string for outbound API requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PlacementHelper/1.0)"

// Client is a small HTTP helper shared by the network adapters. Every request
// carries the configured timeout so one slow source cannot stall the cascade.
type Client struct {
	http *http.Client
}

// NewClient creates a client whose requests are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// GetJSON issues a GET request and parses the response body as JSON.
// Non-200 statuses and unparsable bodies are errors.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values) (gjson.Result, error) {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("unexpected HTTP status %d from %s", resp.StatusCode, endpoint)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid JSON from %s", endpoint)
	}
	return gjson.ParseBytes(body), nil
}
