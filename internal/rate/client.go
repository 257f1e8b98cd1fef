// Package rate fetches the current exchange rate from the upstream feed.
package rate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Fetch failure taxonomy. Callers must treat either error as terminal for the
// current interaction; there is no retry.
var (
	ErrSourceUnavailable = errors.New("rate source unavailable")
	ErrMalformedResponse = errors.New("malformed rate response")
)

const requestTimeout = 5 * time.Second

// Client requests the rate for one configured currency pair. Every call hits
// the upstream source: no retry, no caching.
type Client struct {
	url      string
	currency string
	http     *http.Client
}

func NewClient(url, currency string) *Client {
	return &Client{
		url:      url,
		currency: currency,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Currency returns the configured target currency code.
func (c *Client) Currency() string {
	return c.currency
}

// Fetch performs one GET against the feed and extracts the numeric field for
// the configured currency.
func (c *Client) Fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: status %s", ErrSourceUnavailable, resp.Status)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	value, ok := payload[c.currency].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: no numeric %q field", ErrMalformedResponse, c.currency)
	}
	return value, nil
}
