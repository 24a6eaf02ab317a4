// Package sensor reads weights from the scale device on the local network.
package sensor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable is returned for any failure talking to the scale: network
// error, non-2xx status or a body that does not carry a weight. The client
// never retries; callers decide whether to ask again.
var ErrUnavailable = errors.New("weight sensor unavailable")

// Client fetches weight readings from the scale's HTTP endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a sensor client for the device at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type weightResponse struct {
	Weight *float64 `json:"weight"`
}

// ReadWeight fetches a single reading, in kilograms.
func (c *Client) ReadWeight(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weight", nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body weightResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body.Weight == nil {
		return 0, fmt.Errorf("%w: response missing weight", ErrUnavailable)
	}

	return *body.Weight, nil
}
