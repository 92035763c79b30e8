package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const callTimeout = 30 * time.Second

const accuweatherDefaultURL = "https://accuweather-proxy.fly.dev/v1/conditions"

// Client fetches current conditions from the AccuWeather-backed endpoint.
// The response body is returned raw: depending on the upstream it is either
// a JSON document or a formatted text summary, and Normalize handles both.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: accuweatherDefaultURL, client: &http.Client{Timeout: callTimeout}}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, client: &http.Client{Timeout: callTimeout}}
}

// Fetch retrieves the raw conditions payload for a location.
// units is "metric" or "imperial".
func (c *Client) Fetch(ctx context.Context, location, units string) (string, error) {
	endpoint := c.baseURL + "?location=" + url.QueryEscape(location) + "&units=" + url.QueryEscape(units) + "&apikey=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating weather request for %s: %w", location, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET weather for %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather endpoint returned status %d for %s", resp.StatusCode, location)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading weather response for %s: %w", location, err)
	}

	return string(body), nil
}
