package flights

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

const callTimeout = 30 * time.Second

const kiwiDefaultURL = "https://mcp.kiwi.com/search-flight"

// Client searches flights against the Kiwi-backed endpoint. No API key is
// needed; the endpoint is best-effort and may answer with JSON or formatted
// text, so the raw body is returned for Normalize to sort out.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client using the production endpoint.
func NewClient() *Client {
	return &Client{baseURL: kiwiDefaultURL, client: &http.Client{Timeout: callTimeout}}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: callTimeout}}
}

// convertDateFormat rewrites YYYY-MM-DD into the DD/MM/YYYY form the
// upstream requires. Unparseable input is passed through untouched.
func convertDateFormat(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// Search performs one flight search and returns the raw response payload.
func (c *Client) Search(ctx context.Context, query trip.FlightQuery) (string, error) {
	params := url.Values{}
	params.Set("flyFrom", query.FlyFrom)
	params.Set("flyTo", query.FlyTo)
	params.Set("departureDate", convertDateFormat(query.DepartureDate))
	if query.ReturnDate != "" {
		params.Set("returnDate", convertDateFormat(query.ReturnDate))
	}

	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating flight search request %s→%s: %w", query.FlyFrom, query.FlyTo, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET flight search %s→%s: %w", query.FlyFrom, query.FlyTo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("flight endpoint returned status %d for %s→%s", resp.StatusCode, query.FlyFrom, query.FlyTo)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading flight response %s→%s: %w", query.FlyFrom, query.FlyTo, err)
	}

	return string(body), nil
}
