// Package geocode resolves postal addresses to coordinates through the Kakao
// local address-search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

const defaultBaseURL = "https://dapi.kakao.com/v2/local/search/address.json"

// Coordinates are returned as the decimal strings Kakao sends; no numeric
// conversion happens on the way through.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// UpstreamError reports a non-2xx answer from the geocoding service. The
// status code is forwarded to the API caller as-is.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("geocoding service returned status %d", e.StatusCode)
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Option func(*Client)

// WithBaseURL points the client at a different endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type addressResponse struct {
	Documents []struct {
		X string `json:"x"`
		Y string `json:"y"`
	} `json:"documents"`
}

// Lookup queries the address and returns the first match. An empty result set
// maps to ErrNotFound; a non-2xx upstream answer maps to *UpstreamError.
func (c *Client) Lookup(ctx context.Context, address string) (*Coordinates, error) {
	if address == "" {
		return nil, appErr.ErrInvalid
	}
	params := url.Values{}
	params.Set("query", address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
	var out addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Documents) == 0 {
		return nil, appErr.ErrNotFound
	}
	return &Coordinates{Latitude: out.Documents[0].Y, Longitude: out.Documents[0].X}, nil
}
