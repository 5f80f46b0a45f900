package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkError wraps any transport, timeout or status failure of a fetch.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Param is a single query parameter. Parameters are kept as an ordered list
// so the composed URL is deterministic.
type Param struct {
	Key   string
	Value string
}

// Client fetches raw text or JSON payloads from the external services.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a fetch client from the configuration.
func New(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		userAgent: cfg.UserAgent,
	}
}

// Text performs a GET request and returns the response body as a string.
func (c *Client) Text(ctx context.Context, url string, params []Param) (string, error) {
	body, err := c.get(ctx, url, params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// JSON performs a GET request and decodes the response body into target.
func (c *Client) JSON(ctx context.Context, url string, params []Param, target any) error {
	body, err := c.get(ctx, url, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, params []Param) ([]byte, error) {
	full := BuildURL(url, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, &NetworkError{URL: full, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: full, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: full, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: full, Err: err}
	}
	return body, nil
}

// BuildURL appends the parameters to the URL by literal key=value
// concatenation. The upstream server-list API only answers plain GET
// requests, so values are taken as-is and must already be transport-safe.
func BuildURL(url string, params []Param) string {
	if len(params) == 0 {
		return url
	}
	full := url + "?"
	for _, p := range params {
		full += p.Key + "=" + p.Value + "&"
	}
	return full[:len(full)-1]
}
