// Package fetch is the single seam through which every outbound call to a
// third-party provider is issued. It normalizes transport failures and
// non-2xx responses into the domain error taxonomy so callers never touch
// net/http directly.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/omnidash/omnidash/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client issues outbound HTTP requests. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout overrides the shared request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient substitutes the underlying http.Client. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a Client with a 10-second timeout unless overridden.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOption mutates a single outbound request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets one header on the outbound request.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// GetJSON issues a GET to rawURL and decodes the 2xx response body into out.
// Failures map onto the taxonomy: no response → network (synthetic 500),
// non-2xx → upstream carrying the original status, undecodable body →
// schema. A nil out discards the body after the status check.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any, opts ...RequestOption) error {
	body, status, err := c.do(ctx, rawURL, opts)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return domain.NewUpstream(status, fmt.Sprintf("upstream returned status %d", status))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewSchema("decode upstream response", err)
	}
	return nil
}

// RelayResult is a provider response captured verbatim for pass-through.
type RelayResult struct {
	Status      int
	Body        []byte
	ContentType string
}

// Relay issues a GET and returns the provider's status and body unmodified,
// including non-2xx responses. It fails only when no response was received.
func (c *Client) Relay(ctx context.Context, rawURL string, opts ...RequestOption) (*RelayResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewNetwork(err)
	}
	c.applyOptions(req, opts)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewNetwork(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetwork(err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &RelayResult{Status: resp.StatusCode, Body: body, ContentType: contentType}, nil
}

func (c *Client) do(ctx context.Context, rawURL string, opts []RequestOption) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, domain.NewNetwork(err)
	}
	c.applyOptions(req, opts)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, domain.NewNetwork(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, domain.NewNetwork(err)
	}

	return body, resp.StatusCode, nil
}

func (c *Client) applyOptions(req *http.Request, opts []RequestOption) {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for _, opt := range opts {
		opt(req)
	}
}
