// Package client provides a Go client for the Polly poll-voting API.
//
// The client abstracts HTTP communication with the Polly service and provides
// one method per endpoint: registration, login, poll creation, listing,
// voting, results retrieval, and deletion. Remote outcomes are never surfaced
// as Go errors; every call returns a normalized result carrying success,
// status code, payload, and a human-readable classification, so callers can
// branch on Success without error handling. Go errors are reserved for local
// precondition failures that never reach the network.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client represents a Polly API client.
type Client struct {
	rest      *resty.Client
	baseURL   string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rest = resty.NewWithClient(hc)
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithUserAgent sets a custom user agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a new Polly API client.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}

	// Validate and normalize base URL
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme == "" {
		u.Scheme = "http"
	}

	c := &Client{
		rest:      resty.New().SetTimeout(30 * time.Second),
		baseURL:   strings.TrimSuffix(u.String(), "/"),
		userAgent: "polly-client/1.0",
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest.
		SetBaseURL(c.baseURL).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Accept", "application/json")

	return c, nil
}

// Outcome is the normalized result shared by every API call.
type Outcome struct {
	Success    bool   `json:"success"`
	StatusCode *int   `json:"status_code"` // nil when no HTTP response was received
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Err converts a failed outcome into an error. It returns nil when the
// call succeeded.
func (o Outcome) Err() error {
	if o.Success {
		return nil
	}
	if o.StatusCode != nil {
		return fmt.Errorf("%s (status %d): %s", o.Error, *o.StatusCode, o.Message)
	}
	return fmt.Errorf("%s: %s", o.Error, o.Message)
}

// classify maps a raw HTTP exchange onto the normalized outcome. badRequest
// carries the endpoint-specific classification for a 400 response; when empty,
// a 400 falls through to the generic HTTP error.
func classify(resp *resty.Response, err error, badRequest string) Outcome {
	if err != nil {
		return Outcome{
			Error:   "Request failed",
			Message: err.Error(),
		}
	}

	code := resp.StatusCode()
	out := Outcome{StatusCode: &code}

	if resp.IsSuccess() {
		out.Success = true
		return out
	}

	body := strings.TrimSpace(string(resp.Body()))
	switch {
	case code == http.StatusBadRequest && badRequest != "":
		out.Error = badRequest
		out.Message = orDefault(body, "Bad request")
	case code == http.StatusUnauthorized:
		out.Error = "Unauthorized"
		out.Message = orDefault(body, "Invalid or expired token")
	case code == http.StatusNotFound:
		out.Error = "Not found"
		out.Message = orDefault(body, "Resource not found")
	case code == http.StatusUnprocessableEntity:
		out.Error = "Validation error"
		out.Message = orDefault(body, "Unprocessable entity")
	default:
		out.Error = fmt.Sprintf("HTTP %d", code)
		out.Message = orDefault(body, "HTTP error")
	}

	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
