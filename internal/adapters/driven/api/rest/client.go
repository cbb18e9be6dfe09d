package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SchedulingAPI = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL   = domain.DefaultBaseURL
	DefaultUserAgent = "postador"

	// HeaderRequestID correlates a request with the service's logs.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Service endpoints.
const (
	pathAuthStatus = "/api/auth/status"
	pathAuth       = "/api/auth"
	pathList       = "/api/agendamentos"
	pathGenerate   = "/api/generate-content"
	pathSchedule   = "/api/schedule/youtube"
)

// Config holds configuration for the scheduling service client.
type Config struct {
	// BaseURL is the service root (default: http://localhost:5000).
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds each request. Zero keeps HTTPClient's own timeout,
	// which is none by default.
	Timeout time.Duration

	// RateLimit is the request budget per second. Zero or negative
	// disables throttling.
	RateLimit float64

	// Location interprets timestamps without a zone and formats the
	// requested publication time (default: time.Local).
	Location *time.Location

	// UserAgent is sent with every request (default: postador).
	UserAgent string

	// HTTPClient overrides the transport. Useful for testing.
	HTTPClient *http.Client
}

// Client talks to the scheduling service.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	location  *time.Location
	throttle  *Throttle
}

// NewClient creates a scheduling service client.
func NewClient(ctx context.Context, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	// Work on a copy: the caller's client is never modified.
	base := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		base = &copied
	}
	if cfg.Timeout > 0 {
		base.Timeout = cfg.Timeout
	}

	client := base
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		client = oauth2.NewClient(ctx, ts)
		client.Timeout = base.Timeout
	}

	return &Client{
		http:      client,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		location:  cfg.Location,
		throttle:  NewThrottle(cfg.RateLimit),
	}
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds a request with the client's standard headers.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, uuid.New().String())
	return req, nil
}

// do sends req and decodes a 2xx JSON body into out.
//
// Non-2xx responses and network failures become *domain.TransportError;
// a 2xx body carrying an error field becomes *domain.ApplicationError.
func (c *Client) do(op string, req *http.Request, out errorCarrier) error {
	if err := c.throttle.Wait(req.Context()); err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	logger.Debug("%s %s (%s)", req.Method, req.URL.Path, req.Header.Get(HeaderRequestID))
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	logger.Debug("%s %s -> %d in %s", req.Method, req.URL.Path, resp.StatusCode, time.Since(started).Round(time.Millisecond))
	c.throttle.Observe(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w: empty body", op, domain.ErrMalformedPayload)
		}
		return fmt.Errorf("%s: %w: %v", op, domain.ErrMalformedPayload, err)
	}
	if msg := out.errorMessage(); msg != "" {
		return &domain.ApplicationError{Op: op, Message: msg}
	}
	return nil
}

// readErrorMessage extracts the error field of a failed response, if any.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload errorPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}
