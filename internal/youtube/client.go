package youtube

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nichefeed/nichefeed-server/internal/ratelimit"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// Rate limit: the Data API quota is generous per-call but shared
	// per key, so keep outbound traffic polite.
	defaultRPS   = 5.0
	defaultBurst = 5

	// HTTP client settings
	defaultTimeout = 30 * time.Second

	// API settings
	defaultMaxResults = 10
	maxMaxResults     = 50
)

// Client is a rate-limited YouTube Data API v3 client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	apiKey  string
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a stub server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New creates a new YouTube client. The API key must be non-empty;
// callers gate on configuration before constructing one.
func New(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest executes a GET against one API resource with rate limiting.
func (c *Client) doRequest(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	// All calls share the key's quota bucket.
	if err := c.limiter.Wait(ctx, c.apiKey); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+resource+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug("youtube request", "resource", resource)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrBadRequest
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrQuotaExceeded
	case resp.StatusCode >= 500:
		return nil, ErrServer
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}
