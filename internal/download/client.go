package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ytget/image-searcher/internal/model"
)

// HTTP client defaults
const (
	DefaultTimeout      = 15 * time.Second
	DefaultMaxBodyBytes = 64 << 20
	DefaultUserAgent    = "image-searcher/1.0 (+https://github.com/ytget/image-searcher)"
)

// Client fetches resources over HTTP
type Client struct {
	transport http.RoundTripper
	logger    logrus.FieldLogger

	mu           sync.RWMutex
	timeout      time.Duration
	limiter      *rate.Limiter
	maxBodyBytes int64
	userAgent    string
}

// NewClient creates a new fetch client. A nil logger falls back to the
// standard logrus logger.
func NewClient(timeout time.Duration, logger logrus.FieldLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		transport:    http.DefaultTransport,
		logger:       logger,
		timeout:      timeout,
		limiter:      rate.NewLimiter(rate.Inf, 1),
		maxBodyBytes: DefaultMaxBodyBytes,
		userAgent:    DefaultUserAgent,
	}
}

// SetTimeout sets the per-request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.mu.Lock()
	c.timeout = timeout
	c.mu.Unlock()
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

// SetRateLimit limits outgoing requests to perSecond. Zero or less disables the limit.
func (c *Client) SetRateLimit(perSecond float64) {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	c.mu.Lock()
	c.limiter = rate.NewLimiter(limit, 1)
	c.mu.Unlock()
}

// SetMaxBodyBytes caps the accepted response size
func (c *Client) SetMaxBodyBytes(n int64) {
	if n <= 0 {
		n = DefaultMaxBodyBytes
	}
	c.mu.Lock()
	c.maxBodyBytes = n
	c.mu.Unlock()
}

// SetTransport replaces the underlying round tripper
func (c *Client) SetTransport(rt http.RoundTripper) {
	if rt == nil {
		rt = http.DefaultTransport
	}
	c.mu.Lock()
	c.transport = rt
	c.mu.Unlock()
}

// Fetch performs one GET of rawURL and returns the whole body
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	c.mu.RLock()
	httpClient := &http.Client{Transport: c.transport, Timeout: c.timeout}
	limiter := c.limiter
	maxBody := c.maxBodyBytes
	userAgent := c.userAgent
	c.mu.RUnlock()

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &model.NetworkError{URL: rawURL, Err: fmt.Errorf("invalid URL: %w", err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &model.NetworkError{URL: rawURL, Err: fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)}
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, &model.NetworkError{URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &model.NetworkError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	started := time.Now()
	c.logger.WithField("url", rawURL).Debug("fetch started")

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("url", rawURL).Warn("fetch failed")
		return nil, &model.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		c.logger.WithFields(logrus.Fields{
			"url":    rawURL,
			"status": resp.StatusCode,
		}).Warn("fetch returned non-success status")
		return nil, &model.HTTPStatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, &model.NetworkError{URL: rawURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if int64(len(body)) > maxBody {
		return nil, &model.NetworkError{URL: rawURL, Err: fmt.Errorf("response body exceeds %d bytes", maxBody)}
	}

	c.logger.WithFields(logrus.Fields{
		"url":      rawURL,
		"bytes":    len(body),
		"duration": time.Since(started),
	}).Debug("fetch completed")

	return body, nil
}
