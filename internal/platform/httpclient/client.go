// Package httpclient implements C6: a process-shared HTTP GET client with
// a total request timeout and a body-size guard. Rate limiting is
// intentionally absent — politeness beyond the permit gate's concurrency
// cap is a non-goal of this crawler.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/dominik-korsa/timetable-crawler/internal/crawler"
)

const (
	// DefaultTimeout is the default total fetch budget (headers + body).
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBodySize is the default maximum response body size (2MB).
	DefaultMaxBodySize = 2 * 1024 * 1024
	// DefaultUserAgent is the default User-Agent header.
	DefaultUserAgent = "TimetableCrawler/1.0"
)

// Client is an HTTP client with a total timeout and a body size limit.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

// Config contains configuration options for the HTTP client.
type Config struct {
	// Timeout is the total request timeout (default: 10s)
	Timeout time.Duration
	// UserAgent is the User-Agent header to send
	UserAgent string
	// MaxBodySize is the maximum response body size in bytes (default: 2MB)
	MaxBodySize int64
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:   cfg.UserAgent,
		maxBodySize: cfg.MaxBodySize,
	}
}

// Fetch retrieves the content from the given URL: it executes a GET,
// follows redirects per the default http.Client policy, and reads the
// full body up to maxBodySize. A non-2xx response, a network error, a
// timeout, or a non-UTF-8 body all surface as an error — the caller
// treats any of these as "no document" (spec: fetch failure).
func (c *Client) Fetch(ctx context.Context, url string) (*crawler.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &crawler.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        url,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("response body for %s is not valid UTF-8", url)
	}

	return &crawler.FetchResult{
		Body:        body,
		FinalURL:    resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
