// ABOUTME: Standard HTTP fetcher implementation with a fixed per-request timeout
// ABOUTME: Sends browser-like identity headers and reports every outcome as a RawDocument

package standard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"jumpscared-api/core/domain"
	"jumpscared-api/core/interfaces"
)

const (
	defaultAccept  = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	defaultMaxBody = 5 << 20
	maxRedirects   = 10
)

// Config holds fetcher settings
type Config struct {
	// Timeout bounds a whole fetch, including reading the body
	Timeout time.Duration

	// UserAgent and AcceptLanguage are sent on every request
	UserAgent      string
	AcceptLanguage string

	// AllowedHost, when set, stops redirects that leave this host
	AllowedHost string

	// MaxBodyBytes caps the body size, defaults to 5 MiB
	MaxBodyBytes int64

	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// StandardHTTPClient implements the Fetcher interface using the standard library client
type StandardHTTPClient struct {
	client  *http.Client
	cfg     Config
	metrics interfaces.Metrics
}

// NewStandardHTTPClient creates a new fetcher with the specified configuration
func NewStandardHTTPClient(cfg Config) *StandardHTTPClient {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBody
	}
	if cfg.Logger == nil {
		cfg.Logger = interfaces.NopLogger{}
	}

	c := &StandardHTTPClient{
		cfg:     cfg,
		metrics: cfg.Metrics,
	}
	c.client = &http.Client{
		Transport: &LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    cfg.Logger,
		},
		CheckRedirect: c.checkRedirect,
	}
	return c
}

func (c *StandardHTTPClient) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if c.cfg.AllowedHost != "" && !strings.EqualFold(req.URL.Host, c.cfg.AllowedHost) {
		c.cfg.Logger.Warn("Refusing off-site redirect", map[string]interface{}{
			"from": via[len(via)-1].URL.String(),
			"to":   req.URL.String(),
		})
		return http.ErrUseLastResponse
	}
	return nil
}

// Fetch performs an HTTP GET request bounded by the configured timeout
func (c *StandardHTTPClient) Fetch(ctx context.Context, url string, accept string) domain.RawDocument {
	start := time.Now()
	doc := c.fetch(ctx, url, accept)

	if c.metrics != nil {
		c.metrics.ObserveFetch(outcome(doc), time.Since(start))
	}
	return doc
}

func (c *StandardHTTPClient) fetch(ctx context.Context, url string, accept string) domain.RawDocument {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RawDocument{Err: err}
	}

	if accept == "" {
		accept = defaultAccept
	}
	req.Header.Set("Accept", accept)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", c.cfg.AcceptLanguage)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return failure(ctx, 0, err)
	}
	defer resp.Body.Close()

	// One byte past the cap tells a full body from a cut one
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodyBytes+1))
	if err != nil {
		return failure(ctx, resp.StatusCode, err)
	}

	truncated := int64(len(body)) > c.cfg.MaxBodyBytes
	if truncated {
		body = body[:c.cfg.MaxBodyBytes]
		c.cfg.Logger.Warn("Response body truncated", map[string]interface{}{
			"url":       url,
			"max_bytes": c.cfg.MaxBodyBytes,
		})
	}

	return domain.RawDocument{
		Succeeded:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Truncated:  truncated,
	}
}

func failure(ctx context.Context, status int, err error) domain.RawDocument {
	return domain.RawDocument{
		StatusCode: status,
		TimedOut:   isTimeout(ctx, err),
		Err:        err,
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcome(doc domain.RawDocument) string {
	switch {
	case doc.Succeeded:
		return "ok"
	case doc.TimedOut:
		return "timeout"
	case doc.Err != nil:
		return "error"
	default:
		return "status"
	}
}
