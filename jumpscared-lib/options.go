// ABOUTME: Configuration options for the JumpScared library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package jumpscared

import (
	"errors"
	"time"

	"jumpscared-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithBaseURL points the client at a different site root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base url cannot be empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithTimeout sets the per-fetch timeout of the default fetcher
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent of the default fetcher
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithMaxResults caps search results
func WithMaxResults(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "max results must be at least 1")
		}
		c.MaxResults = n
		return nil
	}
}

// WithFetcher replaces the default fetcher
func WithFetcher(fetcher interfaces.Fetcher) Option {
	return func(c *Config) error {
		if fetcher == nil {
			return NewError(ErrorTypeConfiguration, "fetcher cannot be nil").WithCause(errors.New("nil fetcher"))
		}
		c.Fetcher = fetcher
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics sink
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}
