// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, target site, rate limiting and logging

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values for the target site and outbound requests
const (
	DefaultBaseURL        = "https://wheresthejump.com"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
	DefaultFetchTimeout   = 12 * time.Second
	DefaultMaxResults     = 10
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Site contains the target site and outbound request configuration
	Site SiteConfig

	// RateLimit contains inbound rate limiting configuration
	RateLimit RateLimitConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// SiteConfig holds everything needed to talk to the target site
type SiteConfig struct {
	// BaseURL is the site root, e.g. https://wheresthejump.com
	BaseURL string

	// UserAgent is sent on every outbound request
	UserAgent string

	// AcceptLanguage is sent on every outbound request
	AcceptLanguage string

	// FetchTimeout bounds each outbound request
	FetchTimeout time.Duration

	// MaxResults caps the number of search results returned
	MaxResults int
}

// Host returns the hostname of BaseURL, or "" when it does not parse
func (s SiteConfig) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per Window, 0 disables limiting
	Requests int

	// Window is the rate limit window
	Window time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "text" or "json"
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "3000"),
		},
		Site: SiteConfig{
			BaseURL:        strings.TrimRight(getEnvOrDefault("SITE_BASE_URL", DefaultBaseURL), "/"),
			UserAgent:      getEnvOrDefault("SITE_USER_AGENT", DefaultUserAgent),
			AcceptLanguage: getEnvOrDefault("SITE_ACCEPT_LANGUAGE", DefaultAcceptLanguage),
			FetchTimeout:   getEnvAsDurationOrDefault("FETCH_TIMEOUT", DefaultFetchTimeout),
			MaxResults:     getEnvAsIntOrDefault("SEARCH_MAX_RESULTS", DefaultMaxResults),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:   getEnvAsDurationOrDefault("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("12s") or whole seconds ("12")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("site base url must be an absolute URL")
	}
	if u.Scheme != "https" {
		return errors.New("site base url must use https")
	}
	if u.Path != "" && u.Path != "/" {
		return errors.New("site base url must not have a path")
	}

	if c.Site.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Site.MaxResults < 1 {
		return errors.New("search max results must be at least 1")
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		return errors.New("rate limit window must be positive when rate limiting is enabled")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
