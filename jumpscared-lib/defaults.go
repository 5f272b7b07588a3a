// ABOUTME: Default configuration values for the JumpScared library
// ABOUTME: Provides sensible defaults for all configuration options

package jumpscared

import (
	"net/url"
	"strings"

	"jumpscared-api/core/interfaces"
	"jumpscared-api/pkg/config"
)

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:        config.DefaultBaseURL,
		Timeout:        config.DefaultFetchTimeout,
		UserAgent:      config.DefaultUserAgent,
		AcceptLanguage: config.DefaultAcceptLanguage,
		MaxResults:     config.DefaultMaxResults,
		Logger:         interfaces.NopLogger{},
	}
}

// validateConfig normalizes the base URL and fills in missing collaborators
func validateConfig(c *Config) error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return NewError(ErrorTypeConfiguration, "base url must be an absolute https URL").WithCause(err)
	}
	c.host = strings.ToLower(u.Host)

	if c.Logger == nil {
		c.Logger = interfaces.NopLogger{}
	}
	return nil
}
