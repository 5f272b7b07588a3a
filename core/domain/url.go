// ABOUTME: Canonical URL type and validator for the target site
// ABOUTME: Only validated URLs on the exact site host can be fetched downstream

package domain

import (
	"net/url"
	"strings"

	"jumpscared-api/core/errors"
)

// CanonicalURL is an https URL on the target site's host.
// The zero value is invalid; values are created by URLValidator.Validate.
type CanonicalURL struct {
	u *url.URL
}

// String returns the URL in its serialized form
func (c CanonicalURL) String() string {
	if c.u == nil {
		return ""
	}
	return c.u.String()
}

// IsZero reports whether c was not produced by a validator
func (c CanonicalURL) IsZero() bool {
	return c.u == nil
}

// Slug returns the last non-empty path segment
func (c CanonicalURL) Slug() (string, bool) {
	if c.u == nil {
		return "", false
	}
	segments := strings.Split(c.u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], true
		}
	}
	return "", false
}

// URLValidator confirms URLs reference the target site over https
type URLValidator struct {
	host string
}

// NewURLValidator creates a validator for the given host, e.g. "wheresthejump.com"
func NewURLValidator(host string) URLValidator {
	return URLValidator{host: strings.ToLower(host)}
}

// Host returns the host the validator accepts
func (v URLValidator) Host() string {
	return v.host
}

// Validate parses raw and checks scheme and exact host equality.
// Subdomains and look-alike hosts are rejected.
func (v URLValidator) Validate(raw string) (CanonicalURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CanonicalURL{}, &errors.ValidationError{Field: "url", Message: "url is required"}
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return CanonicalURL{}, &errors.ValidationError{Field: "url", Message: "url must be an absolute URL"}
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return CanonicalURL{}, &errors.ValidationError{Field: "url", Message: "url must use https"}
	}

	if u.User != nil || strings.ToLower(u.Host) != v.host {
		return CanonicalURL{}, &errors.ValidationError{Field: "url", Message: "url must be on " + v.host}
	}

	u.Scheme = "https"
	u.Host = v.host
	return CanonicalURL{u: u}, nil
}
