// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies validation, upstream, timeout, interstitial and parse failures for API mapping

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents bad or missing caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamError represents a remote fetch that did not succeed.
// StatusCode is zero when the request never produced a response.
type UpstreamError struct {
	StatusCode int
	URL        string
	Message    string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request to %s failed: %s", e.URL, e.Message)
	}
	return fmt.Sprintf("upstream request to %s returned %d: %s", e.URL, e.StatusCode, e.Message)
}

// TimeoutError represents a remote fetch that exceeded its time bound
type TimeoutError struct {
	URL string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("upstream request to %s timed out", e.URL)
}

// BlockedError represents a page that was served as an anti-bot interstitial
type BlockedError struct {
	URL string
}

// Error implements the error interface
func (e *BlockedError) Error() string {
	return fmt.Sprintf("page %s is protected by an anti-bot interstitial", e.URL)
}

// ParseError represents an upstream payload that did not have the expected shape
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying decode error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Attempt records the outcome of one resolution tier
type Attempt struct {
	Tier string
	Err  error
}

// ResolutionError is returned when every resolution tier has been exhausted.
// It unwraps to the final tier's error, which is the terminal one.
type ResolutionError struct {
	Attempts []Attempt
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Tier, a.Err))
	}
	return "all resolution tiers failed (" + strings.Join(parts, "; ") + ")"
}

// Unwrap returns the last attempt's error
func (e *ResolutionError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsBlocked checks if an error is a BlockedError
func IsBlocked(err error) bool {
	var blockedErr *BlockedError
	return errors.As(err, &blockedErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsResolution checks if an error is a ResolutionError
func IsResolution(err error) bool {
	var resolutionErr *ResolutionError
	return errors.As(err, &resolutionErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
