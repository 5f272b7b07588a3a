// ABOUTME: Error types and handling for the JumpScared library
// ABOUTME: Classifies core failures into a small set of library error types

package jumpscared

import (
	"errors"
	"fmt"

	coreerrors "jumpscared-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates bad caller input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates an upstream failure or timeout
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeBlocked indicates the page was served as an anti-bot interstitial
	ErrorTypeBlocked ErrorType = "blocked"

	// ErrorTypeParsing indicates an upstream payload could not be parsed
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// wrapCoreError classifies a core error. Blocked is checked first because it
// also surfaces inside a resolution failure.
func wrapCoreError(message string, err error) error {
	if err == nil {
		return nil
	}

	errType := ErrorTypeInternal
	switch {
	case coreerrors.IsValidation(err):
		errType = ErrorTypeValidation
	case coreerrors.IsBlocked(err):
		errType = ErrorTypeBlocked
	case coreerrors.IsUpstream(err), coreerrors.IsTimeout(err):
		errType = ErrorTypeNetwork
	case coreerrors.IsParse(err):
		errType = ErrorTypeParsing
	}
	return NewError(errType, message).WithCause(err)
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errType
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsBlockedError checks if an error is an interstitial error
func IsBlockedError(err error) bool {
	return isType(err, ErrorTypeBlocked)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return isType(err, ErrorTypeParsing)
}
