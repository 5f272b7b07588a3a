// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP responses with a flat {"error": "..."} body

package handlers

import (
	"net/http"
	"strings"

	"jumpscared-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorBody is the JSON error payload returned by every endpoint
type ErrorBody struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human readable error message"`
}

// Error implements the error interface
func (e *ErrorBody) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorBody) GetStatus() int {
	return e.Status
}

// NewErrorBody matches huma.NewError so framework errors share the same shape
func NewErrorBody(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &ErrorBody{Status: status, Message: msg}
}

// toHumaError converts domain errors to HTTP errors. operation names the
// endpoint in messages, e.g. "search".
func toHumaError(operation string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsValidation(err):
		return &ErrorBody{Status: http.StatusBadRequest, Message: err.Error()}

	// Checked before resolution, blocked pages need their own message
	case errors.IsBlocked(err):
		return &ErrorBody{Status: http.StatusBadGateway, Message: "page is protected by an anti-bot interstitial"}

	case errors.IsResolution(err):
		return &ErrorBody{Status: http.StatusBadGateway, Message: "could not resolve page: " + err.Error()}

	case errors.IsUpstream(err):
		return &ErrorBody{Status: http.StatusBadGateway, Message: "upstream " + operation + " failed: " + err.Error()}

	case errors.IsTimeout(err):
		return &ErrorBody{Status: http.StatusInternalServerError, Message: "upstream " + operation + " timed out"}
	}

	return &ErrorBody{Status: http.StatusInternalServerError, Message: operation + " failed"}
}
