// ABOUTME: Page domain models for fetched documents and resolved content
// ABOUTME: Defines raw fetch outcomes and the timestamp payload returned to callers

package domain

import "jumpscared-api/core/errors"

// RawDocument is the outcome of one network fetch. Failures are carried as data.
type RawDocument struct {
	// Succeeded is true for a 2xx response
	Succeeded bool

	// StatusCode is the HTTP status, zero when no response arrived
	StatusCode int

	// Body is the response body, at most the fetcher's size cap
	Body string

	// Truncated is true when the body was cut at the size cap
	Truncated bool

	// TimedOut is true when the fetch exceeded its time bound
	TimedOut bool

	// Err is the transport error, if any
	Err error
}

// FetchError classifies an unsuccessful fetch of target
func FetchError(target string, doc RawDocument) error {
	if doc.TimedOut {
		return &errors.TimeoutError{URL: target}
	}
	if doc.Err != nil {
		return &errors.UpstreamError{URL: target, Message: doc.Err.Error()}
	}
	return &errors.UpstreamError{StatusCode: doc.StatusCode, URL: target, Message: "non-success status"}
}

// PageContent is a resolved content page regardless of which tier produced it
type PageContent struct {
	Title    string
	BodyText string
}

// PageTimestamps is the result of resolving timecodes for one page
type PageTimestamps struct {
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Timestamps []string `json:"timestamps"`

	// Source names the resolution tier that produced the result
	Source string `json:"-"`
}
