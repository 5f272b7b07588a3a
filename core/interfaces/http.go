package interfaces

import (
	"context"

	"jumpscared-api/core/domain"
)

// Fetcher retrieves remote documents.
// Implementations never return an error: transport failures, non-2xx statuses
// and timeouts are all reported through the returned RawDocument.
type Fetcher interface {
	// Fetch performs a GET request for url. accept sets the Accept header;
	// an empty value selects the implementation's default.
	Fetch(ctx context.Context, url string, accept string) domain.RawDocument
}
