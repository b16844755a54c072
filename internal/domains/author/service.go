package author

import "context"

// Service defines the author operations exposed to the transport layer.
// Failures are returned as *apperr.Error values.
type Service interface {
	// Create validates the request and persists a new author.
	Create(ctx context.Context, req SaveAuthorRequest) error

	// Update validates and rewrites an existing author. The id arrives as
	// the raw path string; a non-positive or unknown id fails as NotFound
	// before any field validation runs.
	Update(ctx context.Context, id string, req SaveAuthorRequest) error
}
