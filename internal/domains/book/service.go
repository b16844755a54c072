package book

import "context"

// Service defines the book operations exposed to the transport layer.
// Failures are returned as *apperr.Error values.
type Service interface {
	// Create validates the request, then persists the book and its author
	// links inside one transaction; a link failure rolls back the book
	// insert.
	Create(ctx context.Context, req SaveBookRequest) error

	// Update validates against the persisted book (arming the
	// publish-reversal rule), then rewrites the book and replaces its
	// whole link set inside one transaction. The id arrives as the raw
	// path string; a non-positive or unknown id fails as NotFound before
	// any field validation runs.
	Update(ctx context.Context, id string, req SaveBookRequest) error

	// FindByAuthor returns every book linked to the author. A
	// non-positive id, an unknown author and an author with no books all
	// surface as NotFound; the cases are indistinguishable here.
	FindByAuthor(ctx context.Context, authorID string) ([]BookView, error)
}
