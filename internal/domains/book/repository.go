package book

import "context"

// Repository defines data access for books, including the aggregation
// query that reconstructs books with their linked authors.
type Repository interface {
	// Create inserts the book and returns the store-assigned id.
	Create(ctx context.Context, b *Book) (int, error)

	// Update rewrites title, price and isPublished. A missing row is a
	// no-op; callers load the current row first when "not found" must be
	// visible.
	Update(ctx context.Context, b *Book) error

	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id int) (*Book, error)

	// FindByAuthorID reconstructs every book linked to the author,
	// ordered by book id, each with its full author list. Returns an
	// empty slice, never an error, when nothing is linked.
	FindByAuthorID(ctx context.Context, authorID int) ([]BookView, error)
}

// LinkRepository manages the book-author junction rows. Links are only
// written as a side effect of book create/update, never edited directly.
type LinkRepository interface {
	// CreateForBook inserts one link row per author id, one statement per
	// id. Partial failure leaves earlier rows in place, which is tolerable
	// only inside a transaction that rolls the whole write back.
	CreateForBook(ctx context.Context, bookID int, authorIDs []int) error

	// RemoveByBook deletes all links for the book; no-op if none exist.
	RemoveByBook(ctx context.Context, bookID int) error

	// FindAuthorIDsByBook returns the linked author ids in retrieval order.
	FindAuthorIDsByBook(ctx context.Context, bookID int) ([]int, error)
}
