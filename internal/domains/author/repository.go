package author

import "context"

// Repository defines data access for authors.
type Repository interface {
	// Create inserts the author and returns the store-assigned id.
	Create(ctx context.Context, a *Author) (int, error)

	// Update rewrites name and birthdate. A missing row is a no-op;
	// callers check existence first when "not found" must be visible.
	Update(ctx context.Context, a *Author) error

	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, id int) (*Author, error)

	// ExistsByID reports whether the author exists.
	ExistsByID(ctx context.Context, id int) (bool, error)

	// ExistsByIDs reports whether every id in ids exists, using one
	// batched query. Duplicate ids in the input under-count and produce
	// a false negative; callers deduplicate first.
	ExistsByIDs(ctx context.Context, ids []int) (bool, error)
}
