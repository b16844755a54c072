package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"library-backend/internal/domains/author"
	"library-backend/pkg/database"
)

// postgresRepository implements author.Repository over pgx.
// Every method resolves its querier from the context, so calls made inside
// database.Transactor.WithinTransaction share the open transaction.
type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) author.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var id int
	err := q.QueryRow(ctx,
		`INSERT INTO authors (name, birthdate) VALUES ($1, $2) RETURNING id`,
		a.Name, a.Birthdate,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("author insert returned no id")
		}
		return 0, fmt.Errorf("failed to create author: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	q := database.QuerierFromContext(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE authors SET name = $1, birthdate = $2 WHERE id = $3`,
		a.Name, a.Birthdate, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*author.Author, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var a author.Author
	err := q.QueryRow(ctx,
		`SELECT id, name, birthdate FROM authors WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Birthdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// ExistsByIDs fetches the count of matching rows and compares it against
// the input size. Duplicate input ids under-count; the validation layer
// rejects duplicates before this runs.
func (r *postgresRepository) ExistsByIDs(ctx context.Context, ids []int) (bool, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM authors WHERE id = ANY($1)`,
		ids,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check authors existence: %w", err)
	}

	return count == len(ids), nil
}
