package repository

import (
	"context"
	"fmt"

	"library-backend/internal/domains/book"
	"library-backend/pkg/database"
)

// postgresLinkRepository implements book.LinkRepository over pgx.
type postgresLinkRepository struct {
	db database.Querier
}

func NewPostgresLinkRepository(db database.Querier) book.LinkRepository {
	return &postgresLinkRepository{db: db}
}

// CreateForBook inserts one row per author id. The per-row statements are
// deliberate: a failure partway leaves earlier rows behind, and the
// surrounding transaction is what makes the whole write atomic.
func (r *postgresLinkRepository) CreateForBook(ctx context.Context, bookID int, authorIDs []int) error {
	q := database.QuerierFromContext(ctx, r.db)

	for _, authorID := range authorIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO author_book (book_id, author_id) VALUES ($1, $2)`,
			bookID, authorID,
		)
		if err != nil {
			return fmt.Errorf("failed to link author %d to book %d: %w", authorID, bookID, err)
		}
	}

	return nil
}

func (r *postgresLinkRepository) RemoveByBook(ctx context.Context, bookID int) error {
	q := database.QuerierFromContext(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM author_book WHERE book_id = $1`, bookID)
	if err != nil {
		return fmt.Errorf("failed to remove links for book %d: %w", bookID, err)
	}

	return nil
}

func (r *postgresLinkRepository) FindAuthorIDsByBook(ctx context.Context, bookID int) ([]int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT author_id FROM author_book WHERE book_id = $1`,
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query links for book %d: %w", bookID, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return ids, nil
}
