package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/pkg/database"
)

// postgresRepository implements book.Repository over pgx. Queriers are
// resolved from the context so calls inside a transaction share it.
type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) book.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var id int
	err := q.QueryRow(ctx,
		`INSERT INTO books (title, price, is_published) VALUES ($1, $2, $3) RETURNING id`,
		b.Title, b.Price, b.IsPublished,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("book insert returned no id")
		}
		return 0, fmt.Errorf("failed to create book: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	q := database.QuerierFromContext(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE books SET title = $1, price = $2, is_published = $3 WHERE id = $4`,
		b.Title, b.Price, b.IsPublished, b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int) (*book.Book, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var b book.Book
	err := q.QueryRow(ctx,
		`SELECT id, title, price, is_published FROM books WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.Price, &b.IsPublished)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// joinedRow is one row of the book-link-author left join.
// Author columns are nullable: a book whose links were removed mid-relink
// still joins, with no author attached.
type joinedRow struct {
	bookID      int
	title       string
	price       int
	isPublished bool

	authorID        *int
	authorName      *string
	authorBirthdate *time.Time
}

// FindByAuthorID reconstructs book views in two phases: a subquery selects
// every book id linked to the author, then one joined fetch pulls those
// books with their complete link sets and the linked authors, ordered by
// book id. Grouping happens in memory.
func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID int) ([]book.BookView, error) {
	q := database.QuerierFromContext(ctx, r.db)

	rows, err := q.Query(ctx, `
        SELECT b.id, b.title, b.price, b.is_published,
               a.id, a.name, a.birthdate
        FROM books b
        LEFT JOIN author_book ab ON ab.book_id = b.id
        LEFT JOIN authors a ON a.id = ab.author_id
        WHERE b.id IN (
            SELECT book_id FROM author_book WHERE author_id = $1
        )
        ORDER BY b.id, a.id`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	var joined []joinedRow
	for rows.Next() {
		var row joinedRow
		err := rows.Scan(
			&row.bookID,
			&row.title,
			&row.price,
			&row.isPublished,
			&row.authorID,
			&row.authorName,
			&row.authorBirthdate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		joined = append(joined, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return groupRows(joined), nil
}

// groupRows folds the ordered join result into one BookView per book id.
// Rows with NULL author columns contribute no author, not a placeholder.
func groupRows(rows []joinedRow) []book.BookView {
	views := make([]book.BookView, 0)
	index := make(map[int]int)

	for _, row := range rows {
		i, ok := index[row.bookID]
		if !ok {
			views = append(views, book.BookView{
				ID:          row.bookID,
				Title:       row.title,
				Price:       row.price,
				IsPublished: row.isPublished,
				Authors:     make([]author.AuthorResponse, 0),
			})
			i = len(views) - 1
			index[row.bookID] = i
		}

		if row.authorID != nil {
			views[i].Authors = append(views[i].Authors, author.Author{
				ID:        *row.authorID,
				Name:      *row.authorName,
				Birthdate: *row.authorBirthdate,
			}.ToResponse())
		}
	}

	return views
}
