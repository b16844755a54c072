package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
)

const (
	authorBooksKeyPrefix  = "books:author:"
	authorBooksKeyPattern = authorBooksKeyPrefix + "*"
	cacheTTL              = 15 * time.Minute
)

// bookService implements book.Service.
type bookService struct {
	books   book.Repository
	links   book.LinkRepository
	authors author.Repository
	cache   cache.Cache
	tx      database.Transactor
}

func NewBookService(
	books book.Repository,
	links book.LinkRepository,
	authors author.Repository,
	c cache.Cache,
	tx database.Transactor,
) book.Service {
	return &bookService{
		books:   books,
		links:   links,
		authors: authors,
		cache:   c,
		tx:      tx,
	}
}

func (s *bookService) Create(ctx context.Context, req book.SaveBookRequest) error {
	details, err := book.Validate(ctx, req, nil, s.authors.ExistsByIDs)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if len(details) > 0 {
		return apperr.Validation(details)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		id, err := s.books.Create(ctx, &book.Book{
			Title:       *req.Title,
			Price:       *req.Price,
			IsPublished: *req.IsPublished,
		})
		if err != nil {
			return err
		}
		return s.links.CreateForBook(ctx, id, req.Authors)
	})
	if err != nil {
		return apperr.Unexpected(err)
	}

	s.invalidateAuthorBooks(ctx)
	return nil
}

func (s *bookService) Update(ctx context.Context, id string, req book.SaveBookRequest) error {
	bookID, err := strconv.Atoi(id)
	if err != nil || bookID <= 0 {
		return apperr.NotFound()
	}

	current, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if current == nil {
		return apperr.NotFound()
	}

	details, err := book.Validate(ctx, req, current, s.authors.ExistsByIDs)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if len(details) > 0 {
		return apperr.Validation(details)
	}

	// Relink: the whole link set is removed and recreated, no diffing.
	// The transaction hides the transiently empty link set from readers
	// at the usual isolation levels and makes the relink all-or-nothing.
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.books.Update(ctx, &book.Book{
			ID:          bookID,
			Title:       *req.Title,
			Price:       *req.Price,
			IsPublished: *req.IsPublished,
		}); err != nil {
			return err
		}
		if err := s.links.RemoveByBook(ctx, bookID); err != nil {
			return err
		}
		return s.links.CreateForBook(ctx, bookID, req.Authors)
	})
	if err != nil {
		return apperr.Unexpected(err)
	}

	s.invalidateAuthorBooks(ctx)
	return nil
}

func (s *bookService) FindByAuthor(ctx context.Context, authorID string) ([]book.BookView, error) {
	id, err := strconv.Atoi(authorID)
	if err != nil || id <= 0 {
		return nil, apperr.NotFound()
	}

	cacheKey := fmt.Sprintf("%s%d", authorBooksKeyPrefix, id)

	var cached []book.BookView
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache read failed")
	}

	views, err := s.books.FindByAuthorID(ctx, id)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	// An author with no books and an author that does not exist are
	// indistinguishable here; both surface as NotFound.
	if len(views) == 0 {
		return nil, apperr.NotFound()
	}

	if err := s.cache.Set(ctx, cacheKey, views, cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Cache write failed")
	}

	return views, nil
}

// invalidateAuthorBooks drops every per-author book view. A relink moves a
// book between an unknown set of author keys, so the whole pattern goes.
func (s *bookService) invalidateAuthorBooks(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, authorBooksKeyPattern); err != nil {
		log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
