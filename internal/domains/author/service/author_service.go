package service

import (
	"context"
	"strconv"
	"time"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperr"
	"library-backend/pkg/database"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
	tx   database.Transactor
}

func NewAuthorService(repo author.Repository, tx database.Transactor) author.Service {
	return &authorService{
		repo: repo,
		tx:   tx,
	}
}

func (s *authorService) Create(ctx context.Context, req author.SaveAuthorRequest) error {
	if details := author.Validate(req, time.Now()); len(details) > 0 {
		return apperr.Validation(details)
	}

	// Validation guarantees the date parses.
	birthdate, err := author.ParseBirthdate(*req.Birthdate)
	if err != nil {
		return apperr.Unexpected(err)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.repo.Create(ctx, &author.Author{
			Name:      *req.Name,
			Birthdate: birthdate,
		})
		return err
	})
	if err != nil {
		return apperr.Unexpected(err)
	}

	return nil
}

func (s *authorService) Update(ctx context.Context, id string, req author.SaveAuthorRequest) error {
	authorID, err := strconv.Atoi(id)
	if err != nil || authorID <= 0 {
		return apperr.NotFound()
	}

	exists, err := s.repo.ExistsByID(ctx, authorID)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if !exists {
		return apperr.NotFound()
	}

	if details := author.Validate(req, time.Now()); len(details) > 0 {
		return apperr.Validation(details)
	}

	birthdate, err := author.ParseBirthdate(*req.Birthdate)
	if err != nil {
		return apperr.Unexpected(err)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, &author.Author{
			ID:        authorID,
			Name:      *req.Name,
			Birthdate: birthdate,
		})
	})
	if err != nil {
		return apperr.Unexpected(err)
	}

	return nil
}
