package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperr"
)

// fakeTransactor runs the function directly and records whether the
// transaction would have committed or rolled back.
type fakeTransactor struct {
	began      int
	rolledBack bool
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.began++
	if err := fn(ctx); err != nil {
		t.rolledBack = true
		return err
	}
	return nil
}

type fakeAuthorRepo struct {
	authors map[int]author.Author
	nextID  int

	created []author.Author
	updated []author.Author

	existsErr error
	createErr error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[int]author.Author{}, nextID: 1}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) (int, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	stored := *a
	stored.ID = id
	r.authors[id] = stored
	r.created = append(r.created, stored)
	return id, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) error {
	if _, ok := r.authors[a.ID]; ok {
		r.authors[a.ID] = *a
	}
	r.updated = append(r.updated, *a)
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id int) (*author.Author, error) {
	if a, ok := r.authors[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAuthorRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.authors[id]
	return ok, nil
}

func (r *fakeAuthorRepo) ExistsByIDs(ctx context.Context, ids []int) (bool, error) {
	count := 0
	for _, id := range ids {
		if _, ok := r.authors[id]; ok {
			count++
		}
	}
	return count == len(ids), nil
}

func strPtr(s string) *string { return &s }

func validRequest() author.SaveAuthorRequest {
	return author.SaveAuthorRequest{
		Name:      strPtr("name"),
		Birthdate: strPtr("2000-01-01"),
	}
}

func TestCreate_OK(t *testing.T) {
	repo := newFakeAuthorRepo()
	tx := &fakeTransactor{}
	svc := NewAuthorService(repo, tx)

	err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "name", repo.created[0].Name)
	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), repo.created[0].Birthdate)
	assert.Equal(t, 1, tx.began)
}

func TestCreate_ValidationFailure(t *testing.T) {
	repo := newFakeAuthorRepo()
	tx := &fakeTransactor{}
	svc := NewAuthorService(repo, tx)

	err := svc.Create(context.Background(), author.SaveAuthorRequest{})

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Details, 2)
	assert.Empty(t, repo.created)
	assert.Zero(t, tx.began)
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.createErr = errors.New("insert failed")
	tx := &fakeTransactor{}
	svc := NewAuthorService(repo, tx)

	err := svc.Create(context.Background(), validRequest())

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindUnexpected, appErr.Kind)
	assert.True(t, tx.rolledBack)
}

func TestUpdate_OK(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.authors[1] = author.Author{ID: 1, Name: "old"}
	tx := &fakeTransactor{}
	svc := NewAuthorService(repo, tx)

	err := svc.Update(context.Background(), "1", validRequest())
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, 1, repo.updated[0].ID)
	assert.Equal(t, "name", repo.updated[0].Name)
	assert.Equal(t, 1, tx.began)
}

func TestUpdate_InvalidID(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, &fakeTransactor{})

	for _, id := range []string{"abc", "0", "-1", ""} {
		err := svc.Update(context.Background(), id, validRequest())

		appErr, ok := apperr.As(err)
		require.True(t, ok, "id %q", id)
		assert.Equal(t, apperr.KindNotFound, appErr.Kind, "id %q", id)
	}
	assert.Empty(t, repo.updated)
}

// The existence check runs before field validation: a missing author with
// an invalid body still reports NotFound, not a validation failure.
func TestUpdate_MissingAuthorSkipsValidation(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, &fakeTransactor{})

	err := svc.Update(context.Background(), "999", author.SaveAuthorRequest{})

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Empty(t, appErr.Details)
}

func TestUpdate_ValidationFailure(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.authors[1] = author.Author{ID: 1, Name: "old"}
	svc := NewAuthorService(repo, &fakeTransactor{})

	err := svc.Update(context.Background(), "1", author.SaveAuthorRequest{Name: strPtr("name")})

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "birthdate", appErr.Details[0].Field)
	assert.Empty(t, repo.updated)
}

func TestUpdate_ExistenceCheckFailure(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.existsErr = errors.New("connection lost")
	svc := NewAuthorService(repo, &fakeTransactor{})

	err := svc.Update(context.Background(), "1", validRequest())

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindUnexpected, appErr.Kind)
}
