package book

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func allExist(ctx context.Context, ids []int) (bool, error)  { return true, nil }
func noneExist(ctx context.Context, ids []int) (bool, error) { return false, nil }

func validRequest() SaveBookRequest {
	return SaveBookRequest{
		Title:       strPtr("t"),
		Price:       intPtr(1000),
		IsPublished: boolPtr(true),
		Authors:     []int{1},
	}
}

func TestValidate_OK(t *testing.T) {
	details, err := Validate(context.Background(), validRequest(), nil, allExist)
	require.NoError(t, err)
	assert.Empty(t, details)
}

// The limit counts characters, not bytes: 255 multibyte runes are within
// range even though they encode to 765 bytes.
func TestValidate_TitleAtMaxLengthAccepted(t *testing.T) {
	for _, title := range []string{strings.Repeat("a", 255), strings.Repeat("あ", 255)} {
		req := validRequest()
		req.Title = strPtr(title)

		details, err := Validate(context.Background(), req, nil, allExist)
		require.NoError(t, err)
		assert.Empty(t, details)
	}
}

// A request with every field absent yields exactly four errors, one per
// field, in title, price, isPublished, authors order.
func TestValidate_AllFieldsMissing(t *testing.T) {
	details, err := Validate(context.Background(), SaveBookRequest{}, nil, allExist)
	require.NoError(t, err)

	require.Len(t, details, 4)
	assert.Equal(t, "title", details[0].Field)
	assert.Equal(t, "price", details[1].Field)
	assert.Equal(t, "isPublished", details[2].Field)
	assert.Equal(t, "authors", details[3].Field)
}

func TestValidate_TitleRules(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		message string
	}{
		{"missing", nil, "title is required"},
		{"empty", strPtr(""), "title is required"},
		{"too long", strPtr(strings.Repeat("a", 256)), "title must be 255 characters or less"},
		{"too long multibyte", strPtr(strings.Repeat("あ", 256)), "title must be 255 characters or less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Title = tt.value

			details, err := Validate(context.Background(), req, nil, allExist)
			require.NoError(t, err)
			require.Len(t, details, 1)
			assert.Equal(t, "title", details[0].Field)
			assert.Equal(t, tt.message, details[0].Message)
		})
	}
}

func TestValidate_PriceRules(t *testing.T) {
	req := validRequest()
	req.Price = intPtr(-1)

	details, err := Validate(context.Background(), req, nil, allExist)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "price", details[0].Field)
	assert.Equal(t, "price must be zero or greater", details[0].Message)

	req.Price = intPtr(0)
	details, err = Validate(context.Background(), req, nil, allExist)
	require.NoError(t, err)
	assert.Empty(t, details)
}

// isPublished is checked for presence, not truthiness: false passes.
func TestValidate_IsPublishedPresence(t *testing.T) {
	req := validRequest()
	req.IsPublished = boolPtr(false)

	details, err := Validate(context.Background(), req, nil, allExist)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestValidate_PublishReversal(t *testing.T) {
	tests := []struct {
		name     string
		current  *Book
		incoming bool
		wantErr  bool
	}{
		{"create path skips the check", nil, false, false},
		{"draft to draft", &Book{IsPublished: false}, false, false},
		{"draft to published", &Book{IsPublished: false}, true, false},
		{"published to published", &Book{IsPublished: true}, true, false},
		{"published to draft rejected", &Book{IsPublished: true}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.IsPublished = boolPtr(tt.incoming)

			details, err := Validate(context.Background(), req, tt.current, allExist)
			require.NoError(t, err)

			if tt.wantErr {
				require.Len(t, details, 1)
				assert.Equal(t, "isPublished", details[0].Field)
			} else {
				assert.Empty(t, details)
			}
		})
	}
}

func TestValidate_AuthorsRequired(t *testing.T) {
	for _, authors := range [][]int{nil, {}} {
		req := validRequest()
		req.Authors = authors

		details, err := Validate(context.Background(), req, nil, allExist)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "authors", details[0].Field)
		assert.Equal(t, "authors is required", details[0].Message)
	}
}

// The duplicate check and the existence check are mutually exclusive:
// a duplicated list yields only the duplicate error, and the existence
// query never runs.
func TestValidate_DuplicateAuthorsSkipExistence(t *testing.T) {
	existenceCalled := false
	exists := func(ctx context.Context, ids []int) (bool, error) {
		existenceCalled = true
		return false, nil
	}

	req := validRequest()
	req.Authors = []int{1, 2, 1}

	details, err := Validate(context.Background(), req, nil, exists)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "authors", details[0].Field)
	assert.Equal(t, "authors must not contain the same author twice", details[0].Message)
	assert.False(t, existenceCalled)
}

func TestValidate_UnknownAuthors(t *testing.T) {
	req := validRequest()
	req.Authors = []int{1, 2}

	details, err := Validate(context.Background(), req, nil, noneExist)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "authors", details[0].Field)
	assert.Equal(t, "authors contains an author that does not exist", details[0].Message)
}

// A store failure during the existence check is not a rule violation.
func TestValidate_ExistenceCheckFailure(t *testing.T) {
	storeErr := errors.New("connection lost")
	exists := func(ctx context.Context, ids []int) (bool, error) {
		return false, storeErr
	}

	_, err := Validate(context.Background(), validRequest(), nil, exists)
	assert.ErrorIs(t, err, storeErr)
}
