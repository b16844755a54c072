package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGroupRows_Empty(t *testing.T) {
	views := groupRows(nil)

	require.NotNil(t, views, "must marshal as [], not null")
	assert.Empty(t, views)
}

func TestGroupRows_OneBookPerGroup(t *testing.T) {
	rows := []joinedRow{
		{bookID: 1, title: "first", price: 1000, isPublished: true,
			authorID: intPtr(10), authorName: strPtr("a"), authorBirthdate: datePtr(2000, time.January, 1)},
		{bookID: 1, title: "first", price: 1000, isPublished: true,
			authorID: intPtr(20), authorName: strPtr("b"), authorBirthdate: datePtr(1990, time.May, 2)},
		{bookID: 2, title: "second", price: 0, isPublished: false,
			authorID: intPtr(10), authorName: strPtr("a"), authorBirthdate: datePtr(2000, time.January, 1)},
	}

	views := groupRows(rows)

	require.Len(t, views, 2)

	assert.Equal(t, 1, views[0].ID)
	assert.Equal(t, "first", views[0].Title)
	assert.Equal(t, 1000, views[0].Price)
	assert.True(t, views[0].IsPublished)
	require.Len(t, views[0].Authors, 2)
	assert.Equal(t, author.AuthorResponse{ID: 10, Name: "a", Birthdate: "2000-01-01"}, views[0].Authors[0])
	assert.Equal(t, author.AuthorResponse{ID: 20, Name: "b", Birthdate: "1990-05-02"}, views[0].Authors[1])

	assert.Equal(t, 2, views[1].ID)
	require.Len(t, views[1].Authors, 1)
}

// A left-join row with NULL author columns contributes no author entry,
// not a placeholder.
func TestGroupRows_NullAuthorColumns(t *testing.T) {
	rows := []joinedRow{
		{bookID: 1, title: "orphaned", price: 500, isPublished: false},
	}

	views := groupRows(rows)

	require.Len(t, views, 1)
	require.NotNil(t, views[0].Authors)
	assert.Empty(t, views[0].Authors)
}

// Grouping preserves the row order of the joined fetch (book id ascending).
func TestGroupRows_PreservesOrder(t *testing.T) {
	rows := []joinedRow{
		{bookID: 3, title: "c"},
		{bookID: 5, title: "e"},
		{bookID: 8, title: "h"},
	}

	views := groupRows(rows)

	require.Len(t, views, 3)
	assert.Equal(t, 3, views[0].ID)
	assert.Equal(t, 5, views[1].ID)
	assert.Equal(t, 8, views[2].ID)
}
