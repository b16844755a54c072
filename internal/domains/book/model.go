package book

import "library-backend/internal/domains/author"

// Book is the domain entity. IDs are assigned by the store.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	IsPublished bool   `json:"isPublished"`
}

// SaveBookRequest is the body for both create and update. Pointer fields
// keep absent JSON keys distinguishable from zero values; isPublished in
// particular is checked for presence, not truthiness.
type SaveBookRequest struct {
	Title       *string `json:"title"`
	Price       *int    `json:"price"`
	IsPublished *bool   `json:"isPublished"`
	Authors     []int   `json:"authors"`
}

// BookView is a book merged with its linked authors, ordered by ascending
// author id as the aggregation join returns them.
type BookView struct {
	ID          int                     `json:"id"`
	Title       string                  `json:"title"`
	Price       int                     `json:"price"`
	IsPublished bool                    `json:"isPublished"`
	Authors     []author.AuthorResponse `json:"authors"`
}
