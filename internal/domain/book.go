// Package domain defines the core business entities and errors.
package domain

import "github.com/google/uuid"

// Book represents a single book in the catalog.
//
// PublishedDate is kept as the ISO-8601 string the client submitted rather
// than a parsed time.Time, so the value round-trips byte-for-byte through
// create/read/update. Parsing happens once, during request validation.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
	Genre         string `json:"genre"`
}

// NewBook creates a new Book with a freshly generated ID and the given
// content fields. IDs are random UUIDs (128 bits), so collisions are
// negligible and IDs are never client-supplied.
func NewBook(title, author, publishedDate, genre string) *Book {
	return &Book{
		ID:            uuid.NewString(),
		Title:         title,
		Author:        author,
		PublishedDate: publishedDate,
		Genre:         genre,
	}
}
