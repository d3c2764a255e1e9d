package store

import (
	"context"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
//
// Expected absence ("no such book") is reported as ErrBookNotFound, never as
// a generic failure; any other error indicates an unexpected storage fault.
// Implementations do not validate book content; callers validate before
// invoking Create or Update.
type BookStore interface {
	// List returns all stored books. Ordering is insertion order on a
	// best-effort basis; no sort key is guaranteed.
	List(ctx context.Context) ([]domain.Book, error)

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id string) (*domain.Book, error)

	// Create stores a new book built from the payload's content fields.
	// A fresh ID is always generated; any ID in the payload is ignored.
	// Returns the stored book.
	Create(ctx context.Context, book domain.Book) (*domain.Book, error)

	// Update replaces the content fields of the book with the given ID,
	// preserving the ID itself. Returns ErrBookNotFound if the book does
	// not exist.
	Update(ctx context.Context, id string, book domain.Book) (*domain.Book, error)

	// Delete removes the book with the given ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id string) error
}
