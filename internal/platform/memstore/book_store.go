// Package memstore provides an in-memory implementation of the store
// interfaces. It is the default backend: storage is volatile and lost on
// restart, which is acceptable for the API's contract.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookStore implements store.BookStore with a mutex-guarded map.
//
// The store is the sole owner of the map; books cross the API boundary by
// value, so callers never hold a mutable reference into storage. A separate
// order slice preserves insertion order for List.
type BookStore struct {
	mu     sync.RWMutex
	books  map[string]domain.Book
	order  []string
	logger *slog.Logger
}

// Ensure BookStore implements store.BookStore.
var _ store.BookStore = (*BookStore)(nil)

// NewBookStore creates an in-memory book store pre-populated with the given
// seed records. Seed entries keep their IDs when present; entries without an
// ID get a generated one. A nil or empty seed means the store starts empty.
// If logger is nil, a default logger will be used.
func NewBookStore(seed []domain.Book, logger *slog.Logger) *BookStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &BookStore{
		books:  make(map[string]domain.Book, len(seed)),
		order:  make([]string, 0, len(seed)),
		logger: logger.With(slog.String("component", "book_store")),
	}

	for _, book := range seed {
		if book.ID == "" {
			book.ID = uuid.NewString()
		}
		if _, exists := s.books[book.ID]; !exists {
			s.order = append(s.order, book.ID)
		}
		s.books[book.ID] = book
	}

	return s
}

// List implements store.BookStore.List.
// Books are returned in insertion order. The result is never nil, so an
// empty store serializes as an empty JSON array.
func (s *BookStore) List(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]domain.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.books[id])
	}
	return books, nil
}

// GetByID implements store.BookStore.GetByID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *BookStore) GetByID(_ context.Context, id string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &book, nil
}

// Create implements store.BookStore.Create.
// A fresh random ID is always assigned; any ID in the payload is overwritten.
func (s *BookStore) Create(_ context.Context, book domain.Book) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := domain.NewBook(book.Title, book.Author, book.PublishedDate, book.Genre)
	s.books[created.ID] = *created
	s.order = append(s.order, created.ID)

	s.logger.Debug("book created",
		slog.String("book_id", created.ID),
		slog.String("title", created.Title))
	return created, nil
}

// Update implements store.BookStore.Update.
// The stored ID is preserved even if the payload carries a different one.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *BookStore) Update(_ context.Context, id string, book domain.Book) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return nil, store.ErrBookNotFound
	}

	book.ID = id
	s.books[id] = book

	s.logger.Debug("book updated", slog.String("book_id", id))
	return &book, nil
}

// Delete implements store.BookStore.Delete.
// Returns store.ErrBookNotFound if the book does not exist. Removal is
// immediate and irreversible; there is no soft delete.
func (s *BookStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return store.ErrBookNotFound
	}

	delete(s.books, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Debug("book deleted", slog.String("book_id", id))
	return nil
}
