// Package service contains the orchestration layer between the HTTP handlers
// and the store. The book service is a deliberate pass-through today: it
// exists so cross-cutting concerns (events, caching, auditing) or a storage
// swap can be introduced without touching the handlers or the stores.
package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookService defines the operations the API layer consumes. It mirrors the
// store contract one-to-one, including the ErrBookNotFound semantics.
type BookService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	UpdateBook(ctx context.Context, id string, book domain.Book) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

type bookService struct {
	store  store.BookStore
	logger *slog.Logger
}

// NewBookService creates a BookService backed by the given store.
func NewBookService(bookStore store.BookStore, logger *slog.Logger) BookService {
	if bookStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("bookStore cannot be nil for BookService")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &bookService{
		store:  bookStore,
		logger: logger.With(slog.String("component", "book_service")),
	}
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.store.List(ctx)
}

func (s *bookService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return s.store.GetByID(ctx, id)
}

func (s *bookService) CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	return s.store.Create(ctx, book)
}

func (s *bookService) UpdateBook(ctx context.Context, id string, book domain.Book) (*domain.Book, error) {
	return s.store.Update(ctx, id, book)
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
