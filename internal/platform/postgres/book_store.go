package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// BookStore implements the store.BookStore interface using a PostgreSQL
// database as the storage backend. The in-memory store is the default; this
// implementation exists so the API can be pointed at durable storage without
// touching the service or handler layers.
type BookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBookStore creates a new PostgreSQL implementation of the BookStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewBookStore(db store.DBTX, logger *slog.Logger) *BookStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &BookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure BookStore implements store.BookStore.
var _ store.BookStore = (*BookStore)(nil)

// List implements store.BookStore.List.
// The position column records insertion order, matching the in-memory store.
func (s *BookStore) List(ctx context.Context) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, published_date, genre
		FROM books
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	books := make([]domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.PublishedDate,
			&book.Genre,
		); err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return books, nil
}

// GetByID implements store.BookStore.GetByID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *BookStore) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, published_date, genre
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.PublishedDate,
		&book.Genre,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.String("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id))
		return nil, MapError(err)
	}

	return &book, nil
}

// Create implements store.BookStore.Create.
// A fresh random ID is always assigned; any ID in the payload is overwritten.
func (s *BookStore) Create(ctx context.Context, book domain.Book) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	created := domain.NewBook(book.Title, book.Author, book.PublishedDate, book.Genre)

	query := `
		INSERT INTO books (id, title, author, published_date, genre)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		created.ID,
		created.Title,
		created.Author,
		created.PublishedDate,
		created.Genre,
	)
	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", created.ID))
		return nil, MapError(err)
	}

	log.Info("book created", slog.String("book_id", created.ID))
	return created, nil
}

// Update implements store.BookStore.Update.
// The stored ID is preserved; only content fields are replaced.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *BookStore) Update(ctx context.Context, id string, book domain.Book) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE books
		SET title = $2, author = $3, published_date = $4, genre = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		id,
		book.Title,
		book.Author,
		book.PublishedDate,
		book.Genre,
	)
	if err != nil {
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.String("book_id", id))
		return nil, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, MapError(err)
	}
	if rowsAffected == 0 {
		log.Debug("book not found during update", slog.String("book_id", id))
		return nil, store.ErrBookNotFound
	}

	book.ID = id
	log.Info("book updated", slog.String("book_id", id))
	return &book, nil
}

// Delete implements store.BookStore.Delete.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *BookStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.String("book_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if rowsAffected == 0 {
		log.Debug("book not found during delete", slog.String("book_id", id))
		return store.ErrBookNotFound
	}

	log.Info("book deleted", slog.String("book_id", id))
	return nil
}
