package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookshelf-api/internal/config"
	"github.com/phrazzld/bookshelf-api/internal/platform/memstore"
	"github.com/phrazzld/bookshelf-api/internal/platform/postgres"
	"github.com/phrazzld/bookshelf-api/internal/service"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB // nil for the in-memory driver
	bookStore   store.BookStore
	bookService service.BookService
}

// newApplication assembles the dependency graph for the configured store
// backend. The store is constructed exactly once here and handed down by
// reference; there are no hidden process-globals.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Store.Driver {
	case "postgres":
		db, err := openDatabase(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		app.db = db

		if err := runMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		app.bookStore = postgres.NewBookStore(db, logger)

	case "memory":
		seed, err := loadSeed(cfg.Store.SeedPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		app.bookStore = memstore.NewBookStore(seed, logger)

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	app.bookService = service.NewBookService(app.bookStore, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
