package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/bookshelf-api/internal/domain"
)

// loadSeed reads a JSON array of book records from the given path to
// pre-populate the in-memory store at startup. An empty path means no
// seeding; a missing or malformed file is an error so a typo'd path fails
// loudly instead of silently starting empty.
func loadSeed(path string, logger *slog.Logger) ([]domain.Book, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	logger.Info("seed data loaded", "path", path, "count", len(books))
	return books, nil
}
