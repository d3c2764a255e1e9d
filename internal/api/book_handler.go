// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/phrazzld/bookshelf-api/internal/service"
)

// BookHandler handles book-related HTTP requests. It is the single boundary
// translating service outcomes into HTTP status codes and envelope bodies.
type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}

	return &BookHandler{
		bookService: bookService,
		logger:      logger.With(slog.String("component", "book_handler")),
	}
}

// RegisterRoutes mounts the book endpoints on the given router.
func (h *BookHandler) RegisterRoutes(r chi.Router) {
	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.ListBooks)
		r.Post("/", h.CreateBook)
		r.Get("/{id}", h.GetBookByID)
		r.Put("/{id}", h.UpdateBook)
		r.Delete("/{id}", h.DeleteBook)
	})
}

// ListBooks handles GET /books requests.
// Responds 200 with the full collection (possibly empty).
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		RespondInternalError(w, r, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// GetBookByID handles GET /books/{id} requests.
// Responds 200 with the book, or 404 if the ID is unknown.
func (h *BookHandler) GetBookByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// CreateBook handles POST /books requests.
// The payload is validated before the service is invoked; a validation
// failure responds 400 with every defect listed and creates nothing.
// Responds 201 with the stored book, including its server-assigned ID.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create book request", slog.String("error", err.Error()))
		RespondBadRequest(w, r, err.Error())
		return
	}

	if result := ValidateBook(req); !result.IsValid {
		RespondValidationFailed(w, r, result.Errors)
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Genre:         req.Genre,
	})
	if err != nil {
		RespondInternalError(w, r, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// UpdateBook handles PUT /books/{id} requests.
// The payload is validated first; then the content fields of the stored book
// are fully replaced while its ID is preserved, even if the payload carries
// a different one. Responds 200 with the updated book, or 404 if the ID is
// unknown.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode update book request", slog.String("error", err.Error()))
		RespondBadRequest(w, r, err.Error())
		return
	}

	if result := ValidateBook(req); !result.IsValid {
		RespondValidationFailed(w, r, result.Errors)
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), id, domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
		Genre:         req.Genre,
	})
	if err != nil {
		respondServiceError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/{id} requests.
// Responds 204 with an empty body, or 404 if the ID is unknown (including a
// repeat delete of the same ID).
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bookService.DeleteBook(r.Context(), id); err != nil {
		respondServiceError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
