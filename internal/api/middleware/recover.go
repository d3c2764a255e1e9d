package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
)

// RecoverMiddleware converts a panic anywhere in the handler chain into a
// standard 500 error envelope. Nothing non-enveloped may ever reach the
// transport, so this replaces chi's stock Recoverer, which writes a bare
// 500.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromContextOrDefault(r.Context(), nil)
				log.Error("panic recovered while handling request",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))

				shared.RespondWithError(w, r,
					http.StatusInternalServerError,
					"Internal server error",
					fmt.Sprintf("%v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
