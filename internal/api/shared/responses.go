package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorDetail is the inner object of the standard error envelope.
type ErrorDetail struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// ErrorEnvelope is the wire shape for every non-2xx response:
//
//	{"error": {"code": 404, "message": "Book not found", "details": []}}
//
// Every error path goes through this shape, so clients never see a
// non-standardized error body.
type ErrorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse constructs a standardized error envelope from a status
// code, message, and optional details. Empty detail strings are dropped,
// and Details is always a non-nil slice so it serializes as a JSON array,
// never null.
func NewErrorResponse(code int, message string, details ...string) ErrorEnvelope {
	normalized := make([]string, 0, len(details))
	for _, d := range details {
		if d != "" {
			normalized = append(normalized, d)
		}
	}

	return ErrorEnvelope{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: normalized,
		},
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a standardized error envelope with the given
// status code, message, and details. It is the single point where error
// outcomes touch the transport. The response is also logged with the trace
// ID from the request context for correlation: 5xx at ERROR level, 4xx at
// DEBUG level.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, details ...string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, NewErrorResponse(status, message, details...))
}
