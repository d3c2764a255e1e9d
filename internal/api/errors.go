package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/bookshelf-api/internal/api/shared"
	"github.com/phrazzld/bookshelf-api/internal/store"
)

// Canonical error messages. Clients match on these strings, so any change
// here is a breaking change.
const (
	msgBadRequest       = "Bad Request"
	msgValidationFailed = "Validation Failed"
	msgUnauthorized     = "Unauthorized"
	msgForbidden        = "Forbidden"
	msgNotFound         = "Resource not found"
	msgBookNotFound     = "Book not found"
	msgConflict         = "Conflict"
	msgInternalError    = "Internal server error"
)

// RespondBadRequest writes a 400 envelope for malformed requests.
func RespondBadRequest(w http.ResponseWriter, r *http.Request, details ...string) {
	shared.RespondWithError(w, r, http.StatusBadRequest, msgBadRequest, details...)
}

// RespondValidationFailed writes a 400 envelope carrying the validator's
// full error list as details.
func RespondValidationFailed(w http.ResponseWriter, r *http.Request, validationErrors []string) {
	shared.RespondWithError(w, r, http.StatusBadRequest, msgValidationFailed, validationErrors...)
}

// RespondUnauthorized writes a 401 envelope.
func RespondUnauthorized(w http.ResponseWriter, r *http.Request, details ...string) {
	shared.RespondWithError(w, r, http.StatusUnauthorized, msgUnauthorized, details...)
}

// RespondForbidden writes a 403 envelope.
func RespondForbidden(w http.ResponseWriter, r *http.Request, details ...string) {
	shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden, details...)
}

// RespondNotFound writes a generic 404 envelope. If message is empty, the
// default "Resource not found" is used.
func RespondNotFound(w http.ResponseWriter, r *http.Request, message string, details ...string) {
	if message == "" {
		message = msgNotFound
	}
	shared.RespondWithError(w, r, http.StatusNotFound, message, details...)
}

// RespondBookNotFound writes a 404 envelope for a missing book. The message
// names the requested ID when one is given.
func RespondBookNotFound(w http.ResponseWriter, r *http.Request, id string) {
	message := msgBookNotFound
	if id != "" {
		message = fmt.Sprintf("Book with ID '%s' not found", id)
	}
	shared.RespondWithError(w, r, http.StatusNotFound, message)
}

// RespondConflict writes a 409 envelope.
func RespondConflict(w http.ResponseWriter, r *http.Request, details ...string) {
	shared.RespondWithError(w, r, http.StatusConflict, msgConflict, details...)
}

// RespondInternalError writes a 500 envelope.
func RespondInternalError(w http.ResponseWriter, r *http.Request, details ...string) {
	shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternalError, details...)
}

// respondServiceError translates an error returned by the service layer into
// the appropriate envelope: a missing book becomes a 404 naming the ID, and
// anything else is an unexpected fault reported as a 500 with the error
// message as the sole detail. Handlers never let a raw error reach the
// transport.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, id string) {
	if errors.Is(err, store.ErrBookNotFound) {
		RespondBookNotFound(w, r, id)
		return
	}
	RespondInternalError(w, r, err.Error())
}
