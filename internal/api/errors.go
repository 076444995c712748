package api

import (
	"errors"
	"net/http"

	"github.com/quillstack/quill-api/internal/domain"
	"github.com/quillstack/quill-api/internal/service/auth"
	"github.com/quillstack/quill-api/internal/store"

	"github.com/quillstack/quill-api/internal/api/shared"
)

// Messages returned to clients. Validation and auth failures get generic
// messages with no field detail; conflict and not-found messages match
// what the API has always returned.
const (
	msgInvalidInput      = "Invalid Input"
	msgUnauthorized      = "Unauthorized"
	msgUserExists        = "User already exists"
	msgUserNotFound      = "User not found"
	msgPostNotFound      = "Post not found"
	msgSignupStoreFailed = "error while signin"
	msgInternal          = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Conflict and unknown-email errors share the 403 family,
	// matching the API's historical behavior.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternal
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return msgUnauthorized

	case errors.Is(err, store.ErrEmailExists):
		return msgUserExists

	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrPostNotFound):
		return msgPostNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidInput

	default:
		return msgInternal
	}
}

// HandleAPIError writes an error response for the given internal error,
// mapping it to a status code and safe message. A non-empty userMessage
// overrides the derived message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
