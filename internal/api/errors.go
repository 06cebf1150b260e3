package api

import (
	"errors"
	"net/http"

	"github.com/medchart/medchart-api/internal/api/shared"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/service/auth"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrPatientNotFound),
		errors.Is(err, service.ErrNoVitals),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, auth.ErrUsernameTaken),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"

	case errors.Is(err, service.ErrPatientNotFound):
		return "Patient not found"

	case errors.Is(err, service.ErrNoVitals):
		return "No vitals recorded for this patient"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, auth.ErrUsernameTaken):
		return "Username already exists"

	case errors.Is(err, auth.ErrEmailTaken):
		return "Email already registered"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the appropriate error response for any error coming
// out of the service layer. Validation failures serialize their per-field
// messages; everything else maps to a status code and a safe message.
// An explicit non-empty message overrides the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		shared.RespondWithFieldErrors(w, r, fieldErrs)
		return
	}

	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
