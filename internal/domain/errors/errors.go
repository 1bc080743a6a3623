// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers. Every error carries the HTTP status code and
// a stable business error code so the delivery layer never has to guess.
package errors

import (
	"net/http"

	"gather/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors (400)
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrCodeChallengeInvalid = NewBaseError(
		http.StatusBadRequest,
		"CODE_CHALLENGE_INVALID",
		"Invalid PKCE code_challenge",
		"",
	)

	ErrRedirectURIRequired = NewBaseError(
		http.StatusBadRequest,
		"REDIRECT_URI_REQUIRED",
		"OAuth redirect URI is required",
		"",
	)

	ErrOAuthProviderNotEnabled = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_PROVIDER_NOT_ENABLED",
		"OAuth provider is not enabled",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_EXCHANGE_FAILED",
		"OAuth token exchange failed",
		"",
	)

	ErrOAuthProfileIncomplete = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_PROFILE_INCOMPLETE",
		"OAuth profile did not provide an email",
		"",
	)

	ErrRefreshTokenRequired = NewBaseError(
		http.StatusBadRequest,
		"REFRESH_TOKEN_REQUIRED",
		"Refresh token is required",
		"",
	)

	// Authentication errors (401)
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_STATE_INVALID",
		"Invalid OAuth state",
		"",
	)

	ErrOAuthStateExpired = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_STATE_EXPIRED",
		"OAuth state expired",
		"",
	)

	ErrOAuthProviderMismatch = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_PROVIDER_MISMATCH",
		"OAuth provider mismatch for state",
		"",
	)

	ErrCodeVerifierInvalid = NewBaseError(
		http.StatusUnauthorized,
		"CODE_VERIFIER_INVALID",
		"Invalid PKCE code_verifier",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrRefreshTokenInactive = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INACTIVE",
		"Refresh token is not active",
		"",
	)

	ErrRefreshTokenReused = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_REUSED",
		"Refresh token reuse detected, session revoked",
		"",
	)

	// Authorization errors (403)
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Not-found errors (404)
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrInscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"INSCRIPTION_NOT_FOUND",
		"Inscription not found",
		"",
	)

	ErrPresenceNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESENCE_NOT_FOUND",
		"Presence not found",
		"",
	)

	ErrSpeakerNotFound = NewBaseError(
		http.StatusNotFound,
		"SPEAKER_NOT_FOUND",
		"Speaker not found",
		"",
	)

	// Conflict errors (409)
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with this email already exists",
		"",
	)

	ErrAlreadyInscribed = NewBaseError(
		http.StatusConflict,
		"ALREADY_INSCRIBED",
		"User is already inscribed in this event",
		"",
	)

	ErrSpeakerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SPEAKER_ALREADY_EXISTS",
		"A speaker with this email already exists",
		"",
	)

	// Infrastructure errors (500)
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrMailDeliveryFailed = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_DELIVERY_FAILED",
		"Failed to send email",
		"",
	)

	ErrSpreadsheetFailed = NewBaseError(
		http.StatusInternalServerError,
		"SPREADSHEET_FAILED",
		"Spreadsheet operation failed",
		"",
	)
)
