package errors

import (
	"errors"
	"net/http"
)

// Validation errors.
var (
	// ErrInvalidRole is returned when a role is not one of the known values.
	ErrInvalidRole = errors.New("invalid role")
	// ErrMissingRequiredField is returned when the role requires a reference that was not supplied.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrConflictingFields is returned when a reference was supplied that the role forbids.
	ErrConflictingFields = errors.New("conflicting fields")
	// ErrPasswordMismatch is returned when the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	// ErrNoOpChange is returned when the new password equals the current one.
	ErrNoOpChange = errors.New("new password must differ from the current one")
	// ErrValidation wraps model level check failures.
	ErrValidation = errors.New("validation failed")
	// ErrPasswordTooLong is returned when a password exceeds what bcrypt can hash.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrEmailTaken is returned when the email already belongs to another user.
	ErrEmailTaken = errors.New("email already in use")
)

// Auth errors.
var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect credentials")
	// ErrForbidden is returned when the actor may not perform the operation.
	ErrForbidden = errors.New("not authorized")
	// ErrSetupLocked is returned when setup runs after a user already exists.
	ErrSetupLocked = errors.New("setup already completed")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Not found errors.
var (
	// ErrNotFound is returned when a generic record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrUserNotFound is returned when a user is missing.
	ErrUserNotFound = errors.New("user not found")
)

// Token errors. Both are reported to clients with the same generic message.
var (
	// ErrTokenNotFound is returned when a reset token does not exist or was already used.
	ErrTokenNotFound = errors.New("reset token not found")
	// ErrTokenExpired is returned when a reset token is past its expiration.
	ErrTokenExpired = errors.New("reset token expired")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors keep the
// full message for validation failures so the caller learns what to fix.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrMissingRequiredField):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_REQUIRED_FIELD")
	case errors.Is(err, ErrConflictingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFLICTING_FIELDS")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordMismatch.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrNoOpChange):
		return NewHTTPError(http.StatusBadRequest, ErrNoOpChange.Error(), "NO_OP_CHANGE")
	case errors.Is(err, ErrPasswordTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordTooLong.Error(), "PASSWORD_TOO_LONG")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidRefreshToken.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrSetupLocked):
		return NewHTTPError(http.StatusForbidden, ErrSetupLocked.Error(), "SETUP_LOCKED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrTokenNotFound), errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusBadRequest, "invalid or expired token", "INVALID_RESET_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
