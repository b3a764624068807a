package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the resource changed underneath the caller, e.g. a
// status transition raced with another writer and the conditional update
// matched zero rows.
var ErrConflict = errors.New("resource state conflict")

// ErrInvalidRefreshToken indicates the supplied refresh token did not match the stored hash.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// ErrRefreshTokenExpired indicates the refresh token is past its expiry time.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// BlockedDatesError rejects a submission targeting blocked dates. It carries
// the offending dates so the handler can return them for UI highlighting.
type BlockedDatesError struct {
	Dates []string
}

func (e *BlockedDatesError) Error() string {
	return fmt.Sprintf("submission date falls on blocked dates: %v", e.Dates)
}

func (e *BlockedDatesError) Unwrap() error {
	return ErrValidation
}

// NewBlockedDatesError creates a BlockedDatesError for the given dates.
func NewBlockedDatesError(dates []string) *BlockedDatesError {
	return &BlockedDatesError{Dates: dates}
}

// AppError carries an HTTP status hint alongside a message and optional cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}
