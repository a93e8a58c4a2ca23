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

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates a status change that the lifecycle of a record does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConflict indicates the record changed between being read and being written.
var ErrConflict = errors.New("record was modified concurrently")

// ErrMissingConfiguration indicates a required configuration record (e.g. an exchange rate) is absent.
var ErrMissingConfiguration = errors.New("missing configuration")

// ErrFetchFailed indicates that reading source records failed. It is distinct from
// an empty result: callers must not treat it as zero records.
var ErrFetchFailed = errors.New("fetch failed")

// AppError carries an HTTP-ish status code and a message next to the wrapped cause.
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewFetchError marks a failed read of source as ErrFetchFailed while keeping the cause.
func NewFetchError(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFetchFailed, source, err)
}
