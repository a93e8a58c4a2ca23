package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	err := apperrors.NewNotFoundError("client 42 not found")
	wrapped := fmt.Errorf("service: %w", err)

	assert.ErrorIs(t, wrapped, apperrors.ErrNotFound)
	assert.NotErrorIs(t, wrapped, apperrors.ErrValidation)
	assert.Contains(t, wrapped.Error(), "client 42 not found")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestNewValidationError(t *testing.T) {
	err := apperrors.NewValidationError("amount must be positive")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 400, err.Code)
}

func TestNewFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewFetchError("ledger_entries", cause)

	assert.ErrorIs(t, err, apperrors.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ledger_entries")
}
