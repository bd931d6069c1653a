package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := NewValidationError("rating must be between 1 and 5")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, fmt.Errorf("submit: %w", err), ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrCafeNotFound)

	assert.Equal(t, "rating must be between 1 and 5", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(driverErr, "failed to list cafes")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to list cafes", appErr.Details())
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, "database execution failed: connection reset", err.Error())
}
