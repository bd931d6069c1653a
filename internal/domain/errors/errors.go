// Package errors defines the catalog's user-facing error values. Each carries
// the HTTP status and stable code the API reports.
package errors

import (
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
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
	// Cafe-related errors
	ErrCafeNotFound = NewBaseError(
		http.StatusNotFound,
		"CAFE_NOT_FOUND",
		"Cafe not found",
		"",
	)

	ErrSlugConflict = NewBaseError(
		http.StatusConflict,
		"SLUG_CONFLICT",
		"A cafe with this slug already exists",
		"",
	)

	ErrCafeCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAFE_CREATION_FAILED",
		"Failed to create cafe",
		"",
	)

	ErrCafeUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAFE_UPDATE_FAILED",
		"Failed to update cafe",
		"",
	)

	ErrFeatureRequiresVerified = NewBaseError(
		http.StatusBadRequest,
		"FEATURE_REQUIRES_VERIFIED",
		"Only verified cafes can be featured",
		"",
	)

	// Review-related errors
	ErrReviewCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REVIEW_CREATION_FAILED",
		"Failed to create review",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Store transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// NewValidationError returns ErrValidationFailed carrying the offending detail.
func NewValidationError(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

// Is lets errors.Is match a BaseError copy produced by WithDetails against its predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	if e.err == nil {
		return "database execution failed"
	}

	return "database execution failed: " + e.err.Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
