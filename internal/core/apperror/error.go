// Package apperror provides structured error handling for the registry core.
// Business and contract errors are returned as AppError so callers can branch on Code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal           = "INTERNAL_ERROR"
	CodeEntropyUnavailable = "ENTROPY_UNAVAILABLE"
	CodeRenderFailed       = "RENDER_FAILED"

	// Validation errors (400)
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidDirection = "INVALID_DIRECTION"
	CodeInvalidCode      = "INVALID_CODE"
	CodeInvalidID        = "INVALID_ID"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// AppError is the standard error type of the registry.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, offending values)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested status for an API layer sitting in front of the core
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidDirection is returned when a business code is requested for an unknown direction.
func NewInvalidDirection(value string) *AppError {
	return &AppError{
		Code:       CodeInvalidDirection,
		Message:    fmt.Sprintf("unknown direction %q", value),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"direction": value},
	}
}

// NewInvalidCode is returned when a string is not a well-formed business code.
func NewInvalidCode(value string) *AppError {
	return &AppError{
		Code:       CodeInvalidCode,
		Message:    "malformed business code",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"code": value},
	}
}

// NewInvalidID is returned when a string is not a sortable identifier.
func NewInvalidID(value string, cause error) *AppError {
	return &AppError{
		Code:       CodeInvalidID,
		Message:    "malformed identifier",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"id": value},
		Err:        cause,
	}
}

// NewEntropyUnavailable reports that the random source could not be read.
// It is a fatal configuration error: callers must not retry with a weaker source.
func NewEntropyUnavailable(err error) *AppError {
	return &AppError{
		Code:       CodeEntropyUnavailable,
		Message:    "secure random source unavailable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewRenderFailed wraps a failure of the PDF or barcode backend.
func NewRenderFailed(stage string, err error) *AppError {
	return &AppError{
		Code:       CodeRenderFailed,
		Message:    fmt.Sprintf("render %s failed", stage),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"stage": stage},
		Err:        err,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether any AppError in the chain carries code.
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool {
	return HasCode(err, CodeValidation)
}

// IsEntropyUnavailable checks if error is CodeEntropyUnavailable
func IsEntropyUnavailable(err error) bool {
	return HasCode(err, CodeEntropyUnavailable)
}
