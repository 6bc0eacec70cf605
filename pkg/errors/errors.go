package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation marks client-caused request errors.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeUpstream marks an unexpected status from the graph store;
	// the store's status code is passed through to the caller.
	ErrorTypeUpstream ErrorType = "UPSTREAM"

	// ErrorTypeTransport marks a network-level failure reaching the store.
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeInternal marks everything else.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	HTTPStatus int

	// StoreStatus and StorePayload are set for upstream errors only and
	// carry the graph store's raw response.
	StoreStatus  int
	StorePayload string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUpstreamError creates an error for an unexpected graph store status.
// The store's status code becomes the HTTP status reported to the caller.
func NewUpstreamError(storeStatus int, payload string) *AppError {
	return &AppError{
		Type:         ErrorTypeUpstream,
		Message:      fmt.Sprintf("graph store returned unexpected status %d", storeStatus),
		HTTPStatus:   storeStatus,
		StoreStatus:  storeStatus,
		StorePayload: payload,
	}
}

// NewTransportError creates an error for a network failure reaching the store
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeTransport,
		Message:    message,
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsUpstream checks if an error is an upstream store status error
func IsUpstream(err error) bool {
	return IsType(err, ErrorTypeUpstream)
}

// IsTransport checks if an error is a transport error
func IsTransport(err error) bool {
	return IsType(err, ErrorTypeTransport)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}
