// Package errors defines the application error taxonomy. Every operation
// boundary converts one of these into a user-visible transient notification;
// nothing here is allowed to propagate far enough to crash the rendering
// layer.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
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

// Predefined error types. Both are caught before any network call is made.
var (
	// ErrValidation is returned when a required draft field is blank.
	ErrValidation = NewBaseError(
		"VALIDATION_FAILED",
		"required fields are missing or invalid",
		"",
	)

	// ErrPrecondition is returned when an attachment action targets an
	// unsaved record or the file exceeds its size/type limit.
	ErrPrecondition = NewBaseError(
		"PRECONDITION_FAILED",
		"this action is not available yet",
		"",
	)
)

// ServerError represents a non-2xx backend response. It carries the
// server-provided detail text when the body included one.
type ServerError struct {
	Status int    // HTTP status code of the response.
	Detail string // Server-provided detail message; may be empty.
}

// NewServerError creates a server error from a response status and detail.
func NewServerError(status int, detail string) *ServerError {
	return &ServerError{Status: status, Detail: detail}
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}

	return fmt.Sprintf("server returned %d", e.Status)
}

// ErrorCode returns the business error code.
func (e *ServerError) ErrorCode() string {
	return "SERVER_ERROR"
}

// Message returns the server detail when present, otherwise a generic text.
func (e *ServerError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return "the server rejected the request"
}

// Details returns detailed error information.
func (e *ServerError) Details() string {
	return fmt.Sprintf("status %d", e.Status)
}

// NetworkError represents a transport failure before any response arrived.
// The auth handshake treats it as "unauthenticated"; everywhere else it
// surfaces as a generic failure notification.
type NetworkError struct {
	err error
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{err: err}
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return pkgerrors.Wrap(e.err, "network request failed").Error()
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.err
}

// ErrorCode returns the business error code.
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_ERROR"
}

// Message returns the user-friendly error message.
func (e *NetworkError) Message() string {
	return "could not reach the server"
}

// Details returns detailed error information.
func (e *NetworkError) Details() string {
	return e.err.Error()
}

// UserMessage extracts the user-facing message from an error chain: the
// AppError message when one is present, otherwise the given fallback. This
// is what the notification layer shows.
func UserMessage(err error, fallback string) string {
	var appErr AppError
	if pkgerrors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
}
