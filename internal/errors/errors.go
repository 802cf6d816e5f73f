// Package errors provides the coded domain errors shared by the SHLOKA
// server, the terminal client, and the smoke tool.
//
// Every failure in the system carries one of the codes below. The server
// maps codes to HTTP statuses and serializes them in error bodies; the
// client maps statuses and transport faults back to codes, so a broken
// mood→guidance relation (DATA_INTEGRITY) stays distinguishable from a
// genuinely unknown id (NOT_FOUND) end to end.
//
//	if errors.Is(err, errors.ErrNotFound) { ... }
//
//	var derr *errors.Error
//	if errors.As(err, &derr) && derr.Code == errors.CodeDataIntegrity { ... }
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

const (
	// CodeConfiguration: a required endpoint/setting is absent. Client-side
	// only; fatal for the operation, never retried.
	CodeConfiguration Code = "CONFIGURATION"
	// CodeTimeout: no response within the fetch bound.
	CodeTimeout Code = "TIMEOUT"
	// CodeNetwork: connection-level failure (refused, reset, DNS).
	CodeNetwork Code = "NETWORK"
	// CodeNotFound: the referenced id does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeDataIntegrity: an id resolves but its relation or payload is
	// broken (mood without guidance, empty reference list, missing field).
	CodeDataIntegrity Code = "DATA_INTEGRITY"
	// CodeValidation: malformed input.
	CodeValidation Code = "VALIDATION"
	// CodeRateLimited: request budget exceeded.
	CodeRateLimited Code = "RATE_LIMITED"
	// CodeUnavailable: a component is not ready to serve.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeInternal: unclassified server-side fault.
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status the server uses for a code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether a failure with this code may succeed on a
// retry. Missing relations and bad input never heal by retrying.
func (c Code) Retryable() bool {
	switch c {
	case CodeTimeout, CodeNetwork, CodeInternal, CodeUnavailable,
		CodeRateLimited, CodeDataIntegrity:
		return true
	default:
		return false
	}
}

// Kind returns the short lowercase failure class used in user-facing
// states ("configuration", "timeout", "server", ...).
func (c Code) Kind() string {
	switch c {
	case CodeConfiguration:
		return "configuration"
	case CodeTimeout:
		return "timeout"
	case CodeNetwork:
		return "network"
	case CodeNotFound:
		return "not found"
	case CodeDataIntegrity:
		return "data integrity"
	case CodeValidation:
		return "validation"
	default:
		return "server"
	}
}

// CodeFromHTTPStatus classifies a server response status. Used by the
// client when the error body carries no code of its own.
func CodeFromHTTPStatus(status int) Code {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status == http.StatusServiceUnavailable:
		return CodeUnavailable
	case status == http.StatusGatewayTimeout:
		return CodeTimeout
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return CodeValidation
	default:
		return CodeInternal
	}
}

// Error is a domain error with a code, a message, and an optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// Retryable reports whether this error is worth retrying.
func (e *Error) Retryable() bool {
	return e.Code.Retryable()
}

// WithDetails returns a copy carrying additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: details, cause: e.cause}
}

// WithCause returns a copy wrapping an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, cause: err}
}

// Sentinel errors for use with errors.Is().
var (
	ErrConfiguration = &Error{Code: CodeConfiguration, Message: "endpoint not configured"}
	ErrTimeout       = &Error{Code: CodeTimeout, Message: "request timed out"}
	ErrNetwork       = &Error{Code: CodeNetwork, Message: "network failure"}
	ErrNotFound      = &Error{Code: CodeNotFound, Message: "not found"}
	ErrDataIntegrity = &Error{Code: CodeDataIntegrity, Message: "data integrity violation"}
	ErrValidation    = &Error{Code: CodeValidation, Message: "validation error"}
	ErrRateLimited   = &Error{Code: CodeRateLimited, Message: "rate limit exceeded"}
	ErrUnavailable   = &Error{Code: CodeUnavailable, Message: "service unavailable"}
	ErrInternal      = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// Configuration creates a configuration error.
func Configuration(msg string) *Error {
	return &Error{Code: CodeConfiguration, Message: msg}
}

// Timeout creates a timeout error.
func Timeout(msg string) *Error {
	return &Error{Code: CodeTimeout, Message: msg}
}

// Network creates a network error.
func Network(msg string) *Error {
	return &Error{Code: CodeNetwork, Message: msg}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// DataIntegrity creates a data integrity error.
func DataIntegrity(msg string) *Error {
	return &Error{Code: CodeDataIntegrity, Message: msg}
}

// DataIntegrityf creates a data integrity error with a formatted message.
func DataIntegrityf(format string, args ...any) *Error {
	return &Error{Code: CodeDataIntegrity, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// RateLimited creates a rate limit error.
func RateLimited(msg string) *Error {
	return &Error{Code: CodeRateLimited, Message: msg}
}

// Unavailable creates an unavailable error.
func Unavailable(msg string) *Error {
	return &Error{Code: CodeUnavailable, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with a formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
