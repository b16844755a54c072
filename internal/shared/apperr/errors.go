package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a business failure so the transport layer can pick a
// status code without inspecting messages.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnexpected
)

// FieldError describes one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type services return to handlers.
// Details is populated only for validation failures and carries the full
// accumulated list of field errors in rule-evaluation order.
type Error struct {
	Kind    Kind
	Message string
	Details []FieldError

	// cause is the underlying error for unexpected failures.
	// It is logged server-side and never serialized.
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a validation error carrying the accumulated field errors.
func Validation(details []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Details: details,
	}
}

// NotFound builds the error for a missing or unresolvable resource.
func NotFound() *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: "requested data does not exist",
	}
}

// Unexpected wraps a non-business failure. The public message stays
// generic; the cause is available through Unwrap for logging.
func Unexpected(cause error) *Error {
	return &Error{
		Kind:    KindUnexpected,
		Message: "an unexpected error occurred",
		cause:   cause,
	}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
