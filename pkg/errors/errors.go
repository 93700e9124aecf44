package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error carrying the same code, so clones and wraps compare equal
// to the predefined template they came from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// WithDetails returns a copy of e carrying structured details for the client.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details)+len(details))
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	for k, v := range details {
		clone.Details[k] = v
	}
	return &clone
}

// Predefined errors for common scenarios.
var (
	ErrNotFound      = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation    = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal      = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrDataIntegrity = New("DATA_INTEGRITY", http.StatusUnprocessableEntity, "source data failed integrity checks")
	ErrCacheMiss     = New("CACHE_MISS", http.StatusNotFound, "cache miss")
	ErrUnsupported   = New("UNSUPPORTED", http.StatusBadRequest, "unsupported option")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
