package apperror

import (
	"errors"
	"net/http"
)

// Error is the classified failure shape every service operation returns.
// The handler layer renders Status/Message as-is and never re-classifies.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a 404-class error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// BadRequest builds a 400-class error.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Internal builds a 500-class error wrapping the underlying cause.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf extracts the HTTP status carried by err, defaulting to 500
// for anything that was never classified.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the human-readable message carried by err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a 404-class failure.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
