// Package apperrors defines the single error kind the API surfaces to clients.
package apperrors

import "net/http"

// Error carries an HTTP status code and a client-facing message. Any layer may
// return one to abort the current request; the error middleware is the only
// place that turns it into an HTTP response.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with an arbitrary status code.
func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// NewBadRequest creates a 400 error for client-fixable input problems.
func NewBadRequest(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: message}
}

// NewForbidden creates a 403 error.
func NewForbidden(message string) *Error {
	return &Error{StatusCode: http.StatusForbidden, Message: message}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: message}
}

// NewConflict creates a 409 error for duplicate unique keys.
func NewConflict(message string) *Error {
	return &Error{StatusCode: http.StatusConflict, Message: message}
}

// NewInternal creates a 500 error for storage or mail failures.
func NewInternal(message string) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: message}
}
