// Package apperr defines the failure value every component reports through.
// A failure carries one or more human-readable messages and the HTTP status
// the boundary should respond with.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusInvalidToken is returned for invalid or expired credential tokens.
// 498 is not a registered HTTP status; it is kept as-is for client
// compatibility.
const StatusInvalidToken = 498

// Error is a classified failure. Status defaults to 500 when unset.
type Error struct {
	Messages []string
	Status   int

	// list marks errors whose message must stay a list in the response
	// body (validation failures) even when only one rule was violated.
	list bool
}

// New builds an error with a single message and an explicit status.
func New(status int, msg string) *Error {
	return &Error{Messages: []string{msg}, Status: status}
}

// Newf builds an error with a formatted message and an explicit status.
func Newf(status int, format string, args ...any) *Error {
	return New(status, fmt.Sprintf(format, args...))
}

// Validation builds a 400 error whose messages stay a list in the response.
func Validation(msgs []string) *Error {
	return &Error{Messages: msgs, Status: http.StatusBadRequest, list: true}
}

// Internal wraps an unclassified fault as a 500.
func Internal(err error) *Error {
	if err == nil {
		return New(http.StatusInternalServerError, "internal server error")
	}
	return New(http.StatusInternalServerError, err.Error())
}

// From coerces any error into an *Error, defaulting to 500.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// StatusCode returns the HTTP status, defaulting to 500.
func (e *Error) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// Payload returns the value to serialize under "message": a plain string for
// single-message errors, the ordered message list for validation failures.
func (e *Error) Payload() any {
	if e.list {
		return e.Messages
	}
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return strings.Join(e.Messages, "; ")
}
