package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. short destination, end date before start date, malformed email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
// Validation failures are user-fixable and are never retried automatically.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when an operation would create a second copy of
// something that must be unique, such as inviting the same guest twice.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicate = errors.New("duplicate")

// Error attaches the user-facing detail to one of the sentinels above.
// errors.Is still matches the sentinel through Unwrap; handlers recover
// the detail with errors.As instead of parsing error strings, so the
// message may safely contain any characters.
type Error struct {
	Sentinel error
	Message  string
}

func (e *Error) Error() string { return e.Sentinel.Error() + ": " + e.Message }

func (e *Error) Unwrap() error { return e.Sentinel }

// Errorf builds an Error from a sentinel and a formatted user-facing message.
func Errorf(sentinel error, format string, args ...any) *Error {
	return &Error{Sentinel: sentinel, Message: fmt.Sprintf(format, args...)}
}
