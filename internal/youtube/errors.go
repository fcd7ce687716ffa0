package youtube

import (
	"errors"
	"fmt"
)

// Sentinel errors for YouTube Data API operations.
var (
	ErrBadRequest    = errors.New("youtube: bad request")
	ErrQuotaExceeded = errors.New("youtube: quota exceeded or key rejected")
	ErrServer        = errors.New("youtube: server error")
)

// Error wraps an underlying error with operation context. Any failure
// of the search or details call surfaces as one of these; there is no
// retry and no partial result.
type Error struct {
	Op    string // Operation: "search", "details"
	Query string // If applicable
	Err   error
}

func (e *Error) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("youtube %s [%s]: %v", e.Op, e.Query, e.Err)
	}
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, query string, err error) error {
	return &Error{
		Op:    op,
		Query: query,
		Err:   err,
	}
}
