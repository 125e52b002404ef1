package backend

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport failures, timeouts and responses that are
// not a JSON envelope.
var ErrUnavailable = errors.New("backend unavailable")

// RejectedError is a well-formed failure answer of the backend
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("backend rejected request (status %d): %s", e.StatusCode, e.Message)
}

// IsUnavailable reports whether err is a connectivity failure
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// AsRejected extracts a RejectedError from err
func AsRejected(err error) (*RejectedError, bool) {
	var rej *RejectedError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, fmt.Sprintf(format, args...))
}
