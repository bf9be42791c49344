package remote

import (
	"errors"
	"fmt"
)

// ErrRemote matches every failure reported by the remote service itself
// (non-2xx status or an error envelope), as opposed to transport errors.
var ErrRemote = errors.New("remote service error")

// Error is a failure reported by the remote service.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: remote returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: remote returned %d: %s", e.Op, e.StatusCode, e.Message)
}

// Is makes errors.Is(err, ErrRemote) true for any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrRemote
}
