package persist

import (
	"errors"
	"fmt"
)

// IOOp identifies what the adapter was doing when an I/O error occurred.
type IOOp string

const (
	OpOpen  IOOp = "open"
	OpWrite IOOp = "write"
)

// IOError reports a failed file operation with its underlying reason.
// Recoverable at the command level: it becomes a one-line status and
// never terminates the process.
type IOError struct {
	Op   IOOp
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError returns true if the error is a file I/O failure.
// Uses errors.As to handle wrapped errors.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
