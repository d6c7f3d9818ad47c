package list

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned, wrapped in an *IndexError, whenever an
// index falls outside the range an operation accepts.
var ErrIndexOutOfRange = errors.New("list: index out of range")

// IndexError records the failing operation and the list length at the
// time of the call. The list is left untouched.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexError(op string, i, size int) error {
	return &IndexError{Op: op, Index: i, Size: size}
}
