package dynarray

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is reported whenever an index falls outside the valid
// range of an operation.
var ErrIndexOutOfRange = errors.New("dynarray: index out of range")

// IndexError describes a rejected index. It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string // operation that rejected the index
	Index int
	Size  int // logical size at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
