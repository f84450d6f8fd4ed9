package sparse

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a logical index outside the array's domain.
// Every *IndexError wraps it, so callers can match with errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a logical index outside the valid domain [0, Length).
// It is the only failure the package produces: all other operations are total
// given a valid index.
type IndexError struct {
	Index  int // the offending logical index
	Length int // the array's logical length; valid indices are [0, Length)
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("sparse: index %d out of range [0, %d)", e.Index, e.Length)
}

// Unwrap returns ErrIndexOutOfRange so errors.Is matching works.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// check returns a non-nil *IndexError when i falls outside [0, a.length).
func (a *Array[T]) check(i int) *IndexError {
	if i < 0 || i >= a.length {
		return &IndexError{Index: i, Length: a.length}
	}
	return nil
}
