package fixedarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, N).
	ErrOutOfRange = errors.New("fixedarray: index out of range")

	// ErrTooManyValues indicates a literal list longer than N.
	ErrTooManyValues = errors.New("fixedarray: more values than array length")

	// ErrLengthMismatch indicates an operation paired arrays of different N.
	ErrLengthMismatch = errors.New("fixedarray: array lengths differ")

	// ErrNegativeLength indicates a negative N was requested.
	ErrNegativeLength = errors.New("fixedarray: negative length")
)

// arrayErrorf attaches the method name and index to a sentinel.
func arrayErrorf(method string, i int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, i, err)
}
