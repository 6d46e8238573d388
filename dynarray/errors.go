package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index or position outside the valid domain
	// ([0, Len()) for element access, [0, Len()] for insert positions).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrInvalidRange indicates an erase range with first > last.
	ErrInvalidRange = errors.New("dynarray: invalid range")

	// ErrNegativeLength indicates a negative element count.
	ErrNegativeLength = errors.New("dynarray: negative length")

	// ErrEmpty indicates PopBack on an empty vector.
	ErrEmpty = errors.New("dynarray: vector is empty")
)

// method tags used in error context
const (
	ctxAt          = "At"
	ctxSetAt       = "SetAt"
	ctxInsert      = "Insert"
	ctxInsertSlice = "InsertSlice"
	ctxInsertRange = "InsertRange"
	ctxErase       = "Erase"
	ctxEraseRange  = "EraseRange"
	ctxResize      = "Resize"
	ctxNewFilled   = "NewFilled"
	ctxFromCursors = "FromCursors"
)

// vectorErrorf attaches the method and position to a sentinel.
func vectorErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, pos, err)
}

// rangeErrorf is vectorErrorf for [first, last) arguments.
func rangeErrorf(method string, first, last int, err error) error {
	return fmt.Errorf("Vector.%s(%d,%d): %w", method, first, last, err)
}
