package sequence

import "errors"

var (
	// ErrCursorMismatch indicates two cursors that do not walk the same
	// view in the same direction were used as a pair.
	ErrCursorMismatch = errors.New("sequence: cursors belong to different views or directions")

	// ErrInvalidRange indicates last precedes first in a cursor pair.
	ErrInvalidRange = errors.New("sequence: last precedes first")
)
