package replay

import "errors"

var (
	// ErrUnknownOp indicates a script op name Run does not recognize.
	ErrUnknownOp = errors.New("replay: unknown op")

	// ErrInvariant indicates the vector violated its size/capacity invariant.
	ErrInvariant = errors.New("replay: invariant violated")

	// ErrEmptyScript indicates a script without ops.
	ErrEmptyScript = errors.New("replay: script has no ops")
)
