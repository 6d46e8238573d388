// Package replay drives a dynarray.Vector[int] through a scripted sequence
// of operations and records its size and capacity after every step.
//
// A script is a YAML document:
//
//	name: range insert growth
//	initial: [1, 2]
//	ops:
//	  - {op: insert_range, pos: 1, values: [4, 5, 6, 7, 8, 9, 10, 11, 12]}
//	  - {op: erase_range, first: 0, last: 3}
//	  - {op: shrink}
//
// Supported ops and their fields:
//
//	push         value
//	emplace      value
//	insert       pos, value
//	insert_range pos, values
//	erase        pos
//	erase_range  first, last
//	pop
//	reserve      n
//	shrink
//	resize       n, value (fill)
//	clear
//
// Run checks 0 <= Len <= Cap and that iteration visits exactly Len
// elements after every op; a violation stops the run with ErrInvariant.
// Reallocations are logged at debug level through the injected slog.Logger.
package replay
