package sequence

// Cursor is a bidirectional position over a contiguous view of elements.
//
// A forward cursor steps +1 and reaches End at len(view); a reverse cursor
// steps -1 and reaches REnd at -1. Index always reports the position in
// view order, so Index of RBegin is len(view)-1.
//
// Cursors are values: moving returns a new Cursor, the receiver is not
// modified. A Cursor aliases the container buffer and is invalidated by any
// operation that reallocates or shifts it.
type Cursor[T any] struct {
	view []T // live elements of the owning container
	pos  int // element index inside view; may sit one past either end
	step int // +1 forward, -1 reverse
}

// Begin returns a forward cursor at the first element of view.
func Begin[T any](view []T) Cursor[T] {
	return Cursor[T]{view: view, pos: 0, step: 1}
}

// End returns the forward past-the-end cursor of view.
func End[T any](view []T) Cursor[T] {
	return Cursor[T]{view: view, pos: len(view), step: 1}
}

// RBegin returns a reverse cursor at the last element of view.
func RBegin[T any](view []T) Cursor[T] {
	return Cursor[T]{view: view, pos: len(view) - 1, step: -1}
}

// REnd returns the reverse past-the-end cursor of view (before the first element).
func REnd[T any](view []T) Cursor[T] {
	return Cursor[T]{view: view, pos: -1, step: -1}
}

// Valid reports whether the cursor points at an element (not at either end).
func (c Cursor[T]) Valid() bool { return c.pos >= 0 && c.pos < len(c.view) }

// Reversed reports whether the cursor walks back-to-front.
func (c Cursor[T]) Reversed() bool { return c.step < 0 }

// Index returns the element index in view order.
func (c Cursor[T]) Index() int { return c.pos }

// Value returns a copy of the element under the cursor.
// Precondition: Valid(). Reading past either end panics.
func (c Cursor[T]) Value() T { return c.view[c.pos] }

// Ref returns a pointer to the element under the cursor; writes through it
// are visible to the owning container until the next reallocation.
// Precondition: Valid().
func (c Cursor[T]) Ref() *T { return &c.view[c.pos] }

// Next moves one step in the cursor's direction.
func (c Cursor[T]) Next() Cursor[T] { return c.Advance(1) }

// Prev moves one step against the cursor's direction.
func (c Cursor[T]) Prev() Cursor[T] { return c.Advance(-1) }

// Advance moves n steps in the cursor's direction (n may be negative).
// No bounds check is made; the result may be outside [begin, end].
func (c Cursor[T]) Advance(n int) Cursor[T] {
	c.pos += n * c.step

	return c
}

// Reverse returns a cursor at the same element walking the other way.
func (c Cursor[T]) Reverse() Cursor[T] {
	c.step = -c.step

	return c
}

// Equal reports whether c and o walk the same view in the same direction
// and sit at the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.compatible(o) && c.pos == o.pos
}

// Distance returns the number of steps from c to o.
// Returns ErrCursorMismatch if the cursors cannot be paired.
// Complexity: O(1).
func (c Cursor[T]) Distance(o Cursor[T]) (int, error) {
	if !c.compatible(o) {
		return 0, ErrCursorMismatch
	}

	return (o.pos - c.pos) * c.step, nil
}

// compatible reports same view identity and same direction.
func (c Cursor[T]) compatible(o Cursor[T]) bool {
	return c.step == o.step && sameView(c.view, o.view)
}

// sameView compares slice identity (base address and length), not contents.
func sameView[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	return &a[0] == &b[0]
}

// Collect copies the elements of [first, last) into a new slice, in the
// cursors' walking order.
//
// Errors:
//   - ErrCursorMismatch when first and last cannot be paired.
//   - ErrInvalidRange when last precedes first.
//
// Complexity: O(k) time and memory for k elements.
func Collect[T any](first, last Cursor[T]) ([]T, error) {
	n, err := first.Distance(last)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrInvalidRange
	}

	out := make([]T, 0, n)
	for c := first; !c.Equal(last); c = c.Next() {
		out = append(out, c.Value())
	}

	return out, nil
}
