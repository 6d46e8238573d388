package dynarray

import (
	"github.com/katalvlaran/lvseq/sequence"
)

// Clear drops every live element; Cap() is unchanged.
// Complexity: O(Len()) to zero the vacated slots.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Resize sets Len() to n, zero-filling new slots. See ResizeWith.
func (v *Vector[T]) Resize(n int) error {
	var zero T

	return v.ResizeWith(n, zero)
}

// ResizeWith sets Len() to n.
//
// Implementation:
//   - n == Len(): nothing.
//   - n < Len(): drop [n, Len()); capacity unchanged.
//   - Len() < n <= Cap(): fill [Len(), n) with fill in place.
//   - n > Cap(): reallocate to capacity 2n, then fill [Len(), n).
//
// Errors:
//   - ErrNegativeLength when n < 0.
//
// Complexity: O(|n-Len()|) in place, O(n) when reallocating.
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	switch {
	case n < 0:
		return vectorErrorf(ctxResize, n, ErrNegativeLength)
	case n == v.size:
		return nil
	case n < v.size:
		clear(v.buf[n:v.size])
		v.size = n

		return nil
	case n > len(v.buf):
		v.relocate(2*n, ReasonResize, v.size, 0)
	}
	for i := v.size; i < n; i++ {
		v.buf[i] = fill
	}
	v.size = n

	return nil
}

// Insert places x before position pos and returns pos, the index of the new
// element. pos == Len() appends.
//
// A full vector grows to twice its capacity (1 from 0) and the prefix,
// x and the suffix are written straight into the new buffer. Otherwise the
// suffix shifts right by one in place.
//
// Errors:
//   - ErrOutOfRange when pos is outside [0, Len()].
//
// Complexity: O(Len()-pos) amortized; O(Len()) when reallocating.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, vectorErrorf(ctxInsert, pos, ErrOutOfRange)
	}
	if v.size == len(v.buf) {
		v.relocate(doubled(len(v.buf)), ReasonInsert, pos, 1)
	} else {
		copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
	}
	v.buf[pos] = x
	v.size++

	return pos, nil
}

// InsertSlice places values, in order, before position pos and returns pos,
// the index of the first inserted element.
//
// When Len()+len(values) >= Cap() the vector reallocates to capacity
// 2*(Len()+len(values)); otherwise the suffix shifts right in place.
// An empty values list changes nothing. values must not alias the
// vector's own buffer; use InsertRange with cursors for that.
//
// Errors:
//   - ErrOutOfRange when pos is outside [0, Len()].
//
// Complexity: O(Len()+len(values)).
func (v *Vector[T]) InsertSlice(pos int, values ...T) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, vectorErrorf(ctxInsertSlice, pos, ErrOutOfRange)
	}
	count := len(values)
	if count == 0 {
		return pos, nil
	}
	if need := v.size + count; need >= len(v.buf) {
		v.relocate(2*need, ReasonInsertRange, pos, count)
	} else {
		copy(v.buf[pos+count:need], v.buf[pos:v.size])
	}
	copy(v.buf[pos:pos+count], values)
	v.size += count

	return pos, nil
}

// InsertRange inserts the elements of [first, last) before pos; see
// InsertSlice for the growth rule. The range is copied out first, so it may
// come from v itself.
func (v *Vector[T]) InsertRange(pos int, first, last sequence.Cursor[T]) (int, error) {
	values, err := sequence.Collect(first, last)
	if err != nil {
		return 0, vectorErrorf(ctxInsertRange, pos, err)
	}

	return v.InsertSlice(pos, values...)
}

// Erase removes the element at i, shifting the rest left by one. It returns
// i, which now indexes the following element, or equals Len() (end) when
// the last element was removed.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Len()).
//
// Complexity: O(Len()-i).
func (v *Vector[T]) Erase(i int) (int, error) {
	if i < 0 || i >= v.size {
		return 0, vectorErrorf(ctxErase, i, ErrOutOfRange)
	}
	copy(v.buf[i:], v.buf[i+1:v.size])
	v.size--
	var zero T
	v.buf[v.size] = zero

	return i, nil
}

// EraseRange removes [first, last), shifting the rest left by last-first,
// and returns first: the index of the element that followed the range, or
// Len() when the range reached the end. An empty range changes nothing.
//
// Errors:
//   - ErrOutOfRange when first < 0 or last > Len().
//   - ErrInvalidRange when first > last.
//
// Complexity: O(Len()-first).
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	switch {
	case first < 0 || last > v.size:
		return 0, rangeErrorf(ctxEraseRange, first, last, ErrOutOfRange)
	case first > last:
		return 0, rangeErrorf(ctxEraseRange, first, last, ErrInvalidRange)
	}
	n := last - first
	copy(v.buf[first:], v.buf[last:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n

	return first, nil
}

// PushBack appends x; identical to Insert(Len(), x).
func (v *Vector[T]) PushBack(x T) {
	_, _ = v.Insert(v.size, x) // pos == Len() is always valid
}

// PopBack removes and returns the last element.
// Returns ErrEmpty on an empty vector.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmpty
	}
	v.size--
	x := v.buf[v.size]
	v.buf[v.size] = zero

	return x, nil
}

// EmplaceBack writes x into the next free slot, first doubling the
// capacity (1 from 0) when the vector is full.
// Complexity: O(1) amortized.
func (v *Vector[T]) EmplaceBack(x T) {
	if v.size == len(v.buf) {
		v.relocate(doubled(len(v.buf)), ReasonEmplace, v.size, 0)
	}
	v.buf[v.size] = x
	v.size++
}

// Swap exchanges buffers and sizes with other in O(1). Hooks and metrics
// stay with their vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}
