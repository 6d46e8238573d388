package dynarray

// relocate moves the live elements into a fresh buffer of newCap slots,
// leaving a gap of gapLen zero slots at gapAt:
//
//	old: [0, gapAt) [gapAt, size)
//	new: [0, gapAt) <gapLen>  [gapAt+gapLen, size+gapLen)
//
// The new buffer is fully populated before it replaces the old one. size is
// not changed; callers fill the gap and then adjust size.
// Precondition: 0 <= gapAt <= size, newCap >= size+gapLen.
// Complexity: O(newCap).
func (v *Vector[T]) relocate(newCap int, reason Reason, gapAt, gapLen int) {
	oldCap := len(v.buf)

	var next []T
	if newCap > 0 {
		next = make([]T, newCap)
	}
	copy(next, v.buf[:gapAt])
	copy(next[gapAt+gapLen:], v.buf[gapAt:v.size])

	v.buf = next // old buffer is unreachable from here on
	v.reallocs++
	v.copied += v.size

	if v.onRealloc != nil {
		v.onRealloc(ReallocEvent{
			Reason:      reason,
			OldCapacity: oldCap,
			NewCapacity: newCap,
			Size:        v.size + gapLen,
			Copied:      v.size,
		})
	}
}

// doubled is the single-step growth rule: 2c, or 1 from an empty buffer.
func doubled(c int) int {
	if c == 0 {
		return 1
	}

	return 2 * c
}

// Reserve grows the capacity to exactly n. When n <= Cap() it does nothing.
// Len() is unchanged.
// Complexity: O(n) when it reallocates, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	v.relocate(n, ReasonReserve, v.size, 0)
}

// ShrinkToFit reallocates so that Cap() == Len(). When they are already
// equal it does nothing. Shrinking an empty vector releases the buffer.
// Complexity: O(Len()).
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.size {
		return
	}
	v.relocate(v.size, ReasonShrink, v.size, 0)
}
