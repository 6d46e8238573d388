package dynarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvseq/sequence"
)

// Vector is a growable contiguous sequence of T.
//
//   - buf is the owned buffer; len(buf) is the capacity.
//   - size counts the live elements buf[:size].
//   - buf[size:] holds zero values only.
//
// The zero Vector is empty with zero capacity and ready to use.
type Vector[T any] struct {
	buf  []T
	size int

	onRealloc func(ReallocEvent)

	// counters reported by Metrics
	reallocs int
	copied   int
}

var _ fmt.Stringer = (*Vector[int])(nil)

// New returns an empty vector. Its capacity is 0 unless WithCapacity is given.
// Complexity: O(capacity).
func New[T any](opts ...Option) *Vector[T] {
	o := gatherOptions(opts)

	return newWithCapacity[T](o, 0)
}

// NewFilled returns a vector of n copies of v with capacity 2n.
// Returns ErrNegativeLength when n < 0.
// Complexity: O(n).
func NewFilled[T any](n int, v T, opts ...Option) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(ctxNewFilled, n, ErrNegativeLength)
	}
	o := gatherOptions(opts)
	vec := newWithCapacity[T](o, 2*n)
	for i := 0; i < n; i++ {
		vec.buf[i] = v
	}
	vec.size = n

	return vec, nil
}

// Of returns a vector holding values in order, with capacity 2*len(values).
// The values are copied.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of s, with capacity 2*len(s).
func FromSlice[T any](s []T, opts ...Option) *Vector[T] {
	o := gatherOptions(opts)
	vec := newWithCapacity[T](o, 2*len(s))
	vec.size = copy(vec.buf, s)

	return vec
}

// FromCursors returns a vector holding the elements of [first, last),
// with capacity 2*distance(first, last).
//
// Errors:
//   - sequence.ErrCursorMismatch when the cursors cannot be paired.
//   - sequence.ErrInvalidRange when last precedes first.
func FromCursors[T any](first, last sequence.Cursor[T], opts ...Option) (*Vector[T], error) {
	values, err := sequence.Collect(first, last)
	if err != nil {
		return nil, vectorErrorf(ctxFromCursors, first.Index(), err)
	}

	return FromSlice(values, opts...), nil
}

// FromSeq drains seq into a new vector with capacity 2*count.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Vector[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}

	return FromSlice(values, opts...)
}

// newWithCapacity allocates max(policy, o.capacity) slots.
func newWithCapacity[T any](o options, policy int) *Vector[T] {
	c := max(policy, o.capacity)
	vec := &Vector[T]{onRealloc: o.onRealloc}
	if c > 0 {
		vec.buf = make([]T, c)
	}

	return vec
}

// Clone returns a deep copy with the same size and capacity in a fresh
// buffer. The realloc hook is carried over; metrics start from zero.
// Complexity: O(capacity).
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{onRealloc: v.onRealloc, size: v.size}
	if len(v.buf) > 0 {
		out.buf = make([]T, len(v.buf))
		copy(out.buf, v.buf[:v.size])
	}

	return out
}

// Assign replaces the contents of v with a copy of src: same size, same
// capacity, fresh buffer. Self-assignment is a no-op. v keeps its hook.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	var buf []T
	if len(src.buf) > 0 {
		buf = make([]T, len(src.buf))
		copy(buf, src.buf[:src.size])
	}
	v.buf, v.size = buf, src.size
}

// Move transfers the buffer of v into a new Vector and resets v to the
// empty, zero-capacity state. Hook and metrics travel with the buffer.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		buf:       v.buf,
		size:      v.size,
		onRealloc: v.onRealloc,
		reallocs:  v.reallocs,
		copied:    v.copied,
	}
	v.reset()

	return out
}

// MoveAssign drops the buffer of v, takes the buffer of src and resets src
// to the empty, zero-capacity state. Self-assignment is a no-op.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf, v.size = src.buf, src.size
	src.buf, src.size = nil, 0
}

// reset drops everything, including counters.
func (v *Vector[T]) reset() {
	v.buf = nil
	v.size = 0
	v.reallocs = 0
	v.copied = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// IsEmpty reports Len() == 0.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at i. No error path: an index outside
// [0, Len()) panics, same as slice indexing.
func (v *Vector[T]) Get(i int) T { return v.buf[:v.size][i] }

// Set assigns x at i. Same contract as Get.
func (v *Vector[T]) Set(i int, x T) { v.buf[:v.size][i] = x }

// Ref returns a pointer to the element at i, valid until the next
// reallocation or shift. Same contract as Get.
func (v *Vector[T]) Ref(i int) *T { return &v.buf[:v.size][i] }

// At returns the element at i, or ErrOutOfRange when i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.buf[i], nil
}

// SetAt assigns x at i, or returns ErrOutOfRange when i is outside [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return vectorErrorf(ctxSetAt, i, ErrOutOfRange)
	}
	v.buf[i] = x

	return nil
}

// Front returns a copy of the first element. Precondition: !IsEmpty().
//
// Front and Back return values, not references; use Ref(0) or
// Ref(Len()-1) to write in place.
func (v *Vector[T]) Front() T { return v.buf[:v.size][0] }

// Back returns a copy of the last element. Precondition: !IsEmpty().
func (v *Vector[T]) Back() T { return v.buf[:v.size][v.size-1] }

// Data returns the live elements. The view shares the buffer and cannot be
// appended into the spare capacity.
func (v *Vector[T]) Data() []T { return v.buf[:v.size:v.size] }

// String formats the live elements as [e0 e1 ...].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.buf[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
