package fixedarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvseq/sequence"
)

const (
	ctxAt    = "At"
	ctxSetAt = "SetAt"
)

// Array is a fixed-length contiguous buffer of T.
// len(data) is N for the whole lifetime of the value.
type Array[T any] struct {
	data []T
}

var _ fmt.Stringer = (*Array[int])(nil)

// New returns an Array of n zero-valued elements.
// Returns ErrNegativeLength when n < 0.
// Complexity: O(n).
func New[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return &Array[T]{data: make([]T, n)}, nil
}

// NewFilled returns an Array of n elements, each set to v.
func NewFilled[T any](n int, v T) (*Array[T], error) {
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	a.Fill(v)

	return a, nil
}

// FromValues returns an Array of length n holding values in order; slots
// past len(values) keep the zero value.
//
// A list longer than n is rejected with ErrTooManyValues rather than
// truncated.
func FromValues[T any](n int, values ...T) (*Array[T], error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if len(values) > n {
		return nil, fmt.Errorf("FromValues: %d values for length %d: %w", len(values), n, ErrTooManyValues)
	}
	a := &Array[T]{data: make([]T, n)}
	copy(a.data, values)

	return a, nil
}

// Of returns an Array whose length is len(values). The values are copied.
func Of[T any](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Array[T]{data: data}
}

// Len returns N.
func (a *Array[T]) Len() int { return len(a.data) }

// IsEmpty reports N == 0.
func (a *Array[T]) IsEmpty() bool { return len(a.data) == 0 }

// Get returns the element at i without a bounds check of its own.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set assigns v at i without a bounds check of its own.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Ref returns a pointer to the element at i (unchecked).
func (a *Array[T]) Ref(i int) *T { return &a.data[i] }

// At returns the element at i, or ErrOutOfRange when i is outside [0, N).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, arrayErrorf(ctxAt, i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// SetAt assigns v at i, or returns ErrOutOfRange when i is outside [0, N).
func (a *Array[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return arrayErrorf(ctxSetAt, i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Front returns a pointer to element 0. Precondition: N > 0.
func (a *Array[T]) Front() *T { return &a.data[0] }

// Back returns a pointer to element N-1. Precondition: N > 0.
func (a *Array[T]) Back() *T { return &a.data[len(a.data)-1] }

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Swap exchanges contents with other element by element.
// Returns ErrLengthMismatch when the lengths differ; neither array is
// touched in that case.
// Complexity: O(N).
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return fmt.Errorf("Swap: %d vs %d: %w", len(a.data), len(other.data), ErrLengthMismatch)
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}

	return nil
}

// Clone returns an independent copy.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return &Array[T]{data: data}
}

// Data returns the backing buffer. Writes through it mutate the array.
func (a *Array[T]) Data() []T { return a.data }

// All yields (index, value) pairs front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Values yields elements front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Begin returns a forward cursor at element 0.
func (a *Array[T]) Begin() sequence.Cursor[T] { return sequence.Begin(a.data) }

// End returns the forward past-the-end cursor.
func (a *Array[T]) End() sequence.Cursor[T] { return sequence.End(a.data) }

// RBegin returns a reverse cursor at element N-1.
func (a *Array[T]) RBegin() sequence.Cursor[T] { return sequence.RBegin(a.data) }

// REnd returns the reverse past-the-end cursor.
func (a *Array[T]) REnd() sequence.Cursor[T] { return sequence.REnd(a.data) }

// String formats the array as [e0 e1 ...].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
