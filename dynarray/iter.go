package dynarray

import (
	"iter"

	"github.com/katalvlaran/lvseq/sequence"
)

// All yields (index, value) pairs front to back over the live elements.
// Mutating the vector while ranging is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the live elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Begin returns a forward cursor at the first live element.
func (v *Vector[T]) Begin() sequence.Cursor[T] { return sequence.Begin(v.Data()) }

// End returns the forward past-the-end cursor.
func (v *Vector[T]) End() sequence.Cursor[T] { return sequence.End(v.Data()) }

// RBegin returns a reverse cursor at the last live element.
func (v *Vector[T]) RBegin() sequence.Cursor[T] { return sequence.RBegin(v.Data()) }

// REnd returns the reverse past-the-end cursor.
func (v *Vector[T]) REnd() sequence.Cursor[T] { return sequence.REnd(v.Data()) }
