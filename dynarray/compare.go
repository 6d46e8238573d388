package dynarray

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvseq/sequence"
)

// Equal reports whether a and b have the same Len() and pairwise-equal
// live elements. Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return sequence.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return sequence.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare compares the live elements of a and b lexicographically and
// returns -1, 0 or +1. A shorter vector whose elements are a prefix of the
// longer one orders first.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return sequence.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	return sequence.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less reports a < b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return sequence.Order(Compare(a, b)).IsLess()
}

// LessOrEqual reports a <= b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return sequence.Order(Compare(a, b)).IsLessOrEqual()
}

// Greater reports a > b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return sequence.Order(Compare(a, b)).IsGreater()
}

// GreaterOrEqual reports a >= b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return sequence.Order(Compare(a, b)).IsGreaterOrEqual()
}
