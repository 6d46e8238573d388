package fixedarray

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvseq/sequence"
)

// Equal reports whether a and b have the same length and pairwise-equal elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return sequence.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	return sequence.EqualFunc(a.data, b.data, eq)
}

// Compare compares a and b lexicographically in index order: -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Array[T]) int {
	return sequence.Compare(a.data, b.data)
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Array[T], cmp func(x, y T) int) int {
	return sequence.CompareFunc(a.data, b.data, cmp)
}

// Less reports a < b.
func Less[T constraints.Ordered](a, b *Array[T]) bool {
	return sequence.Order(Compare(a, b)).IsLess()
}

// LessOrEqual reports a <= b.
func LessOrEqual[T constraints.Ordered](a, b *Array[T]) bool {
	return sequence.Order(Compare(a, b)).IsLessOrEqual()
}

// Greater reports a > b.
func Greater[T constraints.Ordered](a, b *Array[T]) bool {
	return sequence.Order(Compare(a, b)).IsGreater()
}

// GreaterOrEqual reports a >= b.
func GreaterOrEqual[T constraints.Ordered](a, b *Array[T]) bool {
	return sequence.Order(Compare(a, b)).IsGreaterOrEqual()
}
