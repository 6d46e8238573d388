package sequence

import "golang.org/x/exp/constraints"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	OrderLess    Ordering = -1 // left orders before right
	OrderEqual   Ordering = 0  // equivalent
	OrderGreater Ordering = 1  // left orders after right
)

// Order normalizes any integer three-way result (negative, zero, positive)
// into an Ordering.
func Order(c int) Ordering {
	switch {
	case c < 0:
		return OrderLess
	case c > 0:
		return OrderGreater
	default:
		return OrderEqual
	}
}

// IsLess reports o == OrderLess.
func (o Ordering) IsLess() bool { return o == OrderLess }

// IsLessOrEqual reports o != OrderGreater.
func (o Ordering) IsLessOrEqual() bool { return o != OrderGreater }

// IsGreater reports o == OrderGreater.
func (o Ordering) IsGreater() bool { return o == OrderGreater }

// IsGreaterOrEqual reports o != OrderLess.
func (o Ordering) IsGreaterOrEqual() bool { return o != OrderLess }

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderGreater:
		return "greater"
	default:
		return "equal"
	}
}

// Compare lexicographically compares a and b using the < operator of T.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// A strict prefix orders before the longer run.
// Time Complexity: O(min(len(a), len(b))).
func Compare[T constraints.Ordered](a, b []T) int {
	return CompareFunc(a, b, compareOrdered[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
// cmp must return a negative number, zero, or a positive number.
func CompareFunc[T any](a, b []T, cmp func(x, y T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return int(Order(c)) // first differing element decides
		}
	}

	// common prefix equal: the shorter run orders first
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b have equal length and pairwise-equal elements.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// compareOrdered mirrors the < based rule: x and y are equivalent when
// neither is less than the other (NaN therefore compares equal to anything).
func compareOrdered[T constraints.Ordered](x, y T) int {
	if x < y {
		return -1
	}
	if y < x {
		return 1
	}

	return 0
}
