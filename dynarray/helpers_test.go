package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/dynarray"
)

// requireInvariant checks 0 <= Len <= Cap, that iteration reaches exactly
// Len elements, and that the spare slots hold zero values.
func requireInvariant[T comparable](t *testing.T, v *dynarray.Vector[T]) {
	t.Helper()
	require.GreaterOrEqual(t, v.Len(), 0)
	require.LessOrEqual(t, v.Len(), v.Cap())

	n := 0
	for range v.Values() {
		n++
	}
	require.Equal(t, v.Len(), n, "Len must equal the number of iterated elements")

	var zero T
	for i, s := range dynarray.SpareSlots(v) {
		require.Equal(t, zero, s, "spare slot %d not cleared", v.Len()+i)
	}
}

// requireElems asserts the live elements and the invariant together.
func requireElems[T comparable](t *testing.T, v *dynarray.Vector[T], want ...T) {
	t.Helper()
	requireInvariant(t, v)
	if len(want) == 0 {
		require.Empty(t, v.Data())
		return
	}
	require.Equal(t, want, v.Data())
}
