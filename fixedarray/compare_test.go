package fixedarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/fixedarray"
)

func TestRelationalOperators(t *testing.T) {
	arr1 := fixedarray.Of(1, 2, 3)
	arr2 := fixedarray.Of(1, 2, 3)
	arr3 := fixedarray.Of(1, 2, 4)
	arr4 := fixedarray.Of(2, 3, 4)

	require.True(t, fixedarray.Equal(arr1, arr2))
	require.False(t, !fixedarray.Equal(arr1, arr2))

	require.True(t, fixedarray.Less(arr1, arr3))
	require.True(t, fixedarray.LessOrEqual(arr1, arr3))
	require.False(t, fixedarray.Greater(arr1, arr3))
	require.False(t, fixedarray.GreaterOrEqual(arr1, arr3))

	require.True(t, fixedarray.Greater(arr4, arr3))
	require.True(t, fixedarray.GreaterOrEqual(arr4, arr3))
	require.False(t, fixedarray.Less(arr4, arr3))
	require.False(t, fixedarray.LessOrEqual(arr4, arr3))
}

// TestEqualArraysNeitherLessNorGreater: equal arrays satisfy only the
// non-strict queries.
func TestEqualArraysNeitherLessNorGreater(t *testing.T) {
	a := fixedarray.Of("a", "b")
	b := fixedarray.Of("a", "b")
	require.Equal(t, 0, fixedarray.Compare(a, b))
	require.False(t, fixedarray.Less(a, b))
	require.False(t, fixedarray.Greater(a, b))
	require.True(t, fixedarray.LessOrEqual(a, b))
	require.True(t, fixedarray.GreaterOrEqual(a, b))
}

func TestEqualRequiresSameLength(t *testing.T) {
	require.False(t, fixedarray.Equal(fixedarray.Of(1, 2), fixedarray.Of(1, 2, 0)))
}

func TestCompareFunc(t *testing.T) {
	abs := func(x, y int) int {
		ax, ay := int(math.Abs(float64(x))), int(math.Abs(float64(y)))
		return ax - ay
	}
	require.Equal(t, 0, fixedarray.CompareFunc(fixedarray.Of(-1, 2), fixedarray.Of(1, -2), abs))
	require.Equal(t, -1, fixedarray.CompareFunc(fixedarray.Of(-1, 2), fixedarray.Of(1, -3), abs))
	require.True(t, fixedarray.EqualFunc(fixedarray.Of(-1, 2), fixedarray.Of(1, -2),
		func(x, y int) bool { return abs(x, y) == 0 }))
}
