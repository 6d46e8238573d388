package dynarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/dynarray"
)

func TestForwardIteration(t *testing.T) {
	v := dynarray.Of(1, 2, 3, 4)
	var got []int
	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
		got = append(got, c.Value())
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)

	idx := []int{}
	for i, x := range v.All() {
		idx = append(idx, i)
		require.Equal(t, v.Get(i), x)
	}
	require.Equal(t, []int{0, 1, 2, 3}, idx)
}

func TestReverseIteration(t *testing.T) {
	v := dynarray.Of(1, 2, 3, 4)
	var got []int
	for c := v.RBegin(); !c.Equal(v.REnd()); c = c.Next() {
		got = append(got, c.Value())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	got = got[:0]
	for _, x := range v.Backward() {
		got = append(got, x)
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)
}

// TestIterationStopsAtLen: spare capacity is never visited.
func TestIterationStopsAtLen(t *testing.T) {
	v := dynarray.New[int](dynarray.WithCapacity(16))
	v.PushBack(7)
	n := 0
	for range v.Values() {
		n++
	}
	require.Equal(t, 1, n)

	d, err := v.Begin().Distance(v.End())
	require.NoError(t, err)
	require.Equal(t, v.Len(), d)
}

func TestEarlyBreak(t *testing.T) {
	v := dynarray.Of(1, 2, 3, 4, 5)
	sum := 0
	for x := range v.Values() {
		if x > 3 {
			break
		}
		sum += x
	}
	require.Equal(t, 6, sum)
}

func TestCursorRefWritesThrough(t *testing.T) {
	v := dynarray.Of(1, 2, 3)
	*v.Begin().Next().Ref() = 20
	*v.Ref(2) = 30
	requireElems(t, v, 1, 20, 30)
}
