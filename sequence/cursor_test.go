package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/sequence"
)

func TestForwardWalk(t *testing.T) {
	view := []int{10, 20, 30, 40}
	var got []int
	for c := sequence.Begin(view); !c.Equal(sequence.End(view)); c = c.Next() {
		got = append(got, c.Value())
	}
	require.Equal(t, view, got)
}

func TestReverseWalk(t *testing.T) {
	view := []int{1, 2, 3, 4, 5}
	var got []int
	for c := sequence.RBegin(view); !c.Equal(sequence.REnd(view)); c = c.Next() {
		got = append(got, c.Value())
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)
	require.Equal(t, 4, sequence.RBegin(view).Index())
	require.True(t, sequence.RBegin(view).Reversed())
}

func TestEmptyViewEndpoints(t *testing.T) {
	var view []int
	require.True(t, sequence.Begin(view).Equal(sequence.End(view)))
	require.True(t, sequence.RBegin(view).Equal(sequence.REnd(view)))
	require.False(t, sequence.Begin(view).Valid())
}

func TestCursorMoves(t *testing.T) {
	view := []string{"a", "b", "c", "d"}
	c := sequence.Begin(view).Advance(2)
	require.Equal(t, "c", c.Value())
	require.Equal(t, "b", c.Prev().Value())
	require.Equal(t, "d", c.Next().Value())

	r := c.Reverse()
	require.Equal(t, "c", r.Value())
	require.Equal(t, "b", r.Next().Value(), "reverse cursor steps toward the front")

	// writes through Ref land in the view
	*c.Ref() = "C"
	require.Equal(t, "C", view[2])
}

func TestDistance(t *testing.T) {
	view := []int{1, 2, 3, 4, 5}
	d, err := sequence.Begin(view).Distance(sequence.End(view))
	require.NoError(t, err)
	require.Equal(t, 5, d)

	d, err = sequence.RBegin(view).Distance(sequence.REnd(view))
	require.NoError(t, err)
	require.Equal(t, 5, d)

	_, err = sequence.Begin(view).Distance(sequence.REnd(view))
	require.ErrorIs(t, err, sequence.ErrCursorMismatch)

	other := []int{1, 2, 3, 4, 5}
	_, err = sequence.Begin(view).Distance(sequence.End(other))
	require.ErrorIs(t, err, sequence.ErrCursorMismatch, "equal contents, different buffers")
}

func TestCollect(t *testing.T) {
	view := []int{7, 14, 21, 28, 35}

	got, err := sequence.Collect(sequence.Begin(view).Advance(1), sequence.Begin(view).Advance(4))
	require.NoError(t, err)
	require.Equal(t, []int{14, 21, 28}, got)

	got, err = sequence.Collect(sequence.RBegin(view), sequence.REnd(view))
	require.NoError(t, err)
	require.Equal(t, []int{35, 28, 21, 14, 7}, got)

	_, err = sequence.Collect(sequence.End(view), sequence.Begin(view))
	require.ErrorIs(t, err, sequence.ErrInvalidRange)

	// the copy is independent of the view
	got, err = sequence.Collect(sequence.Begin(view), sequence.End(view))
	require.NoError(t, err)
	got[0] = -1
	require.Equal(t, 7, view[0])
}
