package replay_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/replay"
)

func TestLoad(t *testing.T) {
	s, err := replay.Load(strings.NewReader(`
name: small
initial: [3, 4]
ops:
  - {op: push, value: 5}
  - {op: insert, pos: 0, value: 2}
  - {op: erase_range, first: 1, last: 2}
`))
	require.NoError(t, err)
	require.Equal(t, "small", s.Name)
	require.Equal(t, []int{3, 4}, s.Initial)
	require.Equal(t, []replay.Op{
		{Op: replay.OpPush, Value: 5},
		{Op: replay.OpInsert, Pos: 0, Value: 2},
		{Op: replay.OpEraseRange, First: 1, Last: 2},
	}, s.Ops)
}

func TestLoadFile(t *testing.T) {
	s, err := replay.LoadFile("testdata/growth.yaml")
	require.NoError(t, err)
	require.Len(t, s.Ops, 8)

	_, err = replay.LoadFile("testdata/missing.yaml")
	require.Error(t, err)
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", replay.ErrEmptyScript},
		{"no ops", "name: x\nops: []\n", replay.ErrEmptyScript},
		{"unknown op", "ops:\n  - {op: sort}\n", replay.ErrUnknownOp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := replay.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadUnknownFieldIsDecodeError(t *testing.T) {
	_, err := replay.Load(strings.NewReader("ops:\n  - {op: push, valu: 1}\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode script")
}
