// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

func TestNew_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"empty", 0, 0, nil},
		{"zero rows", 0, 5, nil},
		{"zero cols", 5, 0, nil},
		{"regular", 3, 4, nil},
		{"negative rows", -1, 4, sparse.ErrBadShape},
		{"negative cols", 3, -2, sparse.ErrBadShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.New(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Zero(t, m.NNZ())
		})
	}
}

func TestSetAt_RoundTrip(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 3, 3)

	require.NoError(t, m.Set(1, 2, -7))
	require.Equal(t, int64(-7), MustAt(t, m, 1, 2))
	require.Equal(t, 1, m.NNZ())

	// Overwrite keeps a single stored element.
	require.NoError(t, m.Set(1, 2, 4))
	require.Equal(t, int64(4), MustAt(t, m, 1, 2))
	require.Equal(t, 1, m.NNZ())

	// Zero deletes.
	require.NoError(t, m.Set(1, 2, 0))
	require.Equal(t, int64(0), MustAt(t, m, 1, 2))
	require.Zero(t, m.NNZ())
	require.Empty(t, m.Entries())

	// Deleting an absent element is a no-op.
	require.NoError(t, m.Set(0, 0, 0))
	require.Zero(t, m.NNZ())
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 2, 3)

	bad := [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {2, 3}}
	for _, ij := range bad {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, sparse.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
		err = m.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, sparse.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}
	// Last valid cell still works.
	require.NoError(t, m.Set(1, 2, 9))
	require.Equal(t, int64(9), MustAt(t, m, 1, 2))
}

func TestAtSet_ZeroSized(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 0, 0)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()
	var m *sparse.Matrix

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), sparse.ErrNilMatrix)
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())
	require.Zero(t, m.NNZ())
	require.Nil(t, m.Clone())
	require.Empty(t, m.Entries())
	require.Equal(t, "<nil>", m.String())
}

func TestFromEntries_LastWriteWinsAndZeroDeletes(t *testing.T) {
	t.Parallel()
	m := MustFromEntries(t, 2, 2,
		E(0, 0, 5),
		E(0, 0, 6), // overwrite
		E(1, 1, 3),
		E(1, 1, 0), // delete
		E(0, 1, 0), // delete of absent: no-op
	)
	require.Equal(t, int64(6), MustAt(t, m, 0, 0))
	require.Equal(t, int64(0), MustAt(t, m, 1, 1))
	require.Equal(t, 1, m.NNZ())
}

func TestFromEntries_OutOfRange(t *testing.T) {
	t.Parallel()
	m, err := sparse.FromEntries(2, 2, []sparse.Entry{E(0, 0, 1), E(2, 0, 1)})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.Nil(t, m, "no partial result on error")
	require.Contains(t, err.Error(), "entry 1")

	_, err = sparse.FromEntries(-1, 2, nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestFromSeq_StopsAtFirstError(t *testing.T) {
	t.Parallel()
	var pulled int
	seq := func(yield func(sparse.Entry) bool) {
		for _, e := range []sparse.Entry{E(0, 0, 1), E(0, 9, 1), E(1, 1, 1)} {
			pulled++
			if !yield(e) {
				return
			}
		}
	}
	_, err := sparse.FromSeq(2, 2, seq)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.Equal(t, 2, pulled)

	m, err := sparse.FromSeq(1, 1, nil)
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
}

func TestEntries_RowMajorSortedColumns(t *testing.T) {
	t.Parallel()
	m := MustFromEntries(t, 3, 4, E(2, 0, 1), E(0, 3, 2), E(0, 1, 3), E(2, 2, 4))
	require.Equal(t,
		[]sparse.Entry{E(0, 1, 3), E(0, 3, 2), E(2, 0, 1), E(2, 2, 4)},
		m.Entries())

	// Early break is honoured.
	var seen []sparse.Entry
	for e := range m.All() {
		seen = append(seen, e)
		if len(seen) == 2 {
			break
		}
	}
	require.Len(t, seen, 2)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()
	a := MustFromEntries(t, 2, 2, E(0, 0, 1), E(1, 0, 2))
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(0, 0, 99))
	require.Equal(t, int64(1), MustAt(t, a, 0, 0), "clone must not share row maps")
	require.False(t, a.Equal(b))
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := MustFromEntries(t, 2, 2, E(0, 1, 1))
	require.True(t, a.Equal(MustFromEntries(t, 2, 2, E(0, 1, 1))))
	require.False(t, a.Equal(MustFromEntries(t, 2, 3, E(0, 1, 1))), "shape differs")
	require.False(t, a.Equal(MustFromEntries(t, 2, 2, E(0, 1, 2))), "value differs")
	require.False(t, a.Equal(nil))

	// A row emptied by deletion equals a row never written.
	c := MustFromEntries(t, 2, 2, E(0, 1, 1), E(1, 1, 5))
	require.NoError(t, c.Set(1, 1, 0))
	require.True(t, a.Equal(c))

	var n1, n2 *sparse.Matrix
	require.True(t, n1.Equal(n2))
}

func TestString(t *testing.T) {
	t.Parallel()
	m := MustFromEntries(t, 3, 3, E(0, 2, 1), E(0, 0, -4), E(2, 1, 7))
	require.Equal(t, "[(0,0,-4), (0,2,1)]\n[(2,1,7)]\n", m.String())
}

func TestNew_HugeShapeIsCheap(t *testing.T) {
	t.Parallel()
	m, err := sparse.New(math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, m.Rows())
	require.Zero(t, m.NNZ())

	last := math.MaxInt - 1
	require.NoError(t, m.Set(last, last, 9))
	require.Equal(t, int64(9), MustAt(t, m, last, last))
	require.Equal(t, []sparse.Entry{E(last, last, 9)}, m.Entries())

	_, err = m.At(math.MaxInt, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	big, err := sparse.FromEntries(math.MaxInt, 1, []sparse.Entry{E(0, 0, 1)})
	require.NoError(t, err)
	require.Equal(t, 1, big.NNZ())
}

func TestDeleteEmptiesRow(t *testing.T) {
	t.Parallel()
	a := MustFromEntries(t, 2, 2, E(1, 1, 5))
	require.NoError(t, a.Set(1, 1, 0))
	require.True(t, a.Equal(MustNew(t, 2, 2)))
	require.Empty(t, a.String())
}

func TestIdentityAndZeros(t *testing.T) {
	t.Parallel()
	I, err := sparse.Identity(3)
	require.NoError(t, err)
	require.Equal(t, 3, I.NNZ())
	for i := 0; i < 3; i++ {
		require.Equal(t, int64(1), MustAt(t, I, i, i))
	}
	_, err = sparse.Identity(-1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	z, err := sparse.ZerosLike(I)
	require.NoError(t, err)
	require.Equal(t, 3, z.Rows())
	require.Zero(t, z.NNZ())
	_, err = sparse.ZerosLike(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
