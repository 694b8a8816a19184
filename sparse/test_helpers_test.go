// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures for kernels and accessors.
//   • Keep boilerplate (error checks on construction) out of test bodies.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// MustNew allocates an empty r×c matrix or fails the test.
func MustNew(t testing.TB, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustFromEntries builds an r×c matrix from triples or fails the test.
func MustFromEntries(t testing.TB, r, c int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEntries(r, c, entries)
	require.NoError(t, err, "FromEntries(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *sparse.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// E is a compact Entry literal for tables.
func E(r, c int, v int64) sparse.Entry { return sparse.Entry{Row: r, Col: c, Value: v} }

// RandomSparse fills an r×c matrix with about density*r*c values in [-9,9]
// using a fixed seed, so every run sees the same matrix.
func RandomSparse(t testing.TB, r, c int, density float64, seed int64) *sparse.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(t, r, c)
	n := int(density * float64(r*c))
	for k := 0; k < n; k++ {
		v := int64(rng.Intn(19) - 9)
		require.NoError(t, m.Set(rng.Intn(r), rng.Intn(c), v))
	}

	return m
}

// denseProduct is a naive O(r·n·c) reference used to cross-check Mul.
func denseProduct(t testing.TB, a, b *sparse.Matrix) [][]int64 {
	t.Helper()
	out := make([][]int64, a.Rows())
	for i := range out {
		out[i] = make([]int64, b.Cols())
		for j := 0; j < b.Cols(); j++ {
			var s int64
			for k := 0; k < a.Cols(); k++ {
				s += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			out[i][j] = s
		}
	}

	return out
}
