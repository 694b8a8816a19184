// SPDX-License-Identifier: MIT
// Package sparse provides the arithmetic kernels over Matrix:
// element-wise addition and subtraction, sparse multiplication and transpose.
// All kernels validate fail-fast, never mutate operands and return a fresh
// result or an error, never both.
//
// Notes:
//   - Stored indices are in bounds by construction; kernels still route every
//     write through ValidateIndex so a broken invariant surfaces as ErrOutOfRange.
//   - Arithmetic is checked: leaving the int64 range yields ErrOverflow.

package sparse

import (
	"fmt"
	"maps"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opFromEntries = "FromEntries"
	opFromSeq     = "FromSeq"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opIdentity    = "Identity"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// combineFn merges two values and reports whether the result fits in int64.
type combineFn func(x, y int64) (int64, bool)

// addChecked returns x+y; ok is false on overflow
// (both operands share a sign and the sum does not).
func addChecked(x, y int64) (int64, bool) {
	s := x + y
	if (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, false
	}

	return s, true
}

// subChecked returns x-y; ok is false on overflow
// (operands differ in sign and the difference takes y's sign).
func subChecked(x, y int64) (int64, bool) {
	d := x - y
	if (x >= 0) != (y >= 0) && (d >= 0) != (x >= 0) {
		return 0, false
	}

	return d, true
}

// mulChecked returns x*y; ok is false on overflow.
func mulChecked(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}

	return p, true
}

// elementwise computes out(i,j) = combine(a(i,j), b(i,j)) over the union of
// stored positions. Positions stored only in a are copied; positions in b are
// combined against a's value (0 if absent). Zero results are dropped.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Clone a (deep) so the operands stay untouched.
//   - Stage 3: Fold every stored element of b into the clone with combine.
//
// Complexity: O(nnz(a) + nnz(b)).
func elementwise(a, b *Matrix, combine combineFn, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res := a.Clone()
	var (
		i, j   int
		bv, v  int64
		ok     bool
		bRow   rowMap
		errIdx error
	)
	for i, bRow = range b.data {
		for j, bv = range bRow {
			if errIdx = ValidateIndex(res, i, j); errIdx != nil {
				return nil, opErrorf(opTag, indexErrorf(ctxSet, i, j, errIdx))
			}
			if v, ok = combine(res.data[i][j], bv); !ok {
				return nil, opErrorf(opTag, indexErrorf(ctxSet, i, j, ErrOverflow))
			}
			res.store(i, j, v)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil receiver or argument), ErrDimensionMismatch (shape mismatch),
//     ErrOverflow (a sum leaves the int64 range).
//
// Complexity: O(nnz(A) + nnz(B)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return elementwise(m, other, addChecked, opAdd)
}

// Sub computes the element-wise difference C = A − B.
// Same contract as Add.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return elementwise(m, other, subChecked, opSub)
}

// Mul computes the matrix product C = A × B with C of shape A.Rows()×B.Cols().
//
// Implementation:
//   - Stage 1: ValidateBinaryMulShape (A.Cols() must equal B.Rows()).
//   - Stage 2: For each non-empty row i of A, walk its elements (i,k) and, for
//     each, every stored (k,j) of row k of B, accumulating A(i,k)*B(k,j) into a
//     per-row accumulator.
//   - Stage 3: Reject cells whose exact sum leaves int64, drop cancelled
//     (zero) sums and attach the accumulator as row i.
//
// Partial sums wrap modulo 2⁶⁴ and every wrap is counted per cell (+1 upward,
// -1 downward). The wrapped sum is exact when the net count is zero, so the
// outcome does not depend on the order in which terms are added.
//
// Only nonzero pairs sharing the inner index are ever multiplied, so the cost
// is O(Σ_i Σ_{k∈row i of A} nnz(row k of B)) instead of O(r·n·c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (a single product, or
//     the exact sum of a cell, leaves the int64 range).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	a, b := m, other
	if err := ValidateBinaryMulShape(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res := &Matrix{r: a.r, c: b.c}
	var (
		p, s, prev int64
		ok         bool
	)
	for i, aRow := range a.data {
		acc := make(rowMap)
		var wraps map[int]int // net wrap count per column, allocated on first wrap
		for k, av := range aRow {
			if k < 0 || k >= b.r {
				return nil, opErrorf(opMul, indexErrorf(ctxAt, k, 0, ErrOutOfRange))
			}
			for j, bv := range b.data[k] {
				if j < 0 || j >= res.c {
					return nil, opErrorf(opMul, indexErrorf(ctxSet, i, j, ErrOutOfRange))
				}
				if p, ok = mulChecked(av, bv); !ok {
					return nil, opErrorf(opMul, indexErrorf(ctxSet, i, j, ErrOverflow))
				}
				prev = acc[j]
				s = prev + p
				switch {
				case p > 0 && s < prev:
					if wraps == nil {
						wraps = make(map[int]int)
					}
					wraps[j]++
				case p < 0 && s > prev:
					if wraps == nil {
						wraps = make(map[int]int)
					}
					wraps[j]--
				}
				acc[j] = s
			}
		}
		for j, w := range wraps {
			if w != 0 {
				return nil, opErrorf(opMul, indexErrorf(ctxSet, i, j, ErrOverflow))
			}
		}
		// Drop positions whose contributions cancelled out.
		maps.DeleteFunc(acc, func(_ int, v int64) bool { return v == 0 })
		if len(acc) > 0 {
			if res.data == nil {
				res.data = make(map[int]rowMap)
			}
			res.data[i] = acc
		}
	}

	return res, nil
}

// Transpose returns Aᵀ (shape Cols()×Rows()).
//
// Implementation:
//   - Build the column-indexed view of A (col -> row -> value) in one pass over
//     the stored elements; that view is exactly the row storage of Aᵀ.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange if a stored column violates the shape.
//
// Complexity: O(nnz).
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	var cols map[int]rowMap
	for i, rm := range m.data {
		for j, v := range rm {
			if j < 0 || j >= m.c {
				return nil, opErrorf(opTranspose, indexErrorf(ctxAt, i, j, ErrOutOfRange))
			}
			if cols == nil {
				cols = make(map[int]rowMap)
			}
			if cols[j] == nil {
				cols[j] = make(rowMap)
			}
			cols[j][i] = v
		}
	}

	return &Matrix{r: m.c, c: m.r, data: cols}, nil
}
