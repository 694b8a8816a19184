// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Never duplicate kernel logic: every facade delegates to a canonical method.

package sparse

// Zeros returns an empty rows×cols matrix. Alias of New.
func Zeros(rows, cols int) (*Matrix, error) { return New(rows, cols) }

// Identity returns I_n (ones on the diagonal).
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, opErrorf(opIdentity, err)
	}
	m := &Matrix{r: n, c: n}
	for i := 0; i < n; i++ {
		m.store(i, i, 1)
	}

	return m, nil
}

// ZerosLike returns an empty matrix with the shape of m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opNew, err)
	}

	return New(m.r, m.c)
}

// Sum is an alias for a.Add(b).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff(a, b *Matrix) (*Matrix, error) { return a.Sub(b) }

// Product is an alias for a.Mul(b).
func Product(a, b *Matrix) (*Matrix, error) { return a.Mul(b) }

// T is an alias for m.Transpose().
func T(m *Matrix) (*Matrix, error) { return m.Transpose() }
