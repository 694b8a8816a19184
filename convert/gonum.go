// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// MaxDenseElements caps rows*cols for ToDense.
const MaxDenseElements = 1 << 28

var (
	// ErrEmptyShape is returned when a dense matrix would have a zero dimension,
	// which gonum does not allow.
	ErrEmptyShape = errors.New("convert: zero-length dimension")

	// ErrTooLarge is returned when a dense copy would exceed MaxDenseElements.
	ErrTooLarge = errors.New("convert: dense matrix too large")

	// ErrNotIntegral is returned when a dense element is not an integer
	// representable as int64.
	ErrNotIntegral = errors.New("convert: element is not an int64 value")
)

// ToDense copies m into a new *mat.Dense. Values above 2^53 in magnitude lose
// precision in the float64 representation.
func ToDense(m *sparse.Matrix) (*mat.Dense, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("ToDense: %dx%d: %w", m.Rows(), m.Cols(), ErrEmptyShape)
	}

	if m.Rows() > MaxDenseElements/m.Cols() {
		return nil, fmt.Errorf("ToDense: %dx%d: %w", m.Rows(), m.Cols(), ErrTooLarge)
	}

	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for e := range m.All() {
		d.Set(e.Row, e.Col, float64(e.Value))
	}
	return d, nil
}

// FromDense builds a sparse matrix from any gonum matrix, keeping only the
// nonzero elements.
func FromDense(d mat.Matrix) (*sparse.Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", sparse.ErrNilMatrix)
	}
	rows, cols := d.Dims()
	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if v == 0 {
				continue
			}
			iv, err := toInt64(v)
			if err != nil {
				return nil, fmt.Errorf("FromDense(%d,%d)=%g: %w", i, j, v, err)
			}
			if err := m.Set(i, j, iv); err != nil {
				return nil, fmt.Errorf("FromDense: %w", err)
			}
		}
	}
	return m, nil
}

func toInt64(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, ErrNotIntegral
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, ErrNotIntegral
	}
	return int64(v), nil
}
