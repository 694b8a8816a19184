// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for shape, index and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Non-composite validators assume non-nil inputs unless stated otherwise.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures a requested shape is non-negative.
// Zero rows or columns are legal (empty matrices).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Assumes m is not nil.
func ValidateIndex(m *Matrix, row, col int) error {
	if row < 0 || row >= m.r {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (Add/Sub contract).
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows() (Mul contract).
// Assumes a and b are not nil.
func ValidateMulShape(a, b *Matrix) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBinaryMulShape – Composite: NotNil(a) → NotNil(b) → MulShape.
func ValidateBinaryMulShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}

	return nil
}
