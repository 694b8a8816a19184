// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every algorithm in this package returns one of these sentinels, usually
// wrapped with an operation tag. Tests MUST match them via errors.Is.
// No exported function panics on user-triggered error conditions.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so that wrapped chains such as
// "Mul: ValidateBinaryMulShape: sparse: dimension mismatch" stay greppable.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> overflow.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	// Zero-sized matrices are legal.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set and the entry constructors return it instead of panicking.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrOverflow signals that an intermediate or final value does not fit in int64.
	ErrOverflow = errors.New("sparse: integer overflow")
)
