// Package sparse implements integer sparse matrices stored as a
// dictionary of keys per row.
//
// The sparse package provides:
//
//   - Matrix, an r×c matrix whose rows are maps from column index to a
//     non-zero int64 value. Zero entries are never stored.
//   - Safe accessors (At, Set) that return ErrOutOfRange instead of panicking.
//   - Element-wise Add/Sub with exact shape checks and a sparse Mul that
//     only touches nonzero pairs sharing the inner index.
//   - Transpose built from a column-indexed view (col → row → value).
//
// Results are always freshly allocated; operands are never mutated.
// A Matrix is not synchronized: share it read-only or guard it externally.
//
// See the examples in this package and the codec package for the text format.
package sparse
