// Package sparsecalc is a small toolkit for integer sparse matrices: store
// only what is nonzero, and add, subtract or multiply without ever
// materializing the zeros.
//
// 🚀 What is in the box?
//
//	• Core type: sparse.Matrix, a dictionary of keys per row with checked
//	  int64 arithmetic (Add, Sub, Mul, Transpose)
//	• Text format: codec reads and writes "rows=N / cols=M / (r,c,v)" files
//	• Persistence: a SQLite matrix store for named results
//	• Pictures: spy renders the nonzero pattern as PNG, SVG or PDF
//	• Interop: convert moves matrices to and from gonum dense matrices
//	• CLI: cmd/sparsecalc, the interactive calculator
//
// ✨ Why sparsecalc?
//
//   - Strict by default: out-of-range writes and shape mismatches are errors,
//     never silent no-ops
//   - Deterministic output: entries are written row-major, columns ascending
//   - Overflow-safe: leaving the int64 range returns sparse.ErrOverflow
//
// Packages:
//
//	sparse/   — Matrix, Entry, validators, arithmetic kernels
//	codec/    — text format decoder/encoder with line-numbered errors
//	spy/      — nonzero-pattern plots
//	convert/  — gonum adapters
//
// Quick example, the 2×2 sum:
//
//	[1 0]   [0 3]   [1 3]
//	[0 2] + [0 -2] = [0 0]
//
// A cancelled entry vanishes from storage instead of being kept as 0.
//
//	go run github.com/katalvlaran/sparsecalc/cmd/sparsecalc -op add -a a.txt -b b.txt -out c.txt
package sparsecalc
