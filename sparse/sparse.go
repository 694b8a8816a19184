// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Keep one map per row (column -> value); only non-zero values are stored.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep iteration deterministic: rows ascending, columns ascending.
//
// Complexity quicksheet:
//   - New: O(1), whatever the shape; At/Set: O(1) average; Clone: O(nnz);
//     All/Entries/String: O(nnz log nnz).

package sparse

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// indexErrorf wraps an error with a uniform Matrix context and callsite indices.
// The sentinel is preserved via %w, e.g. "Matrix.At(2,5): sparse: index out of range".
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an r×c integer sparse matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data maps a row index to its row; only non-empty rows are present.
//   - no stored value is ever 0.
type Matrix struct {
	r, c int
	data map[int]rowMap
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
// Storage is allocated on first Set, so any valid shape costs O(1).
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
func New(rows, cols int) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}

	return &Matrix{r: rows, c: cols}, nil
}

// FromEntries builds a rows×cols matrix by applying Set for every entry in order.
// Later entries for the same (row, col) overwrite earlier ones; a zero value deletes.
//
// Errors:
//   - ErrBadShape for a negative shape.
//   - ErrOutOfRange for the first entry outside the bounds; no matrix is returned.
func FromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	return fromSeq(rows, cols, slices.Values(entries), opFromEntries)
}

// FromSeq is FromEntries for a streamed sequence of entries.
// Consumption stops at the first invalid entry.
func FromSeq(rows, cols int, seq iter.Seq[Entry]) (*Matrix, error) {
	return fromSeq(rows, cols, seq, opFromSeq)
}

func fromSeq(rows, cols int, seq iter.Seq[Entry], opTag string) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf(opTag, err)
	}
	m := &Matrix{r: rows, c: cols}
	if seq == nil {
		return m, nil
	}

	var n int // position in the stream, for diagnostics
	for e := range seq {
		if err := m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, opErrorf(opTag, fmt.Errorf("entry %d: %w", n, err))
		}
		n++
	}

	return m, nil
}

// Rows returns the number of rows. A nil matrix has zero rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns. A nil matrix has zero columns.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// NNZ returns the number of stored (non-zero) elements.
// Complexity: O(non-empty rows).
func (m *Matrix) NNZ() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, rm := range m.data {
		n += len(rm)
	}

	return n
}

// At returns the element at (row, col), or 0 if nothing is stored there.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange if row ∉ [0,Rows()) or col ∉ [0,Cols()).
func (m *Matrix) At(row, col int) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, indexErrorf(ctxAt, row, col, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, indexErrorf(ctxAt, row, col, err)
	}

	// Missing rows and columns read as the zero value.
	return m.data[row][col], nil
}

// Set assigns v at (row, col). A zero v removes the stored element (no-op if absent).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange if the indices are outside the matrix.
func (m *Matrix) Set(row, col int, v int64) error {
	if err := ValidateNotNil(m); err != nil {
		return indexErrorf(ctxSet, row, col, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return indexErrorf(ctxSet, row, col, err)
	}
	m.store(row, col, v)

	return nil
}

// store writes v without bounds checks; callers validate first.
// A row emptied by a deletion is dropped from data.
func (m *Matrix) store(row, col int, v int64) {
	if v == 0 {
		rm, ok := m.data[row]
		if !ok {
			return
		}
		delete(rm, col)
		if len(rm) == 0 {
			delete(m.data, row)
		}
		return
	}
	if m.data == nil {
		m.data = make(map[int]rowMap)
	}
	rm := m.data[row]
	if rm == nil {
		rm = make(rowMap)
		m.data[row] = rm
	}
	rm[col] = v
}

// rowIndices returns the indices of non-empty rows in ascending order.
func (m *Matrix) rowIndices() []int {
	return slices.Sorted(maps.Keys(m.data))
}

// Clone returns a deep copy; the copy shares no row maps with m.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{r: m.r, c: m.c}
	if len(m.data) == 0 {
		return out
	}
	out.data = make(map[int]rowMap, len(m.data))
	for i, rm := range m.data {
		out.data[i] = maps.Clone(rm)
	}

	return out
}

// Equal reports whether m and o have the same shape and the same stored elements.
// Two nil matrices are equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	if len(m.data) != len(o.data) {
		return false
	}
	for i, rm := range m.data {
		if !maps.Equal(rm, o.data[i]) {
			return false
		}
	}

	return true
}

// All iterates stored elements in row-major order with ascending columns.
// Mutating m while iterating is not supported.
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if m == nil {
			return
		}
		for _, i := range m.rowIndices() {
			rm := m.data[i]
			for _, j := range slices.Sorted(maps.Keys(rm)) {
				if !yield(Entry{Row: i, Col: j, Value: rm[j]}) {
					return
				}
			}
		}
	}
}

// Entries returns the stored elements as a slice, in the order of All.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}

// String renders one bracketed line per non-empty row listing its (r,c,v)
// triples. Intended for debugging; use the codec package for serialization.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for _, i := range m.rowIndices() {
		rm := m.data[i]
		sb.WriteString(_fmtRowOpen)
		for k, j := range slices.Sorted(maps.Keys(rm)) {
			if k > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(Entry{Row: i, Col: j, Value: rm[j]}.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
