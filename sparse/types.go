// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix, its iterators and the codec.
package sparse

import "fmt"

// Entry is a single (row, column, value) triple.
// It carries no lifecycle of its own: entries are produced by iteration and
// consumed by constructors. A Value of 0 means "no stored element".
type Entry struct {
	Row   int   // zero-based row index
	Col   int   // zero-based column index
	Value int64 // element value; 0 deletes on ingestion
}

// String renders the entry in the on-disk triple form "(r,c,v)".
func (e Entry) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.Row, e.Col, e.Value)
}

// rowMap is one sparse row: column index -> non-zero value.
type rowMap map[int]int64
