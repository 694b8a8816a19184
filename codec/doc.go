// Package codec converts between the sparse matrix text format and
// sparse.Matrix values.
//
// Format:
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(r,c,v)
//	(r,c,v)
//	...
//
// Decode validates only the text shape; index ranges are checked by the
// matrix layer when the entries are applied. Encode writes rows ascending and,
// within a row, columns ascending, so output is stable across runs.
package codec
