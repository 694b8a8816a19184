// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Header keys and entry delimiters of the text format.
const (
	keyRows    = "rows"
	keyCols    = "cols"
	headerSep  = "="
	entryOpen  = "("
	entryClose = ")"
	entrySep   = ","
	entryArity = 3
)

// initialLineBuf is the scanner's starting buffer; it grows up to MaxLineBytes.
const initialLineBuf = 4096

// decoder states
const (
	expectRows = iota
	expectCols
	expectEntries
)

// Document is a decoded matrix text: the declared shape and the entry stream
// in file order. Entries are not range-checked; sparse.FromEntries does that.
type Document struct {
	Rows    int
	Cols    int
	Entries []sparse.Entry
}

// Decode parses the matrix text format:
//
//	rows=<N>
//	cols=<M>
//	(r,c,v)
//	...
//
// Lines are trimmed and blank lines are skipped anywhere. A raw line longer
// than MaxLineBytes (default DefaultMaxLineBytes) is a format error. Both headers are
// mandatory, in this order, exactly once. An explicit (r,c,0) line is kept and
// later applied as a deletion.
//
// Errors:
//   - *FormatError (matches ErrFormat) for any malformed line or missing header.
//   - Read errors from r, wrapped.
func Decode(r io.Reader, opts ...Option) (*Document, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(o.maxLineBytes, initialLineBuf)), o.maxLineBytes)
	doc := &Document{}

	var (
		state  = expectRows
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		switch state {
		case expectRows:
			n, err := parseHeader(lineNo, text, keyRows, o)
			if err != nil {
				return nil, err
			}
			doc.Rows, state = n, expectCols
		case expectCols:
			n, err := parseHeader(lineNo, text, keyCols, o)
			if err != nil {
				return nil, err
			}
			doc.Cols, state = n, expectEntries
		default:
			if o.maxEntries > 0 && len(doc.Entries) >= o.maxEntries {
				return nil, formatErrorf(lineNo, text, nil, "more than %d entries", o.maxEntries)
			}
			e, err := parseEntry(lineNo, text)
			if err != nil {
				return nil, err
			}
			doc.Entries = append(doc.Entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, formatErrorf(lineNo+1, "", err, "line longer than %d bytes", o.maxLineBytes)
		}
		return nil, fmt.Errorf("codec: read: %w", err)
	}

	switch state {
	case expectRows:
		return nil, formatErrorf(lineNo+1, "", nil, "missing %s header", keyRows)
	case expectCols:
		return nil, formatErrorf(lineNo+1, "", nil, "missing %s header", keyCols)
	}

	return doc, nil
}

// DecodeString is Decode over an in-memory string.
func DecodeString(s string, opts ...Option) (*Document, error) {
	return Decode(strings.NewReader(s), opts...)
}

// DecodeMatrix decodes r and builds the matrix from the entry stream.
// Range violations surface as sparse.ErrOutOfRange.
func DecodeMatrix(r io.Reader, opts ...Option) (*sparse.Matrix, error) {
	doc, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}

	return doc.Matrix()
}

// Matrix builds a sparse.Matrix from the document.
func (d *Document) Matrix() (*sparse.Matrix, error) {
	return sparse.FromEntries(d.Rows, d.Cols, d.Entries)
}

// parseHeader parses "<key>=<non-negative int>".
func parseHeader(lineNo int, text, key string, o Options) (int, error) {
	k, v, ok := strings.Cut(text, headerSep)
	if !ok {
		return 0, formatErrorf(lineNo, text, nil, "expected %s%s<n> header", key, headerSep)
	}
	if strings.TrimSpace(k) != key {
		return 0, formatErrorf(lineNo, text, nil, "expected %s header", key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, formatErrorf(lineNo, text, err, "invalid %s value", key)
	}
	if n < 0 {
		return 0, formatErrorf(lineNo, text, nil, "negative %s value", key)
	}
	if o.maxDimension > 0 && n > o.maxDimension {
		return 0, formatErrorf(lineNo, text, nil, "%s exceeds limit %d", key, o.maxDimension)
	}

	return n, nil
}

// parseEntry parses "(r,c,v)". Whitespace around each field is tolerated.
func parseEntry(lineNo int, text string) (sparse.Entry, error) {
	if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
		return sparse.Entry{}, formatErrorf(lineNo, text, nil, "entry must be %s...%s", entryOpen, entryClose)
	}
	fields := strings.Split(text[1:len(text)-1], entrySep)
	if len(fields) != entryArity {
		return sparse.Entry{}, formatErrorf(lineNo, text, nil, "entry needs %d fields, got %d", entryArity, len(fields))
	}

	r, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return sparse.Entry{}, formatErrorf(lineNo, text, err, "invalid row")
	}
	c, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return sparse.Entry{}, formatErrorf(lineNo, text, err, "invalid column")
	}
	v, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return sparse.Entry{}, formatErrorf(lineNo, text, err, "invalid value")
	}

	return sparse.Entry{Row: r, Col: c, Value: v}, nil
}
