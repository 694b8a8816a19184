// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Encode writes m in the text format: the two headers, then one (r,c,v) line
// per stored element in row-major order with ascending columns. Zero values
// are never written because the matrix never stores them.
//
// Errors:
//   - sparse.ErrNilMatrix for a nil m.
//   - Write errors from w, wrapped.
func Encode(w io.Writer, m *sparse.Matrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	var buf []byte // reused per line
	buf = appendHeader(buf[:0], keyRows, m.Rows())
	buf = appendHeader(buf, keyCols, m.Cols())
	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	for e := range m.All() {
		buf = appendEntry(buf[:0], e)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("codec: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}

	return nil
}

// EncodeString returns the text form of m.
func EncodeString(m *sparse.Matrix) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func appendHeader(dst []byte, key string, n int) []byte {
	dst = append(dst, key...)
	dst = append(dst, headerSep...)
	dst = strconv.AppendInt(dst, int64(n), 10)

	return append(dst, '\n')
}

func appendEntry(dst []byte, e sparse.Entry) []byte {
	dst = append(dst, entryOpen...)
	dst = strconv.AppendInt(dst, int64(e.Row), 10)
	dst = append(dst, entrySep...)
	dst = strconv.AppendInt(dst, int64(e.Col), 10)
	dst = append(dst, entrySep...)
	dst = strconv.AppendInt(dst, e.Value, 10)
	dst = append(dst, entryClose...)

	return append(dst, '\n')
}
