// SPDX-License-Identifier: MIT

package codec_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sparsecalc/codec"
)

// ExampleDecodeMatrix decodes two matrices, adds them and writes the sum.
// The cancelled (1,1) entry is not written.
func ExampleDecodeMatrix() {
	a, _ := codec.DecodeMatrix(strings.NewReader("rows=2\ncols=2\n(0,0,1)\n(1,1,2)\n"))
	b, _ := codec.DecodeMatrix(strings.NewReader("rows=2\ncols=2\n\n(0,1,3)\n(1,1,-2)\n"))

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println("add:", err)
		return
	}
	if err := codec.Encode(os.Stdout, sum); err != nil {
		fmt.Println("encode:", err)
	}
	// Output:
	// rows=2
	// cols=2
	// (0,0,1)
	// (0,1,3)
}

// ExampleFormatError shows the line-numbered diagnostics of a bad file.
func ExampleFormatError() {
	_, err := codec.DecodeString("rows=2\ncols=2\n(0,0)\n")

	var fe *codec.FormatError
	if errors.As(err, &fe) {
		fmt.Println(fe.Line, fe.Reason)
	}
	fmt.Println(errors.Is(err, codec.ErrFormat))
	// Output:
	// 3 entry needs 3 fields, got 2
	// true
}
