// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

// ErrFormat marks any malformed header or entry line.
// Every decode failure caused by the input text matches it via errors.Is.
var ErrFormat = errors.New("codec: malformed matrix text")

// FormatError describes one malformed line.
// Line is 1-based and counts blank lines too; Text is the trimmed offending
// line (empty when a mandatory header is missing at end of input).
type FormatError struct {
	Line   int
	Text   string
	Reason string
	Err    error // underlying parse error, if any
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("codec: line %d: %s", e.Line, e.Reason)
	if e.Text != "" {
		msg += fmt.Sprintf(" %q", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both ErrFormat and the underlying parse error.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}

	return []error{ErrFormat}
}

func formatErrorf(line int, text string, cause error, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Text: text, Reason: fmt.Sprintf(format, args...), Err: cause}
}
