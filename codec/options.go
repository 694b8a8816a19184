// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Decode.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies setters on top of defaults.
//
// Design goals:
//   - No global state; the same setters always yield the same Options.
//   - Panic only on invalid parameters (programmer error), never on input data.
package codec

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDimension bounds the rows/cols headers; 0 means unlimited.
	DefaultMaxDimension = 0

	// DefaultMaxEntries bounds the number of data lines; 0 means unlimited.
	DefaultMaxEntries = 0

	// DefaultMaxLineBytes bounds a single raw line, surrounding whitespace
	// included. Longer lines fail with a *FormatError.
	DefaultMaxLineBytes = 1 << 20
)

// Panic messages (stable; tests match them verbatim).
const (
	panicMaxDimensionInvalid = "codec: WithMaxDimension requires n >= 0"
	panicMaxEntriesInvalid   = "codec: WithMaxEntries requires n >= 0"
	panicMaxLineBytesInvalid = "codec: WithMaxLineBytes requires n > 0"
)

// Option mutates decoder Options.
type Option func(*Options)

// Options holds the effective decoder configuration.
// Fields are unexported; build it with NewOptions or pass ...Option to Decode.
type Options struct {
	maxDimension int // upper bound for rows and cols headers (0 = unlimited)
	maxEntries   int // upper bound for data lines (0 = unlimited)
	maxLineBytes int // upper bound for one raw line
}

// WithMaxDimension rejects documents whose rows or cols header exceeds n.
// Any shape is cheap for the matrix layer; the bound is a policy knob for
// callers that want to refuse absurd inputs early. n == 0 disables the check.
//
// Panics if n < 0.
func WithMaxDimension(n int) Option {
	if n < 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *Options) { o.maxDimension = n }
}

// WithMaxEntries rejects documents with more than n data lines.
// n == 0 disables the check.
//
// Panics if n < 0.
func WithMaxEntries(n int) Option {
	if n < 0 {
		panic(panicMaxEntriesInvalid)
	}

	return func(o *Options) { o.maxEntries = n }
}

// WithMaxLineBytes sets the longest accepted raw line.
//
// Panics if n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineBytesInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxDimension reports the configured header bound (0 = unlimited).
func (o Options) MaxDimension() int { return o.maxDimension }

// MaxEntries reports the configured entry bound (0 = unlimited).
func (o Options) MaxEntries() int { return o.maxEntries }

// MaxLineBytes reports the longest accepted raw line.
func (o Options) MaxLineBytes() int { return o.maxLineBytes }

// gatherOptions applies setters in order (last-writer-wins) over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxDimension: DefaultMaxDimension,
		maxEntries:   DefaultMaxEntries,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
