// Package logging builds the logr.Logger used by the command line tools.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing through the standard log package to w.
// V(n).Info lines are emitted only when n <= verbosity. A nil w yields a
// discarding logger.
//
// stdr keeps verbosity process-wide, so the last call wins.
func New(w io.Writer, verbosity int) logr.Logger {
	if w == nil {
		return logr.Discard()
	}
	stdr.SetVerbosity(verbosity)

	return stdr.NewWithOptions(log.New(w, "", log.LstdFlags), stdr.Options{LogCaller: stdr.Error})
}

// OrDiscard returns l, or a discarding logger when l is the zero value.
func OrDiscard(l logr.Logger) logr.Logger {
	if l.GetSink() == nil {
		return logr.Discard()
	}
	return l
}
