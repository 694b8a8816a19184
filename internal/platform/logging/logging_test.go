package logging_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/platform/logging"
)

func TestNew_VerbosityGatesV(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, 1).WithName("test")
	t.Cleanup(func() { logging.New(&bytes.Buffer{}, 0) })

	log.Info("always shown", "rows", 3)
	log.V(1).Info("shown at v1")
	log.V(2).Info("hidden at v1")
	log.Error(errors.New("boom"), "failed")

	out := buf.String()
	require.Contains(t, out, "always shown")
	require.Contains(t, out, "shown at v1")
	require.NotContains(t, out, "hidden at v1")
	require.Contains(t, out, "boom")
	require.Contains(t, out, "test")
}

func TestNew_NilWriterDiscards(t *testing.T) {
	log := logging.New(nil, 5)
	require.NotPanics(t, func() { log.Info("nowhere") })
}

func TestOrDiscard(t *testing.T) {
	var zero logr.Logger
	require.NotPanics(t, func() { logging.OrDiscard(zero).Info("dropped") })

	var buf bytes.Buffer
	l := logging.New(&buf, 0)
	logging.OrDiscard(l).Info("kept")
	require.Contains(t, buf.String(), "kept")
}
