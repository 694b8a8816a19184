// Package sparsecalc implements the sparsecalc command: read two matrices,
// add, subtract or multiply them, and write the result.
package sparsecalc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/sparsecalc/codec"
	"github.com/katalvlaran/sparsecalc/internal/platform/logging"
	"github.com/katalvlaran/sparsecalc/internal/storage/sqlite"
	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/katalvlaran/sparsecalc/spy"
)

const tracerName = "github.com/katalvlaran/sparsecalc/internal/tools/sparsecalc"

// storedPrefix marks an operand that names a matrix in the store.
const storedPrefix = "@"

// Interactive prompts, shown only for values not given as flags.
const (
	promptOp     = "Enter operation: 1-Addition, 2-Subtraction, 3-Multiplication: "
	promptFirst  = "Enter first matrix file: "
	promptSecond = "Enter second matrix file: "
	promptOutput = "Enter output file path: "
)

// Run executes the sparsecalc command. Prompts and results go to out, logs to
// errOut. Missing operation, operands or output path are read from in.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) (err error) {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "sparsecalc.Run")
	defer func() { endSpan(span, err) }()

	r := &runner{
		cfg:     cfg,
		log:     logging.New(errOut, cfg.Verbosity).WithName("sparsecalc"),
		out:     out,
		scanner: bufio.NewScanner(in),
		printer: message.NewPrinter(language.English),
	}
	defer r.closeStore()

	switch {
	case cfg.List:
		return r.list(ctx)
	case strings.TrimSpace(cfg.Delete) != "":
		return r.delete(ctx, cfg.Delete)
	}
	return r.calculate(ctx)
}

type runner struct {
	cfg     Config
	log     logr.Logger
	out     io.Writer
	scanner *bufio.Scanner
	printer *message.Printer
	store   *sqlite.Store
}

// ask returns cur when set, otherwise prompts and reads one trimmed line.
func (r *runner) ask(cur, prompt, what string) (string, error) {
	if v := strings.TrimSpace(cur); v != "" {
		return v, nil
	}
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", what, err)
		}
		return "", fmt.Errorf("read %s: %w", what, io.ErrUnexpectedEOF)
	}
	v := strings.TrimSpace(r.scanner.Text())
	if v == "" {
		return "", fmt.Errorf("%s is required", what)
	}
	return v, nil
}

func (r *runner) calculate(ctx context.Context) error {
	choice, err := r.ask(r.cfg.Op, promptOp, "operation")
	if err != nil {
		return err
	}
	op, err := ParseOp(choice)
	if err != nil {
		return err
	}
	aRef, err := r.ask(r.cfg.APath, promptFirst, "first matrix file")
	if err != nil {
		return err
	}
	bRef, err := r.ask(r.cfg.BPath, promptSecond, "second matrix file")
	if err != nil {
		return err
	}

	a, err := r.load(ctx, aRef)
	if err != nil {
		return err
	}
	b, err := r.load(ctx, bRef)
	if err != nil {
		return err
	}

	result, err := r.compute(ctx, op, a, b)
	if err != nil {
		return err
	}

	outPath, err := r.ask(r.cfg.OutPath, promptOutput, "output file path")
	if err != nil {
		return err
	}
	if name := strings.TrimSpace(r.cfg.Save); name != "" {
		store, err := r.openStore(ctx)
		if err != nil {
			return err
		}
		if err := store.Put(ctx, name, result); err != nil {
			return err
		}
	}
	if r.cfg.SpyPath != "" {
		if err := spy.Save(result, r.cfg.SpyPath, spy.DefaultWidth, spy.DefaultHeight,
			spy.WithTitle(fmt.Sprintf("%s result", op))); err != nil {
			return err
		}
		r.log.V(1).Info("wrote spy plot", "path", r.cfg.SpyPath)
	}

	// The output file is written last so a failed side output leaves no result.
	if err := r.write(ctx, outPath, result); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Operation completed. Result written to %s.\n", outPath)
	if r.cfg.Verbosity > 0 {
		r.printer.Fprintf(r.out, "Result: %d x %d, %d nonzero entries.\n",
			result.Rows(), result.Cols(), result.NNZ())
	}
	return nil
}

// load reads an operand from a file path or, for "@name", from the store.
func (r *runner) load(ctx context.Context, ref string) (_ *sparse.Matrix, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sparsecalc.load",
		trace.WithAttributes(attribute.String("sparsecalc.operand", ref)))
	defer func() { endSpan(span, err) }()

	var m *sparse.Matrix
	if name, ok := strings.CutPrefix(ref, storedPrefix); ok {
		store, err := r.openStore(ctx)
		if err != nil {
			return nil, err
		}
		if m, err = store.Get(ctx, name); err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		m, err = codec.DecodeMatrix(f, codec.WithMaxDimension(r.cfg.MaxDimension))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
	}

	span.SetAttributes(matrixAttributes(m)...)
	r.log.V(1).Info("loaded matrix", "operand", ref, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())
	return m, nil
}

func (r *runner) compute(ctx context.Context, op Op, a, b *sparse.Matrix) (_ *sparse.Matrix, err error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "sparsecalc.compute",
		trace.WithAttributes(attribute.String("sparsecalc.op", op.String())))
	defer func() { endSpan(span, err) }()

	start := time.Now()
	result, err := op.Apply(a, b)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(matrixAttributes(result)...)
	r.log.V(1).Info("computed result", "op", op.String(), "rows", result.Rows(), "cols", result.Cols(),
		"nnz", result.NNZ(), "elapsed", time.Since(start))
	return result, nil
}

// write encodes m fully before touching path, so a failure leaves no file.
func (r *runner) write(ctx context.Context, path string, m *sparse.Matrix) (err error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "sparsecalc.write",
		trace.WithAttributes(attribute.String("sparsecalc.path", path)))
	defer func() { endSpan(span, err) }()

	var buf bytes.Buffer
	if err := codec.Encode(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	r.log.V(1).Info("wrote result", "path", path, "bytes", buf.Len())
	return nil
}

func (r *runner) list(ctx context.Context) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}
	summaries, err := store.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSHAPE\tNNZ\tUPDATED")
	for _, s := range summaries {
		r.printer.Fprintf(tw, "%s\t%dx%d\t%d\t%s\n", s.Name, s.Rows, s.Cols, s.NNZ, s.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (r *runner) delete(ctx context.Context, name string) error {
	store, err := r.openStore(ctx)
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Deleted %s.\n", strings.TrimSpace(name))
	return nil
}

func (r *runner) openStore(ctx context.Context) (*sqlite.Store, error) {
	if r.store != nil {
		return r.store, nil
	}
	if strings.TrimSpace(r.cfg.DBPath) == "" {
		return nil, errors.New("-db is required to use stored matrices")
	}
	store, err := sqlite.Open(ctx, r.cfg.DBPath, sqlite.WithLogger(r.log.WithName("store")))
	if err != nil {
		return nil, err
	}
	r.store = store
	return store, nil
}

func (r *runner) closeStore() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		r.log.Error(err, "close matrix store")
	}
}

func matrixAttributes(m *sparse.Matrix) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("sparsecalc.rows", m.Rows()),
		attribute.Int("sparsecalc.cols", m.Cols()),
		attribute.Int("sparsecalc.nnz", m.NNZ()),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
