// SPDX-License-Identifier: MIT

// Package spy draws the nonzero pattern of a sparse.Matrix.
//
// Each stored entry becomes one square marker at (col, row). The row axis is
// inverted so the picture reads like the matrix itself: row 0 at the top.
package spy

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Default image size used by the command line tool.
const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

type options struct {
	title  string
	radius vg.Length
	color  color.Color
}

// Option customizes a spy plot.
type Option func(*options)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithMarkerRadius sets the marker half-size. Panics if r <= 0.
func WithMarkerRadius(r vg.Length) Option {
	if r <= 0 {
		panic("spy: WithMarkerRadius requires r > 0")
	}
	return func(o *options) { o.radius = r }
}

// WithColor sets the marker color. Panics on nil.
func WithColor(c color.Color) Option {
	if c == nil {
		panic("spy: WithColor requires a color")
	}
	return func(o *options) { o.color = c }
}

func gather(opts []Option) options {
	o := options{
		title:  "nonzero pattern",
		radius: vg.Points(2),
		color:  color.Black,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render builds the spy plot of m.
func Render(m *sparse.Matrix, opts ...Option) (*plot.Plot, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("spy: %w", err)
	}
	o := gather(opts)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = fmt.Sprintf("column (nnz = %d)", m.NNZ())
	p.Y.Label.Text = "row"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	if m.NNZ() > 0 {
		pts := make(plotter.XYs, 0, m.NNZ())
		for e := range m.All() {
			pts = append(pts, plotter.XY{X: float64(e.Col), Y: float64(e.Row)})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("spy: scatter: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.BoxGlyph{}
		scatter.GlyphStyle.Radius = o.radius
		scatter.GlyphStyle.Color = o.color
		p.Add(scatter)
	}

	// Frame the full shape, not just the occupied cells.
	p.X.Min, p.X.Max = -0.5, float64(m.Cols())-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(m.Rows())-0.5

	return p, nil
}

// Save renders m and writes it to path. The image format follows the file
// extension (png, svg, pdf, ...).
func Save(m *sparse.Matrix, path string, width, height vg.Length, opts ...Option) error {
	p, err := Render(m, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("spy: save %s: %w", path, err)
	}
	return nil
}

// WriteTo renders m in the given format ("png", "svg", ...) to w.
func WriteTo(w io.Writer, m *sparse.Matrix, format string, width, height vg.Length, opts ...Option) error {
	p, err := Render(m, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("spy: %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("spy: write: %w", err)
	}
	return nil
}
