// Package svg provides the SVG backend for vector drawings.
//
// Importing the package registers two backends:
//
//	"svg"  - plain SVG 1.1 documents
//	"svgz" - gzip-compressed SVG documents
//
// Example:
//
//	import _ "github.com/gogpu/sigil/vector/svg"
//
//	err := vector.Render(drawing, "svg", w)
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/klauspost/compress/gzip"

	"github.com/gogpu/sigil/vector"
)

func init() {
	vector.Register("svg", func() vector.Backend {
		return NewBackend()
	})
	vector.Register("svgz", func() vector.Backend {
		return NewCompressedBackend()
	})
}

// decimals is the number of digits kept after the decimal point.
const decimals = 2

// Backend writes a drawing as an SVG document.
type Backend struct {
	buf        bytes.Buffer
	canvas     *svgo.SVG
	compressed bool
	open       int
	done       bool
}

// Ensure Backend implements the output interface.
var _ vector.WriterBackend = (*Backend)(nil)

// NewBackend creates a plain SVG backend.
func NewBackend() *Backend {
	b := &Backend{}
	b.canvas = svgo.New(&b.buf)
	b.canvas.Decimals = decimals
	return b
}

// NewCompressedBackend creates a backend whose output is gzip-compressed.
func NewCompressedBackend() *Backend {
	b := NewBackend()
	b.compressed = true
	return b
}

// Begin implements vector.Backend.
func (b *Backend) Begin(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %vx%v", width, height)
	}
	b.buf.Reset()
	b.open = 0
	b.done = false
	b.canvas.Startview(width, height, 0, 0, width, height)
	return nil
}

// End implements vector.Backend.
func (b *Backend) End() error {
	if b.open != 0 {
		return fmt.Errorf("svg: %d unclosed groups", b.open)
	}
	b.canvas.End()
	b.done = true
	return nil
}

// BeginGroup implements vector.Backend.
func (b *Backend) BeginGroup(t vector.Transform) {
	b.open++
	if t.IsIdentity() {
		b.canvas.Group()
		return
	}
	b.canvas.Gtransform(TransformAttr(t))
}

// EndGroup implements vector.Backend.
func (b *Backend) EndGroup() {
	if b.open == 0 {
		return
	}
	b.open--
	b.canvas.Gend()
}

// DrawLine implements vector.Backend.
func (b *Backend) DrawLine(l *vector.Line) {
	b.canvas.Line(l.Start.X, l.Start.Y, l.End.X, l.End.Y, styleAttrs(l.Style)...)
}

// DrawCircle implements vector.Backend.
func (b *Backend) DrawCircle(c *vector.Circle) {
	b.canvas.Circle(c.Center.X, c.Center.Y, c.Radius, styleAttrs(c.Style)...)
}

// DrawPolygon implements vector.Backend.
func (b *Backend) DrawPolygon(p *vector.Polygon) {
	if len(p.Points) == 0 {
		return
	}
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}
	b.canvas.Polygon(xs, ys, styleAttrs(p.Style)...)
}

// DrawPath implements vector.Backend.
func (b *Backend) DrawPath(p *vector.Path) {
	if p.IsEmpty() {
		return
	}
	b.canvas.Path(p.Data(), styleAttrs(p.Style)...)
}

// DrawText implements vector.Backend.
func (b *Backend) DrawText(t *vector.Text) {
	attrs := make([]string, 0, 6)
	if t.Anchor != "" {
		attrs = append(attrs, attr("text-anchor", string(t.Anchor)))
	}
	if t.FontSize > 0 {
		attrs = append(attrs, attr("font-size", vector.FormatNumber(t.FontSize)))
	}
	if t.FontFamily != "" {
		attrs = append(attrs, attr("font-family", t.FontFamily))
	}
	attrs = append(attrs, styleAttrs(t.Style)...)
	b.canvas.Text(t.Position.X, t.Position.Y, t.Content, attrs...)
}

// Bytes returns the finished SVG document, uncompressed.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the document to w, compressing it for "svgz".
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("svg: WriteTo called before End")
	}
	if !b.compressed {
		n, err := w.Write(b.buf.Bytes())
		return int64(n), err
	}

	cw := &countingWriter{w: w}
	zw, err := gzip.NewWriterLevel(cw, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(b.buf.Bytes()); err != nil {
		return cw.n, fmt.Errorf("svg: compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("svg: compress: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the document to the named file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// TransformAttr formats t as an SVG transform attribute value.
// Rotation is listed first so that the children are translated before they
// are turned about the pivot.
func TransformAttr(t vector.Transform) string {
	parts := make([]string, 0, 2)
	if t.Angle != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%s %s %s)",
			vector.FormatNumber(t.Angle), vector.FormatNumber(t.Pivot.X), vector.FormatNumber(t.Pivot.Y)))
	}
	if t.Offset != (vector.Point{}) {
		parts = append(parts, fmt.Sprintf("translate(%s %s)",
			vector.FormatNumber(t.Offset.X), vector.FormatNumber(t.Offset.Y)))
	}
	return strings.Join(parts, " ")
}

func styleAttrs(s vector.Style) []string {
	attrs := make([]string, 0, 4)
	if s.Stroke != "" {
		attrs = append(attrs, attr("stroke", s.Stroke))
	}
	if s.Fill != "" {
		attrs = append(attrs, attr("fill", s.Fill))
	}
	if s.StrokeWidth > 0 {
		attrs = append(attrs, attr("stroke-width", vector.FormatNumber(s.StrokeWidth)))
	}
	if s.Dash != "" {
		attrs = append(attrs, attr("stroke-dasharray", s.Dash))
	}
	return attrs
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
