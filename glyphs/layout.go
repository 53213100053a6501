package glyphs

import (
	"github.com/gogpu/sigil"
	"github.com/gogpu/sigil/vector"
)

// DefaultStyle fills outlines in black.
var DefaultStyle = vector.Filled(vector.Black)

// layout places one glyph in a size x size square.
type layout struct {
	originX  float64 // pen position of the glyph origin
	baseline float64
}

// newLayout centers a glyph of the given advance (already in drawing units
// for an em of size/2).
func newLayout(size, advance float64) layout {
	return layout{
		originX:  size/2 - advance/2,
		baseline: size/2 + size/5,
	}
}

// pen converts font coordinates into a path in the square.
type pen struct {
	l    layout
	path *vector.Path
}

func newPen(l layout, style vector.Style) *pen {
	return &pen{l: l, path: vector.NewPath(style)}
}

// pt maps a point given in em-scaled units with Y pointing down.
func (p *pen) pt(x, y float64) (float64, float64) {
	return p.l.originX + x, p.l.baseline + y
}

func (p *pen) moveTo(x, y float64) {
	if !p.path.IsEmpty() {
		p.path.Close()
	}
	p.path.MoveTo(p.pt(x, y))
}

func (p *pen) lineTo(x, y float64) {
	p.path.LineTo(p.pt(x, y))
}

func (p *pen) quadTo(cx, cy, x, y float64) {
	ax, ay := p.pt(cx, cy)
	bx, by := p.pt(x, y)
	p.path.QuadTo(ax, ay, bx, by)
}

func (p *pen) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	ax, ay := p.pt(c1x, c1y)
	bx, by := p.pt(c2x, c2y)
	cx, cy := p.pt(x, y)
	p.path.CubicTo(ax, ay, bx, by, cx, cy)
}

func (p *pen) glyph(size float64) sigil.Glyph {
	if !p.path.IsEmpty() {
		p.path.Close()
	}
	return sigil.Glyph{Shape: p.path, Width: size, Height: size}
}
