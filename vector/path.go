package vector

import "strings"

// PathCommand represents a single command in a path.
type PathCommand interface {
	isPathCommand()
	points() []Point
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathCommand()     {}
func (c MoveTo) points() []Point { return []Point{c.Point} }

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathCommand()     {}
func (c LineTo) points() []Point { return []Point{c.Point} }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathCommand()     {}
func (c QuadTo) points() []Point { return []Point{c.Control, c.Point} }

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathCommand()     {}
func (c CubicTo) points() []Point { return []Point{c.Control1, c.Control2, c.Point} }

// Close closes the current subpath.
type Close struct{}

func (Close) isPathCommand()   {}
func (Close) points() []Point { return nil }

// Path is a multi-command path element.
type Path struct {
	Style    Style
	commands []PathCommand
	current  Point
	start    Point
}

// NewPath creates an empty path with the given style.
func NewPath(style Style) *Path {
	return &Path{
		Style:    style,
		commands: make([]PathCommand, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.commands = append(p.commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.commands = append(p.commands, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	pt := Pt(x, y)
	p.commands = append(p.commands, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
	return p
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	pt := Pt(x, y)
	p.commands = append(p.commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.commands = append(p.commands, Close{})
	p.current = p.start
	return p
}

// Commands returns the path commands.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// Data returns the path in SVG path data syntax, e.g. "M 10 10 Q 15 5 20 10".
func (p *Path) Data() string {
	var sb strings.Builder
	for i, cmd := range p.commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c := cmd.(type) {
		case MoveTo:
			sb.WriteString("M ")
			writePoints(&sb, c.Point)
		case LineTo:
			sb.WriteString("L ")
			writePoints(&sb, c.Point)
		case QuadTo:
			sb.WriteString("Q ")
			writePoints(&sb, c.Control, c.Point)
		case CubicTo:
			sb.WriteString("C ")
			writePoints(&sb, c.Control1, c.Control2, c.Point)
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writePoints(sb *strings.Builder, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatNumber(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(pt.Y))
	}
}

// Bounds returns the bounds of all path points, control points included.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for _, cmd := range p.commands {
		for _, pt := range cmd.points() {
			r = r.Extend(pt)
		}
	}
	if r.IsZero() {
		return Rect{}
	}
	pad := p.Style.Pad()
	return r.Inset(-pad, -pad)
}

// Playback implements Element.
func (p *Path) Playback(b Backend) {
	b.DrawPath(p)
}
