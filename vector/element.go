package vector

import (
	"math"
	"unicode/utf8"
)

// Element is anything that can be placed on a Drawing.
// Elements are immutable once built and may be played back any number of
// times.
type Element interface {
	// Playback issues the drawing calls for the element on b.
	Playback(b Backend)

	// Bounds returns the element's extent in its own coordinate frame.
	Bounds() Rect
}

// Line is a straight segment.
type Line struct {
	Start, End Point
	Style      Style
}

// Playback implements Element.
func (l *Line) Playback(b Backend) { b.DrawLine(l) }

// Bounds implements Element.
func (l *Line) Bounds() Rect {
	pad := l.Style.Pad()
	return EmptyRect().Extend(l.Start).Extend(l.End).Inset(-pad, -pad)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
	Style  Style
}

// Playback implements Element.
func (c *Circle) Playback(b Backend) { b.DrawCircle(c) }

// Bounds implements Element.
func (c *Circle) Bounds() Rect {
	r := c.Radius + c.Style.Pad()
	return NewRect(c.Center.X-r, c.Center.Y-r, 2*r, 2*r)
}

// Polygon is a closed polyline, usually filled.
type Polygon struct {
	Points []Point
	Style  Style
}

// Playback implements Element.
func (p *Polygon) Playback(b Backend) { b.DrawPolygon(p) }

// Bounds implements Element.
func (p *Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := EmptyRect()
	for _, pt := range p.Points {
		r = r.Extend(pt)
	}
	pad := p.Style.Pad()
	return r.Inset(-pad, -pad)
}

// Anchor is the horizontal alignment of a Text element.
type Anchor string

// Text anchors, as in the SVG text-anchor attribute.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a run of characters rendered by the consumer of the drawing.
// The position is the baseline origin.
type Text struct {
	Position   Point
	Content    string
	FontSize   float64
	FontFamily string
	Anchor     Anchor
	Style      Style
}

// Playback implements Element.
func (t *Text) Playback(b Backend) { b.DrawText(t) }

// Bounds implements Element. The extent is estimated from the font size
// since glyph metrics are not known to the drawing.
func (t *Text) Bounds() Rect {
	w := 0.6 * t.FontSize * float64(utf8.RuneCountInString(t.Content))
	x := t.Position.X
	switch t.Anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	return NewRect(x, t.Position.Y-0.8*t.FontSize, w, t.FontSize)
}

// Transform positions a group within its parent: the children are first
// translated by Offset and then rotated by Angle degrees about Pivot.
// Pivot is expressed in the parent frame.
type Transform struct {
	Offset Point
	Angle  float64
	Pivot  Point
}

// Translation returns a translation-only transform.
func Translation(x, y float64) Transform {
	return Transform{Offset: Pt(x, y)}
}

// Matrix returns the affine matrix of the transform.
func (t Transform) Matrix() Matrix {
	m := Translate(t.Offset.X, t.Offset.Y)
	if math.Mod(t.Angle, 360) != 0 {
		m = RotateAbout(t.Angle, t.Pivot.X, t.Pivot.Y).Multiply(m)
	}
	return m
}

// IsIdentity reports whether the transform leaves coordinates unchanged.
func (t Transform) IsIdentity() bool {
	return t.Offset == Point{} && math.Mod(t.Angle, 360) == 0
}

// Group is a list of child elements sharing one transform.
type Group struct {
	Transform Transform
	Children  []Element
}

// NewGroup returns a group with the given transform and children.
func NewGroup(t Transform, children ...Element) *Group {
	return &Group{Transform: t, Children: children}
}

// Add appends children to the group.
func (g *Group) Add(children ...Element) {
	g.Children = append(g.Children, children...)
}

// Playback implements Element.
func (g *Group) Playback(b Backend) {
	b.BeginGroup(g.Transform)
	for _, c := range g.Children {
		c.Playback(b)
	}
	b.EndGroup()
}

// Bounds implements Element. The result is expressed in the parent frame,
// i.e. with the group transform applied.
func (g *Group) Bounds() Rect {
	r := EmptyRect()
	for _, c := range g.Children {
		r = r.Union(c.Bounds())
	}
	if r.IsZero() {
		return Rect{}
	}
	return g.Transform.Matrix().TransformRect(r)
}
