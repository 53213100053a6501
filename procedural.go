package sigil

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/sigil/vector"
)

// Fixed sizes of the procedural marks.
const (
	markRadius = 5 // digit triangle and dot
	tickRadius = 3 // circle at the end of each tick
	tickWidth  = 1
	headingMod = 360
	stepMod    = 20
)

// StrokeSegment is one instruction of a multi-segment path: a displacement,
// drawn straight or as a quadratic curve bent sideways by Bend.
type StrokeSegment struct {
	DX, DY float64
	Curved bool
	Bend   float64
}

// BuildPath draws segments from start. Each end point is clamped to bounds;
// pass Unbounded to keep the displacements as given.
// A curved segment from (x, y) by (dx, dy) uses the control point
// (x + dx/2 + bend*dy, y + dy/2 - bend*dx).
func BuildPath(start vector.Point, segments []StrokeSegment, bounds vector.Rect, style vector.Style) *vector.Path {
	p := vector.NewPath(style).MoveTo(start.X, start.Y)
	x, y := start.X, start.Y
	for _, s := range segments {
		nx := clamp(x+s.DX, bounds.MinX, bounds.MaxX)
		ny := clamp(y+s.DY, bounds.MinY, bounds.MaxY)
		if s.Curved {
			p.QuadTo(x+s.DX/2+s.Bend*s.DY, y+s.DY/2-s.Bend*s.DX, nx, ny)
		} else {
			p.LineTo(nx, ny)
		}
		x, y = nx, ny
	}
	return p
}

// Unbounded is a clip rectangle that BuildPath never reaches.
var Unbounded = vector.Rect{
	MinX: math.Inf(-1), MinY: math.Inf(-1),
	MaxX: math.Inf(1), MaxY: math.Inf(1),
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CursorState is the running position and heading (degrees) of one
// synthesizer run.
type CursorState struct {
	X, Y    float64
	Heading float64
}

// Position returns the cursor position.
func (c CursorState) Position() vector.Point { return vector.Pt(c.X, c.Y) }

// Figure is the output of Synthesize: one shape per input character on a
// square canvas.
type Figure struct {
	Size   float64
	Cursor CursorState // state after the last character
	shapes []vector.Element
}

// Shapes returns the shapes in input order.
func (f *Figure) Shapes() []vector.Element {
	out := make([]vector.Element, len(f.shapes))
	copy(out, f.shapes)
	return out
}

// Playback implements vector.Element.
func (f *Figure) Playback(b vector.Backend) {
	for _, s := range f.shapes {
		s.Playback(b)
	}
}

// Bounds implements vector.Element.
func (f *Figure) Bounds() vector.Rect {
	return vector.NewRect(0, 0, f.Size, f.Size)
}

// Block returns the figure as a block so it can be enclosed.
func (f *Figure) Block() *Block {
	b := NewBlock(f.Size, f.Size)
	b.Place(f, vector.Point{})
	return b
}

// Synthesize draws abstract stroke art for input, one shape per character.
//
// The cursor starts at the canvas center facing right. For every character
// the heading turns by Val1 degrees and the next position lies
// GridStep/10 + Val1%20 units ahead; the shape is chosen by whether the
// character is a digit and whether its code point is odd:
//
//	letter, odd  - line of length Val1 with Val2/10 ticks, turned to the heading
//	letter, even - four-segment curved loop starting at the cursor
//	digit, odd   - small filled triangle around the canvas center
//	digit, even  - small circle at the cursor
//
// The cursor always advances, so every shape depends on all characters
// before it.
func Synthesize(cfg Config, input string) (*Figure, error) {
	if input == "" {
		return nil, invalid(StageProcedural, "input must not be empty", "")
	}
	if !utf8.ValidString(input) {
		return nil, invalid(StageProcedural, "input must be valid UTF-8", input)
	}

	size := cfg.GridStep
	minLength := math.Floor(size / 10)
	center := vector.Pt(math.Floor(size/2), math.Floor(size/2))

	s := synth{cfg: cfg, center: center}
	cur := CursorState{X: center.X, Y: center.Y}
	shapes := make([]vector.Element, 0, utf8.RuneCountInString(input))

	for _, r := range input {
		tok := CharToken(r)
		step := minLength + float64(tok.Val1%stepMod)
		cur.Heading += float64(tok.Val1 % headingMod)
		next := cur.Position().Polar(step, cur.Heading)

		digit := unicode.IsDigit(r)
		odd := r%2 == 1
		var shape vector.Element
		switch {
		case !digit && odd:
			shape = s.tickedLine(cur, tok)
		case !digit:
			shape = s.loop(cur, tok)
		case odd:
			shape = s.triangle()
		default:
			shape = &vector.Circle{Center: cur.Position(), Radius: markRadius, Style: s.thin()}
		}
		shapes = append(shapes, shape)

		cur.X, cur.Y = next.X, next.Y
	}

	Logger().Debug("sigil: synthesized", "chars", len(shapes), "heading", cur.Heading)
	return &Figure{Size: size, Cursor: cur, shapes: shapes}, nil
}

type synth struct {
	cfg    Config
	center vector.Point
}

func (s synth) color() string {
	if s.cfg.Stroke.Stroke == "" {
		return vector.Black
	}
	return s.cfg.Stroke.Stroke
}

func (s synth) thin() vector.Style {
	return vector.Stroked(s.color(), tickWidth)
}

// tickedLine draws a horizontal line of length Val1 centered on the cursor,
// decorated with Val2/10 perpendicular ticks of length Val2%10 alternating
// above and below, each ending in a small circle. The group is turned by the
// heading about the cursor.
func (s synth) tickedLine(cur CursorState, tok HashToken) vector.Element {
	half := float64(tok.Val1) / 2
	start := vector.Pt(cur.X-half, cur.Y)
	end := vector.Pt(cur.X+half, cur.Y)

	g := vector.NewGroup(vector.Transform{Angle: cur.Heading, Pivot: cur.Position()},
		&vector.Line{Start: start, End: end, Style: s.cfg.Stroke})

	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return g
	}
	// Unit normal of the main line.
	px, py := -dy/length, dx/length

	count := tok.Val2 / 10
	tick := float64(tok.Val2 % 10)
	for i := 1; i <= count; i++ {
		t := float64(i) / float64(count+1)
		base := vector.Pt(start.X+dx*t, start.Y+dy*t)
		sign := -1.0
		if i%2 == 0 {
			sign = 1
		}
		tip := vector.Pt(base.X+sign*px*tick, base.Y+sign*py*tick)
		g.Add(
			&vector.Line{Start: base, End: tip, Style: s.thin()},
			&vector.Circle{Center: tip, Radius: tickRadius, Style: s.thin()},
		)
	}
	return g
}

// loop draws four quadratic segments from the cursor with bends
// +0.5, -0.4, +0.5, -0.5. The cursor may have left the canvas; the loop
// follows it unclipped.
func (s synth) loop(cur CursorState, tok HashToken) vector.Element {
	h := float64(tok.Val1 / 10)
	v := float64(tok.Val2 / 10)
	segments := []StrokeSegment{
		{DX: h, Curved: true, Bend: 0.5},
		{DY: v, Curved: true, Bend: -0.4},
		{DX: -h, Curved: true, Bend: 0.5},
		{DY: -v, Curved: true, Bend: -0.5},
	}
	style := s.cfg.Stroke
	style.Fill = vector.None
	return BuildPath(cur.Position(), segments, Unbounded, style)
}

// triangle draws a filled triangle around the canvas center with vertices
// at -30, 90 and 210 degrees.
func (s synth) triangle() vector.Element {
	pts := make([]vector.Point, 3)
	for j := range pts {
		pts[j] = s.center.Polar(markRadius, float64(60+120*j-90))
	}
	return &vector.Polygon{Points: pts, Style: vector.Filled(s.color())}
}
