package sigil

import (
	"math"

	"github.com/gogpu/sigil/vector"
)

// starOrder visits the pentagram vertices so that consecutive pairs draw the
// five strokes of a star rather than a pentagon.
var starOrder = [...]int{0, 2, 4, 1, 3, 0}

// WrapInCircle returns a square block holding b centered inside a circle.
// The square side is max(width, height) + 2*padding and the circle fills it.
func WrapInCircle(b *Block, padding float64, style vector.Style) *Block {
	w, h := b.Size()
	box := math.Max(w, h) + 2*padding
	half := box / 2

	out := &Block{Width: box, Height: box, Level: b.Level}
	c := out.Center()
	out.Place(&vector.Circle{Center: c, Radius: half, Style: style}, vector.Point{})
	out.Place(b, vector.Pt(c.X-w/2, c.Y-h/2))

	Logger().Debug("sigil: circle", "box", box, "radius", half)
	return out
}

// PentagramPoints returns the five star vertices on a circle of radius
// 0.4*side around the center of a side x side square, starting at the top and
// stepping 72 degrees counter-clockwise.
func PentagramPoints(side float64) [5]vector.Point {
	c := side / 2
	r := side * 0.4
	var pts [5]vector.Point
	for k := range pts {
		rad := vector.Radians(90 + 72*float64(k))
		pts[k] = vector.Pt(c+r*math.Cos(rad), c-r*math.Sin(rad))
	}
	return pts
}

// WrapInPentagram returns a square block holding b centered inside a
// five-pointed star. The square side is height*PentagramScale plus the
// pentagram margin.
func WrapInPentagram(cfg Config, b *Block, style vector.Style) *Block {
	side := b.Height*cfg.PentagramScale + cfg.PentagramMargin()
	pts := PentagramPoints(side)

	out := &Block{Width: side, Height: side, Level: b.Level}
	for i := 0; i+1 < len(starOrder); i++ {
		out.Place(&vector.Line{
			Start: pts[starOrder[i]],
			End:   pts[starOrder[i+1]],
			Style: style,
		}, vector.Point{})
	}
	w, h := b.Size()
	c := out.Center()
	out.Place(b, vector.Pt(c.X-w/2, c.Y-h/2))

	Logger().Debug("sigil: pentagram", "side", side)
	return out
}
