package vector

import (
	"errors"
	"fmt"
	"math"
)

// gridDash is the dash pattern of overlay lines.
const gridDash = "5 5"

// Limits on the size of a grid overlay.
const (
	MaxGridLines  = 1000  // vertical plus horizontal lines
	MaxGridLabels = 10000 // labeled intersections
)

// ErrGridTooDense is returned when a grid step would exceed MaxGridLines or
// MaxGridLabels on the given canvas.
var ErrGridTooDense = errors.New("vector: grid step too small for canvas")

// GridOverlay returns dashed gray lines every step units across a canvas of
// the given size, excluding the canvas edges. When labels is set, each
// interior intersection is annotated with its coordinates.
//
// The overlay is a debugging aid for checking block placement.
func GridOverlay(width, height, step float64, labels bool) (*Group, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("vector: grid step must be positive, got %v", step)
	}
	cols, rows := interior(width, step), interior(height, step)
	if cols+rows > MaxGridLines {
		return nil, fmt.Errorf("%w: %v lines at step %v", ErrGridTooDense, cols+rows, step)
	}
	if labels && cols*rows > MaxGridLabels {
		return nil, fmt.Errorf("%w: %v labels at step %v", ErrGridTooDense, cols*rows, step)
	}

	g := NewGroup(Transform{})
	style := Style{Stroke: Gray, StrokeWidth: 1, Dash: gridDash}
	for x := step; x < width; x += step {
		g.Add(&Line{Start: Pt(x, 0), End: Pt(x, height), Style: style})
	}
	for y := step; y < height; y += step {
		g.Add(&Line{Start: Pt(0, y), End: Pt(width, y), Style: style})
	}
	if !labels {
		return g, nil
	}
	for x := step; x < width; x += step {
		for y := step; y < height; y += step {
			g.Add(&Text{
				Position: Pt(x+3, y-3),
				Content:  fmt.Sprintf("(%s,%s)", FormatNumber(x), FormatNumber(y)),
				FontSize: 12,
				Style:    Filled(Gray),
			})
		}
	}
	return g, nil
}

// interior returns the number of multiples of step strictly inside (0, extent).
func interior(extent, step float64) float64 {
	if extent <= step {
		return 0
	}
	return math.Ceil(extent/step) - 1
}
