package sigil

import (
	"fmt"
	"math"

	"github.com/gogpu/sigil/vector"
)

// Default configuration values.
const (
	DefaultGridStep              = 100
	DefaultSmallFactor           = 2
	DefaultLargeFactor           = 3
	DefaultFullFactor            = 4
	DefaultPentagramScale        = 3
	DefaultPentagramMarginFactor = 1
	DefaultCirclePadding         = 1
	DefaultFontFamily            = "Helmswald Post"
	DefaultStrokeWidth           = 2
)

// Config holds the geometry constants shared by every component.
// It is an immutable value: build it once and pass it explicitly.
type Config struct {
	// GridStep is the base grid unit. All block sizes are multiples of it.
	GridStep float64

	// Glyph and block sizes as multiples of GridStep.
	SmallFactor float64
	LargeFactor float64
	FullFactor  float64

	// The pentagram canvas side is block height * PentagramScale plus
	// PentagramMarginFactor grid units.
	PentagramScale        float64
	PentagramMarginFactor float64

	// CirclePadding is added on each side of a block wrapped in a circle.
	CirclePadding float64

	// FontFamily is used by the text glyph provider.
	FontFamily string

	// Stroke is the style of frames and main strokes.
	Stroke vector.Style
}

// DefaultConfig returns the standard geometry: grid 100, small 200,
// large 300, full 400.
func DefaultConfig() Config {
	return Config{
		GridStep:              DefaultGridStep,
		SmallFactor:           DefaultSmallFactor,
		LargeFactor:           DefaultLargeFactor,
		FullFactor:            DefaultFullFactor,
		PentagramScale:        DefaultPentagramScale,
		PentagramMarginFactor: DefaultPentagramMarginFactor,
		CirclePadding:         DefaultCirclePadding,
		FontFamily:            DefaultFontFamily,
		Stroke:                vector.Stroked(vector.Black, DefaultStrokeWidth),
	}
}

// SmallUnit returns the side of a small glyph.
func (c Config) SmallUnit() float64 { return c.GridStep * c.SmallFactor }

// LargeUnit returns the side of a large glyph.
func (c Config) LargeUnit() float64 { return c.GridStep * c.LargeFactor }

// FullUnit returns the side of a two or three letter block, which is also
// the base cell of quadrant composition.
func (c Config) FullUnit() float64 { return c.GridStep * c.FullFactor }

// PentagramMargin returns the margin added to the pentagram canvas.
func (c Config) PentagramMargin() float64 { return c.GridStep * c.PentagramMarginFactor }

// Validate checks that the geometry can hold the letter layout.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"GridStep", c.GridStep},
		{"SmallFactor", c.SmallFactor},
		{"LargeFactor", c.LargeFactor},
		{"FullFactor", c.FullFactor},
		{"PentagramScale", c.PentagramScale},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return invalid(StageConfig, fmt.Sprintf("%s must be positive and finite, got %v", p.name, p.v), "")
		}
	}
	if c.PentagramMarginFactor < 0 || c.CirclePadding < 0 {
		return invalid(StageConfig, "margins must not be negative", "")
	}
	if c.LargeUnit() > c.FullUnit() {
		return invalid(StageConfig, "large glyph does not fit in a full block", "")
	}
	if 2*c.SmallUnit() > c.FullUnit() {
		return invalid(StageConfig, "two small glyphs do not fit across a full block", "")
	}
	return nil
}
