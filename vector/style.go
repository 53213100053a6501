package vector

// Color names used by the default styles.
const (
	Black = "black"
	Gray  = "gray"
	None  = "none"
)

// Style carries the paint attributes of a primitive.
// An empty Stroke or Fill leaves the attribute unset in the output.
type Style struct {
	Stroke      string
	Fill        string
	StrokeWidth float64
	Dash        string // stroke dash pattern, e.g. "5 5"
}

// Stroked returns an outline style with no fill.
func Stroked(color string, width float64) Style {
	return Style{Stroke: color, Fill: None, StrokeWidth: width}
}

// Filled returns a fill-only style.
func Filled(color string) Style {
	return Style{Fill: color}
}

// Pad returns the half stroke width that strokes add around geometry.
func (s Style) Pad() float64 {
	if s.Stroke == "" || s.Stroke == None {
		return 0
	}
	return s.StrokeWidth / 2
}
