package vector

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathData(t *testing.T) {
	p := NewPath(Stroked(Black, 2)).
		MoveTo(10, 10).
		QuadTo(12.5, 5, 15, 10).
		LineTo(15, 20.25).
		CubicTo(1, 2, 3, 4, 5, 6).
		Close()

	assert.Equal(t, "M 10 10 Q 12.5 5 15 10 L 15 20.25 C 1 2 3 4 5 6 Z", p.Data())
	assert.Equal(t, Pt(10, 10), p.CurrentPoint())
	assert.Len(t, p.Commands(), 5)
	assert.False(t, p.IsEmpty())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{170, "170"},
		{12.5, "12.5"},
		{1.0 / 3, "0.3333"},
		{-7.25, "-7.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestElementBounds(t *testing.T) {
	c := &Circle{Center: Pt(170, 170), Radius: 170}
	assert.Equal(t, NewRect(0, 0, 340, 340), c.Bounds())

	l := &Line{Start: Pt(0, 10), End: Pt(20, 0)}
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 10}, l.Bounds())

	poly := &Polygon{Points: []Point{{1, 1}, {5, 2}, {3, 7}}}
	assert.Equal(t, Rect{MinX: 1, MinY: 1, MaxX: 5, MaxY: 7}, poly.Bounds())
	assert.Equal(t, Rect{}, (&Polygon{}).Bounds())

	g := NewGroup(Translation(100, 50), c)
	assert.Equal(t, NewRect(100, 50, 340, 340), g.Bounds())

	// A quarter turn swaps the extent of a horizontal line.
	turned := NewGroup(Transform{Angle: 90}, &Line{Start: Pt(0, 0), End: Pt(20, 0)})
	assert.InDelta(t, 0, turned.Bounds().Width(), 1e-9)
	assert.InDelta(t, 20, turned.Bounds().Height(), 1e-9)
}

func TestGroupPlayback(t *testing.T) {
	inner := NewGroup(Transform{Angle: 90, Pivot: Pt(5, 5)},
		&Circle{Center: Pt(5, 5), Radius: 5, Style: Stroked(Black, 1)})
	outer := NewGroup(Translation(10, 0), inner)
	outer.Add(&Line{Start: Pt(0, 0), End: Pt(1, 1)})

	d := NewDrawing(20, 20)
	d.Add(outer)

	rec := NewRecorder()
	require.NoError(t, d.Playback(rec))

	var types []CommandType
	for _, c := range rec.Commands() {
		types = append(types, c.Type)
	}
	assert.Equal(t, []CommandType{
		CmdBegin,
		CmdBeginGroup,
		CmdBeginGroup,
		CmdCircle,
		CmdEndGroup,
		CmdLine,
		CmdEndGroup,
		CmdEnd,
	}, types)
	assert.Zero(t, rec.Depth())
	assert.Equal(t, float64(90), rec.Commands()[2].Transform.Angle)
}

func TestRecorderWriteTo(t *testing.T) {
	d := NewDrawing(10, 10)
	d.Add(&Circle{Center: Pt(5, 5), Radius: 2, Style: Stroked(Black, 1)})

	var buf bytes.Buffer
	require.NoError(t, Render(d, "commands", &buf))
	assert.Equal(t, "Begin (10,10)\nCircle (5,5) r=2 stroke=black fill=none width=1\nEnd\n", buf.String())
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "BeginGroup", CmdBeginGroup.String())
	assert.Equal(t, "Unknown", CommandType(200).String())
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, "svg", FormatForPath("out/sigil.svg"))
	assert.Equal(t, "svgz", FormatForPath("sigil.SVGZ"))
	assert.Equal(t, "png", FormatForPath("/tmp/a.b/sigil.png"))
	assert.Equal(t, "", FormatForPath("sigil"))
}

func TestSaveFile(t *testing.T) {
	d := NewDrawing(10, 10)
	d.Add(&Line{Start: Pt(0, 0), End: Pt(10, 10), Style: Stroked(Black, 1)})

	dir := t.TempDir()
	path := filepath.Join(dir, "sigil.commands")
	require.NoError(t, SaveFile(d, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Line (0,0) (10,10)")

	assert.Error(t, SaveFile(d, filepath.Join(dir, "sigil")))
	assert.Error(t, SaveFile(d, filepath.Join(dir, "sigil.unknown")))
}

func TestGridOverlay(t *testing.T) {
	g, err := GridOverlay(400, 300, 100, false)
	require.NoError(t, err)
	// Three vertical and two horizontal interior lines.
	assert.Len(t, g.Children, 5)
	line := g.Children[0].(*Line)
	assert.Equal(t, Pt(100, 0), line.Start)
	assert.Equal(t, "5 5", line.Style.Dash)

	labeled, err := GridOverlay(400, 300, 100, true)
	require.NoError(t, err)
	assert.Len(t, labeled.Children, 5+3*2)
	text := labeled.Children[5].(*Text)
	assert.Equal(t, "(100,100)", text.Content)
}

func TestGridOverlayLimits(t *testing.T) {
	tests := []struct {
		name   string
		step   float64
		labels bool
	}{
		{"zero step", 0, false},
		{"negative step", -10, false},
		{"NaN step", math.NaN(), false},
		{"too many lines", 0.001, false},
		{"tiny step", 1e-300, true},
		{"too many labels", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GridOverlay(400, 300, tt.step, tt.labels)
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}

	// 199 + 149 lines are fine without labels; 199*149 labels are not.
	_, err := GridOverlay(400, 300, 2, false)
	assert.NoError(t, err)
	_, err = GridOverlay(400, 300, 2, true)
	assert.ErrorIs(t, err, ErrGridTooDense)
}
