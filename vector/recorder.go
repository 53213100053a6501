package vector

import (
	"io"
	"strings"
)

func init() {
	Register("commands", func() Backend {
		return NewRecorder()
	})
}

// Recorder is a Backend that captures every call as a Command.
// It is used to inspect drawings in tests and to dump them as text.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	depth    int
}

var _ WriterBackend = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Depth returns the number of currently open groups.
func (r *Recorder) Depth() int {
	return r.depth
}

// Begin implements Backend.
func (r *Recorder) Begin(width, height float64) error {
	r.commands = append(r.commands[:0], Command{Type: CmdBegin, Points: []Point{{width, height}}})
	r.depth = 0
	return nil
}

// End implements Backend.
func (r *Recorder) End() error {
	r.commands = append(r.commands, Command{Type: CmdEnd})
	return nil
}

// BeginGroup implements Backend.
func (r *Recorder) BeginGroup(t Transform) {
	r.depth++
	r.commands = append(r.commands, Command{Type: CmdBeginGroup, Transform: t})
}

// EndGroup implements Backend.
func (r *Recorder) EndGroup() {
	if r.depth > 0 {
		r.depth--
	}
	r.commands = append(r.commands, Command{Type: CmdEndGroup})
}

// DrawLine implements Backend.
func (r *Recorder) DrawLine(l *Line) {
	r.commands = append(r.commands, Command{
		Type:   CmdLine,
		Points: []Point{l.Start, l.End},
		Style:  l.Style,
	})
}

// DrawCircle implements Backend.
func (r *Recorder) DrawCircle(c *Circle) {
	r.commands = append(r.commands, Command{
		Type:   CmdCircle,
		Points: []Point{c.Center},
		Radius: c.Radius,
		Style:  c.Style,
	})
}

// DrawPolygon implements Backend.
func (r *Recorder) DrawPolygon(p *Polygon) {
	pts := make([]Point, len(p.Points))
	copy(pts, p.Points)
	r.commands = append(r.commands, Command{
		Type:   CmdPolygon,
		Points: pts,
		Style:  p.Style,
	})
}

// DrawPath implements Backend.
func (r *Recorder) DrawPath(p *Path) {
	r.commands = append(r.commands, Command{
		Type:  CmdPath,
		Data:  p.Data(),
		Style: p.Style,
	})
}

// DrawText implements Backend.
func (r *Recorder) DrawText(t *Text) {
	r.commands = append(r.commands, Command{
		Type:   CmdText,
		Points: []Point{t.Position},
		Data:   t.Content,
		Style:  t.Style,
	})
}

// WriteTo writes one command per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, c := range r.commands {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
