package vector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Drawing is a vector document: a canvas size and its top-level elements.
type Drawing struct {
	Width, Height float64
	Elements      []Element
}

// NewDrawing creates an empty drawing of the given size.
func NewDrawing(width, height float64) *Drawing {
	return &Drawing{Width: width, Height: height}
}

// Add appends elements to the drawing.
func (d *Drawing) Add(elements ...Element) {
	d.Elements = append(d.Elements, elements...)
}

// Playback replays the drawing to b, including Begin and End.
func (d *Drawing) Playback(b Backend) error {
	if err := b.Begin(d.Width, d.Height); err != nil {
		return fmt.Errorf("vector: begin: %w", err)
	}
	for _, e := range d.Elements {
		e.Playback(b)
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("vector: end: %w", err)
	}
	return nil
}

// Render plays the drawing back to a new instance of the named backend and
// writes the result to w.
func Render(d *Drawing, format string, w io.Writer) error {
	b, err := NewBackend(format)
	if err != nil {
		return err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return fmt.Errorf("vector: backend %q does not produce output", format)
	}
	if err := d.Playback(wb); err != nil {
		return err
	}
	_, err = wb.WriteTo(w)
	return err
}

// FormatForPath returns the backend name implied by the extension of path:
// ".svg" -> "svg", ".svgz" -> "svgz", ".png" -> "png". Unknown extensions
// return the extension itself without the dot.
func FormatForPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// SaveFile renders the drawing into the named file, choosing the backend from
// the file extension.
func SaveFile(d *Drawing, path string) error {
	format := FormatForPath(path)
	if format == "" {
		return fmt.Errorf("vector: %s: missing file extension", path)
	}
	if !IsRegistered(format) {
		return fmt.Errorf("vector: unknown backend %q for %s (forgotten import?)", format, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(d, format, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
