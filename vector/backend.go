package vector

import "io"

// Backend is the interface that all output backends must implement.
// Backends receive drawing calls in document order and translate them to
// their output format (SVG elements, raster pixels, command logs, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Accept Begin before any drawing call and End after the last one
//  2. Nest BeginGroup/EndGroup calls like a stack
//  3. Treat the element pointers as read-only
type Backend interface {
	// Begin initializes the backend for a document of the given size.
	Begin(width, height float64) error

	// End finalizes the document. Output methods are valid afterwards.
	End() error

	// BeginGroup opens a group whose children are placed with t.
	BeginGroup(t Transform)

	// EndGroup closes the innermost open group.
	EndGroup()

	DrawLine(l *Line)
	DrawCircle(c *Circle)
	DrawPolygon(p *Polygon)
	DrawPath(p *Path)
	DrawText(t *Text)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered document to w.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}
