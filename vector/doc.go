// Package vector is the drawing surface used by sigil.
//
// A [Drawing] holds a tree of immutable elements: [Line], [Circle],
// [Polygon], [Path], [Text] and [Group]. Groups carry a [Transform] made of a
// translation followed by a rotation about a pivot, which is exactly what
// quadrant composition needs.
//
// # Playback
//
// Drawings are not serialized directly. They are played back to a [Backend],
// which receives one call per element in document order:
//
//	d := vector.NewDrawing(400, 400)
//	d.Add(&vector.Circle{Center: vector.Pt(200, 200), Radius: 190,
//	    Style: vector.Stroked(vector.Black, 2)})
//
//	rec := vector.NewRecorder()
//	_ = d.Playback(rec)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/sigil/vector"
//	    _ "github.com/gogpu/sigil/vector/svg"    // "svg", "svgz"
//	    _ "github.com/gogpu/sigil/vector/raster" // "png"
//	)
//
//	err := vector.Render(d, "svg", os.Stdout)
//
// The "commands" backend ([Recorder]) is always available.
//
// # Thread Safety
//
// Elements are safe to share once built. Backends are not safe for
// concurrent use; create one per playback.
package vector
