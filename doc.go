// Package sigil turns a text token into a deterministic vector emblem.
//
// # Overview
//
// Two pipelines are available. The letterform pipeline cuts an identifier
// into blocks of up to three characters, lays each block out from glyphs,
// and composes the blocks by quadrants: groups of up to four siblings are
// placed in the corners of a doubled canvas, child i turned 90*i degrees
// about its own cell center, until one root block remains. The procedural
// pipeline walks the input character by character and draws one stroke mark
// per character, steered by parameters taken from the base-32 encoding of
// that character.
//
// Either result can be enclosed in a circle, and a circled letterform can be
// placed inside a pentagram for the "named" variant.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sigil"
//	    "github.com/gogpu/sigil/vector"
//	    _ "github.com/gogpu/sigil/vector/svg"
//	)
//
//	g, err := sigil.NewGenerator()
//	if err != nil {
//	    return err
//	}
//	b, err := g.Make("cat")
//	if err != nil {
//	    return err
//	}
//	return vector.SaveFile(b.Drawing(), "cat.svg")
//
// # Glyphs
//
// The composers never look inside a glyph. The default [TextGlyphs] emits
// text elements; package glyphs provides outline providers built on
// golang.org/x/image and go-text/typesetting whose output does not depend on
// installed fonts.
//
// # Errors
//
// Invalid input fails before anything is drawn, with a [*ValidationError]
// naming the stage and the violated rule. Malformed tokens fail with a
// [*DecodeError]. Both match their sentinel with errors.Is.
//
// # Logging
//
// sigil is silent by default. Install a [log/slog] logger with [SetLogger] to
// see composition levels and enclosure sizes at debug level.
package sigil
