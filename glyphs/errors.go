package glyphs

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyphs package.
var (
	// ErrEmptyFontData is returned when font data is empty after defaults.
	ErrEmptyFontData = errors.New("glyphs: empty font data")

	// ErrMissingGlyph is wrapped by MissingGlyphError.
	ErrMissingGlyph = errors.New("glyphs: missing glyph")

	// ErrNotOutline is returned for bitmap or color glyphs.
	ErrNotOutline = errors.New("glyphs: glyph has no vector outline")
)

// MissingGlyphError is returned when the font has no glyph for a rune.
type MissingGlyphError struct {
	Rune rune
	Font string
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("glyphs: font %q has no glyph for %q", e.Font, e.Rune)
}

// Unwrap returns ErrMissingGlyph.
func (e *MissingGlyphError) Unwrap() error { return ErrMissingGlyph }
