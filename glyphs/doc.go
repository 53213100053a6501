// Package glyphs provides outline glyph providers for sigil.
//
// Unlike [sigil.TextGlyphs], which emits text elements and leaves the font to
// the viewer, these providers convert font outlines into filled vector paths.
// The result looks the same everywhere and survives rasterization.
//
// Two parsers are available:
//
//   - [SFNT] uses golang.org/x/image/font/sfnt
//   - [GoText] uses github.com/go-text/typesetting
//
// Both default to the Go Regular font when no font data is given, and both
// use the same layout as the text provider: font size size/2, centered
// horizontally, baseline at size/2 + size/5.
//
// Example:
//
//	p, err := glyphs.NewSFNT(nil)
//	if err != nil {
//	    return err
//	}
//	g, err := sigil.NewGenerator(sigil.WithGlyphProvider(p))
//
// Providers are safe for concurrent use.
package glyphs
