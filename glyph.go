package sigil

import "github.com/gogpu/sigil/vector"

// Glyph is the drawable shape of one character together with its box.
// The shape is opaque to the composers.
type Glyph struct {
	Shape  vector.Element
	Width  float64
	Height float64
}

// GlyphProvider renders one character as a glyph that fills a square of
// the given side.
type GlyphProvider interface {
	Render(r rune, size float64) (Glyph, error)
}

// GlyphFunc adapts an ordinary function to GlyphProvider.
type GlyphFunc func(r rune, size float64) (Glyph, error)

// Render calls f(r, size).
func (f GlyphFunc) Render(r rune, size float64) (Glyph, error) {
	return f(r, size)
}

// TextGlyphs renders characters as text elements, leaving font selection to
// whatever displays the document.
type TextGlyphs struct {
	FontFamily string
	Style      vector.Style
}

// NewTextGlyphs returns a text provider for the configured font family.
func NewTextGlyphs(cfg Config) *TextGlyphs {
	return &TextGlyphs{FontFamily: cfg.FontFamily}
}

// Render implements GlyphProvider. The character is centered horizontally
// with its baseline at size/2 + size/5, using a font size of size/2.
func (g *TextGlyphs) Render(r rune, size float64) (Glyph, error) {
	return Glyph{
		Shape: &vector.Text{
			Position:   vector.Pt(size/2, size/2+size/5),
			Content:    string(r),
			FontSize:   size / 2,
			FontFamily: g.FontFamily,
			Anchor:     vector.AnchorMiddle,
			Style:      g.Style,
		},
		Width:  size,
		Height: size,
	}, nil
}
