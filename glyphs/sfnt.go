package glyphs

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sigil"
	"github.com/gogpu/sigil/vector"
)

// SFNT renders glyph outlines with golang.org/x/image/font/sfnt.
type SFNT struct {
	// Style is applied to every outline path.
	Style vector.Style

	font *sfnt.Font
	name string

	mu  sync.Mutex // guards buf
	buf sfnt.Buffer
}

var _ sigil.GlyphProvider = (*SFNT)(nil)

// NewSFNT parses a TrueType or OpenType font. Nil data selects Go Regular.
func NewSFNT(data []byte) (*SFNT, error) {
	if data == nil {
		data = goregular.TTF
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to parse font: %w", err)
	}

	p := &SFNT{Style: DefaultStyle, font: f}
	if name, err := f.Name(&p.buf, sfnt.NameIDFamily); err == nil {
		p.name = name
	}
	sigil.Logger().Debug("glyphs: sfnt font loaded", "family", p.name, "glyphs", f.NumGlyphs())
	return p, nil
}

// Family returns the font family name, if the font has one.
func (p *SFNT) Family() string { return p.name }

// Render implements sigil.GlyphProvider.
func (p *SFNT) Render(r rune, size float64) (sigil.Glyph, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, err := p.font.GlyphIndex(&p.buf, r)
	if err != nil {
		return sigil.Glyph{}, fmt.Errorf("glyphs: glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return sigil.Glyph{}, &MissingGlyphError{Rune: r, Font: p.name}
	}

	ppem := floatToFixed(size / 2)
	adv, err := p.font.GlyphAdvance(&p.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return sigil.Glyph{}, fmt.Errorf("glyphs: advance for %q: %w", r, err)
	}

	segments, err := p.font.LoadGlyph(&p.buf, idx, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return sigil.Glyph{}, fmt.Errorf("glyphs: %q: %w", r, ErrNotOutline)
		}
		return sigil.Glyph{}, fmt.Errorf("glyphs: load %q: %w", r, err)
	}

	// Segments are already scaled to ppem with the Y axis pointing down.
	pen := newPen(newLayout(size, fixedToFloat64(adv)), p.Style)
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			pen.moveTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpLineTo:
			pen.lineTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			pen.quadTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), fixedToFloat64(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			pen.cubeTo(fixedToFloat64(a[0].X), fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), fixedToFloat64(a[1].Y),
				fixedToFloat64(a[2].X), fixedToFloat64(a[2].Y))
		}
	}
	return pen.glyph(size), nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
