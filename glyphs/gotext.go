package glyphs

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sigil"
	"github.com/gogpu/sigil/vector"
)

// GoText renders glyph outlines with github.com/go-text/typesetting.
//
// font.Face caches lookups and is not safe for concurrent use, so calls to
// Render are serialized.
type GoText struct {
	// Style is applied to every outline path.
	Style vector.Style

	mu   sync.Mutex
	face *font.Face
	upem float64
}

var _ sigil.GlyphProvider = (*GoText)(nil)

// NewGoText parses a TrueType or OpenType font. Nil data selects Go Regular.
func NewGoText(data []byte) (*GoText, error) {
	if data == nil {
		data = goregular.TTF
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyphs: failed to parse font: %w", err)
	}
	upem := float64(face.Upem())
	if upem <= 0 {
		return nil, fmt.Errorf("glyphs: font reports %v units per em", upem)
	}
	sigil.Logger().Debug("glyphs: go-text font loaded", "upem", upem)
	return &GoText{Style: DefaultStyle, face: face, upem: upem}, nil
}

// Render implements sigil.GlyphProvider.
func (p *GoText) Render(r rune, size float64) (sigil.Glyph, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gid, ok := p.face.NominalGlyph(r)
	if !ok {
		return sigil.Glyph{}, &MissingGlyphError{Rune: r}
	}
	outline, ok := p.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return sigil.Glyph{}, fmt.Errorf("glyphs: %q: %w", r, ErrNotOutline)
	}

	// Outlines are in font units with the Y axis pointing up.
	scale := (size / 2) / p.upem
	advance := float64(p.face.HorizontalAdvance(gid)) * scale
	pen := newPen(newLayout(size, advance), p.Style)

	at := func(pt ot.SegmentPoint) (float64, float64) {
		return float64(pt.X) * scale, -float64(pt.Y) * scale
	}
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			pen.moveTo(at(a[0]))
		case ot.SegmentOpLineTo:
			pen.lineTo(at(a[0]))
		case ot.SegmentOpQuadTo:
			cx, cy := at(a[0])
			x, y := at(a[1])
			pen.quadTo(cx, cy, x, y)
		case ot.SegmentOpCubeTo:
			c1x, c1y := at(a[0])
			c2x, c2y := at(a[1])
			x, y := at(a[2])
			pen.cubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	return pen.glyph(size), nil
}
