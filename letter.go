package sigil

import (
	"fmt"
	"math"

	"github.com/gogpu/sigil/vector"
)

// MaxLetters is the number of characters one letter block holds.
const MaxLetters = 3

// ComposeLetters lays out one to three characters in a letter block.
//
// The first character is rendered at the large size and centered; the
// second, at the small size, goes to the bottom-right quadrant and the third
// to the bottom-left one. A single character gives a small x large block;
// two or three give a full x full block.
func ComposeLetters(cfg Config, glyphs GlyphProvider, letters []rune) (*Block, error) {
	if len(letters) == 0 || len(letters) > MaxLetters {
		return nil, invalid(StageLetters,
			fmt.Sprintf("a letter block holds 1 to %d characters, got %d", MaxLetters, len(letters)),
			string(letters))
	}
	if glyphs == nil {
		return nil, ErrNoGlyphProvider
	}

	width, height := cfg.SmallUnit(), cfg.LargeUnit()
	if len(letters) > 1 {
		width, height = cfg.FullUnit(), cfg.FullUnit()
	}
	b := NewBlock(width, height)

	// The large glyph is centered against a box half a grid unit taller
	// than itself.
	first := vector.Pt(
		math.Floor((width-cfg.LargeUnit())/2),
		math.Floor((height-(cfg.LargeFactor+0.5)*cfg.GridStep)/2),
	)
	slots := []struct {
		size   float64
		offset vector.Point
	}{
		{cfg.LargeUnit(), first},
		{cfg.SmallUnit(), vector.Pt(cfg.SmallUnit(), cfg.SmallUnit())},
		{cfg.SmallUnit(), vector.Pt(0, cfg.SmallUnit())},
	}

	for i, r := range letters {
		g, err := glyphs.Render(r, slots[i].size)
		if err != nil {
			return nil, fmt.Errorf("sigil: letter %q: %w", r, err)
		}
		if g.Shape == nil {
			return nil, fmt.Errorf("sigil: letter %q: provider returned an empty glyph", r)
		}
		b.Place(g.Shape, slots[i].offset)
	}
	return b, nil
}

// splitLetters cuts runes into consecutive chunks of at most MaxLetters.
func splitLetters(runes []rune) [][]rune {
	chunks := make([][]rune, 0, (len(runes)+MaxLetters-1)/MaxLetters)
	for start := 0; start < len(runes); start += MaxLetters {
		chunks = append(chunks, runes[start:min(start+MaxLetters, len(runes))])
	}
	return chunks
}
