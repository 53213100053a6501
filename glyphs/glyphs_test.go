package glyphs

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sigil"
	"github.com/gogpu/sigil/vector"
)

// unmapped is a private-use code point the Go fonts do not cover.
const unmapped = '\U0010FFFD'

func providers(t *testing.T) map[string]sigil.GlyphProvider {
	t.Helper()
	s, err := NewSFNT(nil)
	require.NoError(t, err)
	g, err := NewGoText(nil)
	require.NoError(t, err)
	return map[string]sigil.GlyphProvider{"sfnt": s, "gotext": g}
}

func TestRenderOutline(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			g, err := p.Render('a', 300)
			require.NoError(t, err)
			assert.Equal(t, 300.0, g.Width)
			assert.Equal(t, 300.0, g.Height)

			path, ok := g.Shape.(*vector.Path)
			require.True(t, ok)
			require.False(t, path.IsEmpty())
			assert.Equal(t, DefaultStyle, path.Style)

			b := path.Bounds()
			// Sits on the baseline at 210, inside the square, roughly centered.
			assert.InDelta(t, 210, b.MaxY, 6)
			assert.Greater(t, b.MinY, 0.0)
			assert.InDelta(t, 150, (b.MinX+b.MaxX)/2, 15)
			// An x-height letter at em 150 spans well under half the square.
			assert.Less(t, b.Width(), 150.0)
			assert.Less(t, b.Height(), 150.0)
			assert.Greater(t, b.Height(), 0.0)
		})
	}
}

func TestRenderMissingGlyph(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.Render(unmapped, 200)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingGlyph))

			var me *MissingGlyphError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, rune(unmapped), me.Rune)
		})
	}
}

func TestParsersAgree(t *testing.T) {
	all := providers(t)
	for _, r := range "Hgx_" {
		a, err := all["sfnt"].Render(r, 200)
		require.NoError(t, err)
		b, err := all["gotext"].Render(r, 200)
		require.NoError(t, err)

		ab := a.Shape.Bounds()
		bb := b.Shape.Bounds()
		assert.InDelta(t, ab.MinX, bb.MinX, 0.5, "%q", r)
		assert.InDelta(t, ab.MinY, bb.MinY, 0.5, "%q", r)
		assert.InDelta(t, ab.MaxX, bb.MaxX, 0.5, "%q", r)
		assert.InDelta(t, ab.MaxY, bb.MaxY, 0.5, "%q", r)
	}
}

func TestBadFontData(t *testing.T) {
	_, err := NewSFNT([]byte{})
	assert.ErrorIs(t, err, ErrEmptyFontData)
	_, err = NewGoText([]byte{})
	assert.ErrorIs(t, err, ErrEmptyFontData)

	junk := []byte("definitely not a font file")
	_, err = NewSFNT(junk)
	assert.Error(t, err)
	_, err = NewGoText(junk)
	assert.Error(t, err)
}

func TestSFNTFamily(t *testing.T) {
	p, err := NewSFNT(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Family())
}

func TestOutlineGlyphsInGenerator(t *testing.T) {
	p, err := NewGoText(nil)
	require.NoError(t, err)
	g, err := sigil.NewGenerator(sigil.WithGlyphProvider(p))
	require.NoError(t, err)

	b, err := g.MakeNamed("sigil")
	require.NoError(t, err)

	rec := vector.NewRecorder()
	require.NoError(t, b.Drawing().Playback(rec))

	paths, texts := 0, 0
	for _, c := range rec.Commands() {
		switch c.Type {
		case vector.CmdPath:
			paths++
		case vector.CmdText:
			texts++
		}
	}
	assert.Equal(t, 5, paths)
	assert.Zero(t, texts)
}

func TestConcurrentRender(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := p.Render(rune('a'+i), 200)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()
		})
	}
}
