package sigil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sigil/vector"
)

func TestGeneratorCatScenario(t *testing.T) {
	g, err := NewGenerator(WithCirclePadding(20))
	require.NoError(t, err)

	bare, err := g.Compose("cat")
	require.NoError(t, err)
	assert.Equal(t, 400.0, bare.Width)
	assert.Equal(t, 400.0, bare.Height)
	assert.Zero(t, bare.Level)
	assert.Len(t, bare.Children, 3)

	circled, err := g.Make("cat")
	require.NoError(t, err)
	assert.Equal(t, 440.0, circled.Width)
	circle := circled.Children[0].Element.(*vector.Circle)
	assert.Equal(t, 220.0, circle.Radius)
	assert.Equal(t, vector.Pt(220, 220), circle.Center)
	assert.Equal(t, vector.Pt(20, 20), circled.Children[1].Offset)
}

func TestGeneratorDefaults(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), g.Config())

	b, err := g.Make("cat")
	require.NoError(t, err)
	assert.Equal(t, 402.0, b.Width)

	named, err := g.MakeNamed("cat")
	require.NoError(t, err)
	assert.Equal(t, 402.0*3+100, named.Width)
	assert.Len(t, named.Children, 6)

	proc, err := g.Procedural("cat")
	require.NoError(t, err)
	assert.Equal(t, 102.0, proc.Width)
}

func TestGeneratorLongName(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	// Thirteen characters make five letter blocks: two levels of quadrants.
	b, err := g.Compose("abcdefghijklm")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Level)
	assert.Equal(t, 1600.0, b.Width)
	assert.Equal(t, 800.0, b.Height)
}

func TestGeneratorRejectsBeforeDrawing(t *testing.T) {
	calls := 0
	counting := GlyphFunc(func(r rune, size float64) (Glyph, error) {
		calls++
		return NewTextGlyphs(DefaultConfig()).Render(r, size)
	})
	g, err := NewGenerator(WithGlyphProvider(counting))
	require.NoError(t, err)

	for _, name := range []string{"", "1x", "a-b"} {
		_, err := g.Make(name)
		require.Error(t, err, "name %q", name)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, StageIdentifier, ve.Stage)
	}
	assert.Zero(t, calls)

	_, err = g.Procedural("")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestGeneratorProviderFailureAborts(t *testing.T) {
	errBroken := errors.New("broken font")
	g, err := NewGenerator(WithGlyphProvider(GlyphFunc(func(rune, float64) (Glyph, error) {
		return Glyph{}, errBroken
	})))
	require.NoError(t, err)

	b, err := g.MakeNamed("cat")
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, errBroken))
}

func TestNewGeneratorOptions(t *testing.T) {
	bad := DefaultConfig()
	bad.GridStep = -1
	_, err := NewGenerator(WithConfig(bad))
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = NewGenerator(WithCirclePadding(-5))
	assert.True(t, errors.Is(err, ErrValidation))

	red := vector.Stroked("red", 3)
	g, err := NewGenerator(WithStyle(red))
	require.NoError(t, err)
	b, err := g.Make("x")
	require.NoError(t, err)
	assert.Equal(t, red, b.Children[0].Element.(*vector.Circle).Style)
}

func TestGeneratorRun(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	for _, mode := range Modes() {
		b, err := g.Run(mode, "sigil")
		require.NoError(t, err, "mode %s", mode)
		assert.NotNil(t, b)
	}
	_, err = g.Run("spiral", "sigil")
	assert.Error(t, err)
}

func TestGeneratorOutputDeterministic(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	render := func() string {
		b, err := g.MakeNamed("make_sigil")
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, vector.Render(b.Drawing(), "commands", &buf))
		return buf.String()
	}
	first := render()
	assert.Equal(t, first, render())
	assert.Contains(t, first, `Text (150,210) "m"`)
	assert.Contains(t, first, `Text (100,140) "a"`)
}
