package sigil

import "github.com/gogpu/sigil/vector"

// Option configures a Generator during creation.
//
// Example:
//
//	// Default geometry, text glyphs
//	g, err := sigil.NewGenerator()
//
//	// Outline glyphs and a wider circle margin
//	outlines, err := glyphs.NewSFNT(nil)
//	g, err := sigil.NewGenerator(
//	    sigil.WithGlyphProvider(outlines),
//	    sigil.WithCirclePadding(20),
//	)
type Option func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	config  Config
	glyphs  GlyphProvider
	padding *float64
	style   *vector.Style
}

func defaultOptions() generatorOptions {
	return generatorOptions{
		config: DefaultConfig(),
		glyphs: nil, // text glyphs for the final config
	}
}

// WithConfig replaces the default geometry.
func WithConfig(cfg Config) Option {
	return func(o *generatorOptions) {
		o.config = cfg
	}
}

// WithGlyphProvider sets the provider used for letterforms.
// A nil provider restores the default text glyphs.
func WithGlyphProvider(p GlyphProvider) Option {
	return func(o *generatorOptions) {
		o.glyphs = p
	}
}

// WithCirclePadding overrides Config.CirclePadding.
func WithCirclePadding(padding float64) Option {
	return func(o *generatorOptions) {
		o.padding = &padding
	}
}

// WithStyle overrides Config.Stroke for frames.
func WithStyle(s vector.Style) Option {
	return func(o *generatorOptions) {
		o.style = &s
	}
}
