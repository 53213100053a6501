package sigil

import (
	"fmt"

	"github.com/gogpu/sigil/vector"
)

// Generator runs the sigil pipelines with one configuration.
// A Generator is immutable and safe for concurrent use as long as its glyph
// provider is.
type Generator struct {
	cfg     Config
	glyphs  GlyphProvider
	padding float64
	style   vector.Style
}

// NewGenerator creates a Generator. The configuration is validated once here.
func NewGenerator(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:     o.config,
		glyphs:  o.glyphs,
		padding: o.config.CirclePadding,
		style:   o.config.Stroke,
	}
	if g.glyphs == nil {
		g.glyphs = NewTextGlyphs(o.config)
	}
	if o.padding != nil {
		if *o.padding < 0 {
			return nil, invalid(StageConfig, "circle padding must not be negative", "")
		}
		g.padding = *o.padding
	}
	if o.style != nil {
		g.style = *o.style
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Compose builds the bare letterform of name: the normalized identifier is
// cut into letter blocks of up to three characters which are then composed
// by quadrants into one root block.
func (g *Generator) Compose(name string) (*Block, error) {
	if err := ValidateIdentifier(name); err != nil {
		return nil, err
	}
	runes := []rune(NormalizeName(name))

	chunks := splitLetters(runes)
	leaves := make([]*Block, 0, len(chunks))
	for _, chunk := range chunks {
		b, err := ComposeLetters(g.cfg, g.glyphs, chunk)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, b)
	}

	root, depth, err := ComposeQuads(g.cfg, leaves)
	if err != nil {
		return nil, err
	}
	Logger().Debug("sigil: composed", "name", name, "blocks", len(leaves), "depth", depth,
		"width", root.Width, "height", root.Height)
	return root, nil
}

// Make builds the letterform of name enclosed in a circle.
func (g *Generator) Make(name string) (*Block, error) {
	root, err := g.Compose(name)
	if err != nil {
		return nil, err
	}
	return WrapInCircle(root, g.padding, g.style), nil
}

// MakeNamed builds the circled letterform of name inside a pentagram.
func (g *Generator) MakeNamed(name string) (*Block, error) {
	circled, err := g.Make(name)
	if err != nil {
		return nil, err
	}
	return WrapInPentagram(g.cfg, circled, g.style), nil
}

// Procedural synthesizes stroke art for input and encloses it in a circle.
func (g *Generator) Procedural(input string) (*Block, error) {
	fig, err := Synthesize(g.cfg, input)
	if err != nil {
		return nil, err
	}
	return WrapInCircle(fig.Block(), g.padding, g.style), nil
}

// Mode selects a pipeline.
type Mode string

// Pipeline modes.
const (
	ModeLetters    Mode = "letters"
	ModeNamed      Mode = "named"
	ModeProcedural Mode = "procedural"
	ModeBare       Mode = "bare"
)

// Modes lists the valid pipeline modes.
func Modes() []Mode {
	return []Mode{ModeLetters, ModeNamed, ModeProcedural, ModeBare}
}

// Run dispatches input to the pipeline named by mode.
func (g *Generator) Run(mode Mode, input string) (*Block, error) {
	var (
		b   *Block
		err error
	)
	switch mode {
	case ModeLetters:
		b, err = g.Make(input)
	case ModeNamed:
		b, err = g.MakeNamed(input)
	case ModeProcedural:
		b, err = g.Procedural(input)
	case ModeBare:
		b, err = g.Compose(input)
	default:
		return nil, fmt.Errorf("sigil: unknown mode %q", mode)
	}
	if err != nil {
		return nil, err
	}
	Logger().Info("sigil: document ready", "mode", mode, "width", b.Width, "height", b.Height)
	return b, nil
}
