// Command sigil draws a sigil for a name and writes it to a file.
//
// Usage:
//
//	sigil [flags] <name>
//
// The output format follows the file extension: .svg, .svgz, .png or
// .commands (a plain-text command listing).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sigil"
	"github.com/gogpu/sigil/glyphs"
	"github.com/gogpu/sigil/vector"
	_ "github.com/gogpu/sigil/vector/raster"
	_ "github.com/gogpu/sigil/vector/svg"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("sigil: %v", err)
	}
}

type options struct {
	mode     string
	output   string
	fontPath string
	outline  bool
	padding  float64
	grid     float64
	labels   bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, string, error) {
	var o options
	fs := flag.NewFlagSet("sigil", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mode, "mode", string(sigil.ModeLetters), "pipeline: "+modeList())
	fs.StringVar(&o.output, "o", "sigil.svg", "output file; the extension selects the format")
	fs.StringVar(&o.fontPath, "font", "", "TrueType/OpenType font for outline glyphs")
	fs.BoolVar(&o.outline, "outline", false, "draw letters as outlines using the built-in Go font")
	fs.Float64Var(&o.padding, "padding", sigil.DefaultCirclePadding, "gap between the letterform and its circle")
	fs.Float64Var(&o.grid, "grid", 0, "overlay a debug grid with this step (0 disables)")
	fs.BoolVar(&o.labels, "labels", false, "label grid intersections")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sigil [flags] <name>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, "", fmt.Errorf("expected exactly one name, got %d", fs.NArg())
	}
	return o, fs.Arg(0), nil
}

func run(args []string, stderr io.Writer) error {
	o, name, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.verbose {
		sigil.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []sigil.Option{sigil.WithCirclePadding(o.padding)}
	provider, err := glyphProvider(o)
	if err != nil {
		return err
	}
	if provider != nil {
		opts = append(opts, sigil.WithGlyphProvider(provider))
	}

	gen, err := sigil.NewGenerator(opts...)
	if err != nil {
		return err
	}
	block, err := gen.Run(sigil.Mode(o.mode), name)
	if err != nil {
		return err
	}

	d := block.Drawing()
	if o.grid > 0 {
		grid, err := vector.GridOverlay(block.Width, block.Height, o.grid, o.labels)
		if err != nil {
			return err
		}
		d.Add(grid)
	}
	if err := vector.SaveFile(d, o.output); err != nil {
		return err
	}
	log.Printf("sigil saved to %s (%vx%v)", o.output, block.Width, block.Height)
	return nil
}

func glyphProvider(o options) (sigil.GlyphProvider, error) {
	switch {
	case o.fontPath != "":
		data, err := os.ReadFile(o.fontPath)
		if err != nil {
			return nil, err
		}
		return glyphs.NewSFNT(data)
	case o.outline:
		return glyphs.NewSFNT(nil)
	default:
		return nil, nil
	}
}

func modeList() string {
	modes := sigil.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}
