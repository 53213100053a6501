// Package raster provides a PNG preview backend for vector drawings.
//
// The drawing is first serialized with the SVG backend, then parsed and
// scan-converted with oksvg and rasterx. Text elements are skipped by the
// rasterizer; use an outline glyph provider when the preview must show
// letters.
//
// Importing the package registers the "png" backend:
//
//	import _ "github.com/gogpu/sigil/vector/raster"
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/sigil/vector"
	"github.com/gogpu/sigil/vector/svg"
)

func init() {
	vector.Register("png", func() vector.Backend {
		return NewBackend()
	})
}

// MaxSide is the largest image side, in pixels, the backend will allocate.
// Larger drawings are scaled down to fit.
const MaxSide = 4096

// Backend rasterizes a drawing into an RGBA image.
type Backend struct {
	*svg.Backend

	scale  float64
	width  float64
	height float64
	img    *image.RGBA
}

// Ensure Backend implements the output interface.
var _ vector.WriterBackend = (*Backend)(nil)

// NewBackend creates a PNG backend at one pixel per drawing unit.
func NewBackend() *Backend {
	return NewBackendScale(1)
}

// NewBackendScale creates a PNG backend with the given pixels per unit.
// Non-positive scales fall back to 1.
func NewBackendScale(scale float64) *Backend {
	if scale <= 0 {
		scale = 1
	}
	return &Backend{Backend: svg.NewBackend(), scale: scale}
}

// Begin implements vector.Backend.
func (b *Backend) Begin(width, height float64) error {
	b.img = nil
	b.width, b.height = width, height
	return b.Backend.Begin(width, height)
}

// End implements vector.Backend. It rasterizes the collected document.
func (b *Backend) End() error {
	if err := b.Backend.End(); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(b.Backend.Bytes()), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("raster: parse: %w", err)
	}

	w, h := b.pixelSize()
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	b.img = img
	return nil
}

// pixelSize returns the image size for the current canvas and scale,
// shrunk uniformly so neither side exceeds MaxSide.
func (b *Backend) pixelSize() (int, int) {
	s := b.scale
	if longest := math.Max(b.width, b.height); longest*s > MaxSide {
		s = MaxSide / longest
	}
	w := int(math.Round(b.width * s))
	h := int(math.Round(b.height * s))
	return max(w, 1), max(h, 1)
}

// Image returns the rasterized image, or nil before End.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: WriteTo called before End")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.img); err != nil {
		return 0, fmt.Errorf("raster: encode: %w", err)
	}
	return buf.WriteTo(w)
}

// SaveToFile writes the PNG to the named file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
