package sigil

import "github.com/gogpu/sigil/vector"

// Placement positions one child inside a Block. The child is translated by
// Offset, then rotated by Angle degrees about Pivot (in the block's frame).
type Placement struct {
	Element vector.Element
	Offset  vector.Point
	Angle   float64
	Pivot   vector.Point
}

// Transform returns the placement as a vector transform.
func (p Placement) Transform() vector.Transform {
	return vector.Transform{Offset: p.Offset, Angle: p.Angle, Pivot: p.Pivot}
}

// Block is a composite drawable with a fixed box. Letter blocks have
// Level 0; a block produced by quadrant composition at depth d has Level d+1.
//
// Blocks are write-once: composers build new blocks and never modify the
// ones they receive.
type Block struct {
	Width, Height float64
	Level         int
	Children      []Placement
}

// NewBlock returns an empty block of the given size.
func NewBlock(width, height float64) *Block {
	return &Block{Width: width, Height: height}
}

// Place appends a child at offset with no rotation.
func (b *Block) Place(e vector.Element, offset vector.Point) {
	b.Children = append(b.Children, Placement{Element: e, Offset: offset})
}

// Add appends a placement.
func (b *Block) Add(p Placement) {
	b.Children = append(b.Children, p)
}

// Size returns the block's width and height.
func (b *Block) Size() (float64, float64) { return b.Width, b.Height }

// Center returns the center of the block's box.
func (b *Block) Center() vector.Point { return vector.Pt(b.Width/2, b.Height/2) }

// Playback implements vector.Element. Every child is wrapped in its own
// group carrying the placement transform.
func (b *Block) Playback(be vector.Backend) {
	for _, c := range b.Children {
		be.BeginGroup(c.Transform())
		c.Element.Playback(be)
		be.EndGroup()
	}
}

// Bounds implements vector.Element. A block always reports its nominal
// box, regardless of how far its glyphs reach.
func (b *Block) Bounds() vector.Rect {
	return vector.NewRect(0, 0, b.Width, b.Height)
}

// Drawing returns a document holding the block at its own size.
func (b *Block) Drawing() *vector.Drawing {
	d := vector.NewDrawing(b.Width, b.Height)
	d.Add(b)
	return d
}
