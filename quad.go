package sigil

import (
	"fmt"
	"math"

	"github.com/gogpu/sigil/vector"
)

// QuadSize is the number of blocks grouped into one parent per level.
const QuadSize = 4

// quadPositions returns the top-left corner of each child slot for a group
// of n children in cells of side c.
func quadPositions(n int, c float64) []vector.Point {
	switch n {
	case 1:
		return []vector.Point{{}}
	case 2:
		return []vector.Point{{}, {X: c}}
	case 3:
		return []vector.Point{{}, {Y: c}, {X: c}}
	default:
		return []vector.Point{{}, {Y: c}, {X: c}, {X: c, Y: c}}
	}
}

// quadBox returns the size of a parent holding n children in cells of side c.
func quadBox(n int, c float64) (float64, float64) {
	switch n {
	case 1:
		return c, c
	case 2:
		return 2 * c, c
	default:
		return 2 * c, 2 * c
	}
}

// CellSize returns the side of a quadrant cell at the given depth:
// FullUnit * 2^depth.
func CellSize(cfg Config, depth int) float64 {
	return math.Ldexp(cfg.FullUnit(), depth)
}

// ComposeLevel performs one level of quadrant composition. Consecutive
// groups of up to four blocks become one parent each; child i of a group is
// rotated by 90*i degrees about the center of its own cell.
func ComposeLevel(cfg Config, blocks []*Block, depth int) []*Block {
	c := CellSize(cfg, depth)
	out := make([]*Block, 0, (len(blocks)+QuadSize-1)/QuadSize)

	for start := 0; start < len(blocks); start += QuadSize {
		group := blocks[start:min(start+QuadSize, len(blocks))]
		w, h := quadBox(len(group), c)
		parent := &Block{Width: w, Height: h, Level: depth + 1}

		for i, child := range quadPositions(len(group), c) {
			parent.Add(Placement{
				Element: group[i],
				Offset:  child,
				Angle:   float64(90 * i),
				Pivot:   child.Add(vector.Pt(c/2, c/2)),
			})
		}
		out = append(out, parent)
	}

	Logger().Debug("sigil: quad level",
		"depth", depth, "cell", c, "in", len(blocks), "out", len(out))
	return out
}

// ComposeQuads composes blocks level by level until one remains and returns
// it with the number of levels composed, which is ceil(log4(len(blocks))).
//
// The returned depth is a count, not the index of the last level: five
// blocks need two levels (indices 0 and 1), so the depth is 2, the root's
// Level is 2 and its cells have side CellSize(cfg, 1). A single block is
// returned unchanged at depth 0.
func ComposeQuads(cfg Config, blocks []*Block) (*Block, int, error) {
	if len(blocks) == 0 {
		return nil, 0, invalid(StageQuad, "at least one block is required", "")
	}
	for i, b := range blocks {
		if b == nil {
			return nil, 0, invalid(StageQuad, fmt.Sprintf("block %d is nil", i), "")
		}
	}

	level := blocks
	depth := 0
	for len(level) > 1 {
		level = ComposeLevel(cfg, level, depth)
		depth++
	}
	return level[0], depth, nil
}
