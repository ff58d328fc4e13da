package edit

import "boxtree/level"

// HitKind says what a hit test found.
type HitKind int

const (
	HitNone HitKind = iota
	HitBlock
	HitLeaf
)

// Hit identifies a child of the tested block by index.
type Hit struct {
	Kind  HitKind
	Index int
}

// HitTest finds the child of b under the cell (x, y). Children are scanned
// in reverse order so the last-inserted object wins among overlaps. Blocks
// are tested first by bounding box; only when no block matches are leaves
// tested by exact cell. Blocks therefore take input priority over leaves at
// the same cell even though leaves commonly render on top.
func HitTest(b *level.Block, x, y int) Hit {
	for i := len(b.Children) - 1; i >= 0; i-- {
		if c, ok := b.Children[i].(*level.Block); ok {
			if x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height {
				return Hit{Kind: HitBlock, Index: i}
			}
		}
	}
	for i := len(b.Children) - 1; i >= 0; i-- {
		if leafAt(b.Children[i], x, y) {
			return Hit{Kind: HitLeaf, Index: i}
		}
	}
	return Hit{Kind: HitNone, Index: -1}
}
