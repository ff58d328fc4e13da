package edit

import (
	"testing"

	"boxtree/level"
)

func TestHitTestPriority(t *testing.T) {
	// Child block spans (0,0)-(1,1); a wall sits at (1,1) inside that span
	// and another at (3,3) in the open.
	b := &level.Block{Width: 5, Height: 5, Zoom: 1, Children: []level.Object{
		&level.Block{X: 0, Y: 0, Width: 2, Height: 2, Zoom: 1},
		&level.Wall{X: 1, Y: 1},
		&level.Wall{X: 3, Y: 3},
	}}

	cases := []struct {
		name string
		x, y int
		want Hit
	}{
		{"block_plain", 0, 0, Hit{Kind: HitBlock, Index: 0}},
		{"block_beats_wall_on_same_cell", 1, 1, Hit{Kind: HitBlock, Index: 0}},
		{"wall_alone", 3, 3, Hit{Kind: HitLeaf, Index: 2}},
		{"empty_cell", 4, 0, Hit{Kind: HitNone, Index: -1}},
		{"outside_bbox_edge", 2, 2, Hit{Kind: HitNone, Index: -1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HitTest(b, c.x, c.y); got != c.want {
				t.Fatalf("HitTest(%d, %d) = %+v, want %+v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestHitTestLastInsertedWins(t *testing.T) {
	b := &level.Block{Width: 6, Height: 6, Zoom: 1, Children: []level.Object{
		&level.Block{X: 0, Y: 0, Width: 4, Height: 4, Zoom: 1},
		&level.Block{X: 2, Y: 2, Width: 4, Height: 4, Zoom: 1},
	}}

	// Overlap region belongs to the later block.
	if got := HitTest(b, 3, 3); got != (Hit{Kind: HitBlock, Index: 1}) {
		t.Fatalf("overlap hit = %+v, want later block", got)
	}
	if got := HitTest(b, 0, 0); got != (Hit{Kind: HitBlock, Index: 0}) {
		t.Fatalf("non-overlap hit = %+v, want earlier block", got)
	}

	leaves := &level.Block{Width: 4, Height: 4, Zoom: 1, Children: []level.Object{
		&level.Floor{X: 1, Y: 1, Kind: level.FloorButton},
		&level.Wall{X: 1, Y: 1},
	}}
	if got := HitTest(leaves, 1, 1); got != (Hit{Kind: HitLeaf, Index: 1}) {
		t.Fatalf("stacked leaves hit = %+v, want later leaf", got)
	}
}
