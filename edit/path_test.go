package edit

import (
	"reflect"
	"testing"

	"boxtree/level"
)

// fixture returns a level with two roots; root 0 contains a wall, an inner
// block (which itself contains a wall), and a floor, in that order.
func fixture() *level.Level {
	inner := &level.Block{X: 2, Y: 2, ID: 2, Width: 2, Height: 2, Zoom: 1, Children: []level.Object{
		&level.Wall{X: 0, Y: 1},
	}}
	root := &level.Block{ID: 0, Width: 6, Height: 6, Zoom: 1, Children: []level.Object{
		&level.Wall{X: 1, Y: 1},
		inner,
		&level.Floor{X: 5, Y: 5, Kind: level.FloorButton},
	}}
	other := &level.Block{ID: 9, Width: 3, Height: 3, Zoom: 1}
	return &level.Level{
		Header: level.Header{Version: 4, CustomLevelMusic: -1, CustomLevelPalette: -1},
		Roots:  []*level.Block{root, other},
	}
}

func TestResolve(t *testing.T) {
	lvl := fixture()

	cases := []struct {
		name   string
		path   Path
		wantID int
		found  bool
	}{
		{"root_0", Path{0}, 0, true},
		{"root_1", Path{1}, 9, true},
		{"inner", Path{0, 1}, 2, true},
		{"empty_path", Path{}, 0, false},
		{"root_out_of_range", Path{2}, 0, false},
		{"negative_root", Path{-1}, 0, false},
		{"leaf_mid_path", Path{0, 0}, 0, false},
		{"child_out_of_range", Path{0, 7}, 0, false},
		{"below_leaf", Path{0, 2, 0}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(lvl, c.path)
			if c.found {
				if got == nil {
					t.Fatalf("Resolve(%v) = nil, want block id %d", c.path, c.wantID)
				}
				if got.ID != c.wantID {
					t.Fatalf("Resolve(%v).ID = %d, want %d", c.path, got.ID, c.wantID)
				}
			} else if got != nil {
				t.Fatalf("Resolve(%v) = id %d, want nil", c.path, got.ID)
			}
		})
	}
}

func TestReplaceAt(t *testing.T) {
	lvl := fixture()
	before := level.Serialize(lvl)

	repl := &level.Block{ID: 42, Width: 4, Height: 4, Zoom: 1}
	out := ReplaceAt(lvl, Path{0, 1}, repl)

	if level.Serialize(lvl) != before {
		t.Fatalf("ReplaceAt mutated its input")
	}
	got := Resolve(out, Path{0, 1})
	if got == nil || got.ID != 42 {
		t.Fatalf("replaced slot = %+v, want id 42", got)
	}
	// Sibling structure is untouched.
	if _, ok := out.Roots[0].Children[0].(*level.Wall); !ok {
		t.Fatalf("sibling wall lost")
	}
	if out.Roots[1].ID != 9 {
		t.Fatalf("other root changed: %+v", out.Roots[1])
	}
}

func TestReplaceAtRoot(t *testing.T) {
	lvl := fixture()
	repl := &level.Block{ID: 77, Width: 2, Height: 2, Zoom: 1}
	out := ReplaceAt(lvl, Path{1}, repl)
	if out.Roots[1].ID != 77 {
		t.Fatalf("root slot = %+v, want id 77", out.Roots[1])
	}
	if lvl.Roots[1].ID != 9 {
		t.Fatalf("input level mutated")
	}
}

func TestReplaceAtBadPathIsNoop(t *testing.T) {
	lvl := fixture()
	repl := &level.Block{ID: 42, Width: 1, Height: 1, Zoom: 1}

	cases := []struct {
		name string
		path Path
	}{
		{"root_out_of_range", Path{5}},
		{"empty", Path{}},
		{"through_leaf", Path{0, 0, 0}},
		{"leaf_slot", Path{0, 2}},
		{"child_out_of_range", Path{0, 9}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := ReplaceAt(lvl, c.path, repl)
			if !reflect.DeepEqual(out, lvl) {
				t.Fatalf("ReplaceAt(%v) changed the level", c.path)
			}
			// Still a fresh copy, not the same value.
			if out == lvl {
				t.Fatalf("ReplaceAt returned its input")
			}
		})
	}
}
