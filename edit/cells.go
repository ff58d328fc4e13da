package edit

import "boxtree/level"

// Cell helpers operate on a single resolved block and return a new block;
// the input is never modified. They maintain the convention that a cell
// holds at most one leaf object, which the parser itself does not enforce.

func leafAt(o level.Object, x, y int) bool {
	switch v := o.(type) {
	case *level.Ref:
		return v.X == x && v.Y == y
	case *level.Wall:
		return v.X == x && v.Y == y
	case *level.Floor:
		return v.X == x && v.Y == y
	}
	return false
}

// removeLeaves drops every non-block child occupying the cell.
func removeLeaves(children []level.Object, x, y int) []level.Object {
	out := children[:0]
	for _, c := range children {
		if leafAt(c, x, y) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ToggleWall removes the wall at the cell if one is present, otherwise
// replaces whatever leaf occupies the cell with a wall.
func ToggleWall(b *level.Block, x, y int) *level.Block {
	out := b.Clone()
	for i, c := range out.Children {
		if w, ok := c.(*level.Wall); ok && w.X == x && w.Y == y {
			out.Children = append(out.Children[:i], out.Children[i+1:]...)
			return out
		}
	}
	out.Children = removeLeaves(out.Children, x, y)
	out.Children = append(out.Children, &level.Wall{X: x, Y: y})
	return out
}

// PlaceFloor replaces the floor at f's cell in place when one is present,
// preserving its z position, and appends otherwise. Any other leaf at the
// cell is dropped.
func PlaceFloor(b *level.Block, f *level.Floor) *level.Block {
	out := b.Clone()
	for i, c := range out.Children {
		if old, ok := c.(*level.Floor); ok && old.X == f.X && old.Y == f.Y {
			out.Children[i] = f
			return out
		}
	}
	out.Children = removeLeaves(out.Children, f.X, f.Y)
	out.Children = append(out.Children, f)
	return out
}

// PlaceRef appends a ref to the target id at the cell, overwriting any
// existing leaf there. Blocks at the cell are left alone.
func PlaceRef(b *level.Block, x, y, targetID int) *level.Block {
	out := b.Clone()
	out.Children = removeLeaves(out.Children, x, y)
	out.Children = append(out.Children, &level.Ref{X: x, Y: y, ID: targetID})
	return out
}

// RemoveAt drops any non-block leaf at the cell. Child blocks are never
// removed by cell coordinate; they are addressed by path.
func RemoveAt(b *level.Block, x, y int) *level.Block {
	out := b.Clone()
	out.Children = removeLeaves(out.Children, x, y)
	return out
}

// AddChildBlock appends a new child block of the given size and id at the
// cell. The child inherits the parent's color.
func AddChildBlock(b *level.Block, x, y, width, height, id int) *level.Block {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	out := b.Clone()
	out.Children = append(out.Children, &level.Block{
		X:      x,
		Y:      y,
		ID:     id,
		Width:  width,
		Height: height,
		Hue:    b.Hue,
		Sat:    b.Sat,
		Val:    b.Val,
		Zoom:   1,
	})
	return out
}
