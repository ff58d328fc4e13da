// Package edit provides tree addressing, copy-on-write mutation and linear
// undo/redo on top of the level data model. Every operation treats its
// inputs as immutable: mutations return freshly copied values and a failed
// lookup degrades to a no-op rather than an error, because the coordinates
// driving these calls come from interactive input that may reference stale
// state.
package edit

import "boxtree/level"

// Path locates a block by descent: the first index selects a root, each
// subsequent index selects a child of the previously selected block. A path
// never addresses a leaf.
type Path []int

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Resolve walks the path and returns the addressed block, or nil when any
// index is out of range or a non-block child is encountered mid-walk.
func Resolve(l *level.Level, p Path) *level.Block {
	if len(p) == 0 {
		return nil
	}
	if p[0] < 0 || p[0] >= len(l.Roots) {
		return nil
	}
	cur := l.Roots[p[0]]
	for _, idx := range p[1:] {
		if idx < 0 || idx >= len(cur.Children) {
			return nil
		}
		child, ok := cur.Children[idx].(*level.Block)
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// ReplaceAt returns a deep copy of the level with only the block slot at the
// given path replaced by b. When the path cannot be resolved the copy is
// returned unchanged.
func ReplaceAt(l *level.Level, p Path, b *level.Block) *level.Level {
	out := l.Clone()
	if len(p) == 0 {
		return out
	}
	if p[0] < 0 || p[0] >= len(out.Roots) {
		return out
	}
	if len(p) == 1 {
		out.Roots[p[0]] = b
		return out
	}

	cur := out.Roots[p[0]]
	for _, idx := range p[1 : len(p)-1] {
		if idx < 0 || idx >= len(cur.Children) {
			return out
		}
		child, ok := cur.Children[idx].(*level.Block)
		if !ok {
			return out
		}
		cur = child
	}
	last := p[len(p)-1]
	if last < 0 || last >= len(cur.Children) {
		return out
	}
	if _, ok := cur.Children[last].(*level.Block); !ok {
		return out
	}
	cur.Children[last] = b
	return out
}
