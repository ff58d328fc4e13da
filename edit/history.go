package edit

import "boxtree/level"

// History is a linear undo/redo stack of whole-level snapshots. It has
// value semantics: every operation returns a new History and never touches
// the receiver's backing storage. Levels are treated as immutable once
// recorded, so snapshots are stored by reference rather than re-copied.
type History struct {
	Current *level.Level
	past    []*level.Level
	future  []*level.Level
}

// NewHistory starts a history at the given level with nothing to undo.
func NewHistory(current *level.Level) History {
	return History{Current: current}
}

// CanUndo reports whether an undo would change the current level.
func (h History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo would change the current level.
func (h History) CanRedo() bool { return len(h.future) > 0 }

// Push commits an edit: the pre-edit level goes onto the past stack, next
// becomes current, and any pending redo entries are discarded. History is
// linear; a fresh edit after an undo invalidates the abandoned branch.
func (h History) Push(next *level.Level) History {
	past := make([]*level.Level, 0, len(h.past)+1)
	past = append(past, h.past...)
	past = append(past, h.Current)
	return History{Current: next, past: past}
}

// Undo steps back to the most recent past snapshot, moving the current
// level to the front of the redo queue. No-op when there is nothing to undo.
func (h History) Undo() History {
	if len(h.past) == 0 {
		return h
	}
	past := append([]*level.Level(nil), h.past[:len(h.past)-1]...)
	future := make([]*level.Level, 0, len(h.future)+1)
	future = append(future, h.Current)
	future = append(future, h.future...)
	return History{
		Current: h.past[len(h.past)-1],
		past:    past,
		future:  future,
	}
}

// Redo re-applies the most recently undone edit. No-op when the redo queue
// is empty.
func (h History) Redo() History {
	if len(h.future) == 0 {
		return h
	}
	past := make([]*level.Level, 0, len(h.past)+1)
	past = append(past, h.past...)
	past = append(past, h.Current)
	return History{
		Current: h.future[0],
		past:    past,
		future:  append([]*level.Level(nil), h.future[1:]...),
	}
}
