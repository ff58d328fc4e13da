package edit

import (
	"testing"

	"boxtree/level"
)

// edit returns a new level derived from l with one more wall on root 0.
func editStep(l *level.Level, n int) *level.Level {
	root := Resolve(l, Path{0})
	return ReplaceAt(l, Path{0}, ToggleWall(root, n, 0))
}

func TestHistoryLinearity(t *testing.T) {
	const n = 5
	base := level.NewEmptyLevel()
	orig := level.Serialize(base)

	h := NewHistory(base)
	texts := []string{orig}
	for i := 0; i < n; i++ {
		next := editStep(h.Current, i)
		h = h.Push(next)
		texts = append(texts, level.Serialize(next))
	}

	// N undos walk back to the original, bit for bit.
	for i := n; i > 0; i-- {
		h = h.Undo()
		if got := level.Serialize(h.Current); got != texts[i-1] {
			t.Fatalf("undo to step %d:\n%q\nwant:\n%q", i-1, got, texts[i-1])
		}
	}
	if h.CanUndo() {
		t.Fatalf("CanUndo after unwinding everything")
	}
	if got := level.Serialize(h.Current); got != orig {
		t.Fatalf("undo chain did not restore the original")
	}

	// Redo restores the most recently undone edit.
	h = h.Redo()
	if got := level.Serialize(h.Current); got != texts[1] {
		t.Fatalf("redo = %q, want %q", got, texts[1])
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory(level.NewEmptyLevel())
	h = h.Push(editStep(h.Current, 0))
	h = h.Push(editStep(h.Current, 1))
	h = h.Undo()
	if !h.CanRedo() {
		t.Fatalf("expected pending redo after undo")
	}

	h = h.Push(editStep(h.Current, 2))
	if h.CanRedo() {
		t.Fatalf("fresh edit must discard pending redo entries")
	}
}

func TestHistoryEmptyNoops(t *testing.T) {
	base := level.NewEmptyLevel()
	h := NewHistory(base)

	if got := h.Undo(); got.Current != base {
		t.Fatalf("Undo on empty history changed current")
	}
	if got := h.Redo(); got.Current != base {
		t.Fatalf("Redo on empty history changed current")
	}
}

func TestHistoryValueSemantics(t *testing.T) {
	h := NewHistory(level.NewEmptyLevel())
	h1 := h.Push(editStep(h.Current, 0))
	h2 := h1.Push(editStep(h1.Current, 1))

	// Operating on an older value must not disturb a newer one.
	_ = h1.Undo()
	if !h2.CanUndo() || len(h2.past) != 2 {
		t.Fatalf("undo on an older history value corrupted a newer one")
	}
}
