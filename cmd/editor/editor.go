package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"boxtree/edit"
	"boxtree/level"
	"boxtree/watch"
)

type Tool int

const (
	ToolWall Tool = iota
	ToolFloor
	ToolBlock
	ToolRef
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "Wall"
	case ToolFloor:
		return "Floor"
	case ToolBlock:
		return "Block"
	case ToolRef:
		return "Ref"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// Editor is the interactive level editor. All document state lives in the
// history's current level; the editor itself only holds view state (the
// path of the block being edited, pan/zoom, tool selection).
type Editor struct {
	cfg      *Config
	ui       *ebitenui.UI
	toolBar  *ToolBar
	canvas   *Canvas
	watcher  *watch.Watcher
	history  edit.History
	path     edit.Path
	filename string
	tool     Tool
	refID    int

	clipboardOK bool
	status      string
	statusUntil time.Time
}

func NewEditor(cfg *Config, lvl *level.Level, filename string, clipboardOK bool) *Editor {
	ed := &Editor{
		cfg:         cfg,
		history:     edit.NewHistory(lvl),
		path:        edit.Path{0},
		filename:    filename,
		tool:        ToolWall,
		clipboardOK: clipboardOK,
	}
	ed.canvas = NewCanvas(cfg.CellSize)
	ed.ui, ed.toolBar = BuildEditorUI(func(t Tool) { ed.tool = t }, ed.tool)
	return ed
}

// block returns the block currently being edited. Undo can invalidate the
// view path, in which case the editor snaps back to the first root.
func (e *Editor) block() *level.Block {
	if b := edit.Resolve(e.history.Current, e.path); b != nil {
		return b
	}
	e.path = edit.Path{0}
	return edit.Resolve(e.history.Current, e.path)
}

// commit replaces the edited block and records the result as one undo step.
func (e *Editor) commit(b *level.Block) {
	next := edit.ReplaceAt(e.history.Current, e.path, b)
	e.history = e.history.Push(next)
}

func (e *Editor) setStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
	e.statusUntil = time.Now().Add(3 * time.Second)
}

func (e *Editor) Update() error {
	e.ui.Update()
	e.drainWatcher()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		e.history = e.history.Undo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		e.history = e.history.Redo()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := e.save(); err != nil {
			e.setStatus("save failed: %v", err)
			log.Printf("Save failed: %v", err)
		} else {
			e.setStatus("saved %s", e.filename)
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.copyToClipboard()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		e.pasteFromClipboard()
	}

	if !ctrl {
		for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
			if inpututil.IsKeyJustPressed(key) {
				e.tool = Tool(i)
				e.toolBar.SetActive(e.tool)
			}
		}
	}

	// Esc ascends to the parent block.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && len(e.path) > 1 {
		e.path = e.path[:len(e.path)-1]
	}

	e.canvas.Update(e)
	return nil
}

// drainWatcher reloads the document when the open file changes on disk.
// The reload replaces the whole history: the on-disk document is a new
// baseline, not an edit.
func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			if name != e.filename {
				continue
			}
			lvl, err := LoadLevelFile(e.filename)
			if err != nil {
				e.setStatus("reload failed: %v", err)
				log.Printf("Reload of %s failed: %v", e.filename, err)
				continue
			}
			e.history = edit.NewHistory(lvl)
			e.path = edit.Path{0}
			e.setStatus("reloaded %s", e.filename)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher = nil
				return
			}
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}

// descend enters the child block at the given child index.
func (e *Editor) descend(index int) {
	p := e.path.Clone()
	e.path = append(p, index)
}

// nextBlockID returns one more than the highest block id in the document,
// scanning refs too so a fresh block never collides with a dangling target.
func (e *Editor) nextBlockID() int {
	max := -1
	var scan func(b *level.Block)
	scan = func(b *level.Block) {
		if b.ID > max {
			max = b.ID
		}
		for _, c := range b.Children {
			switch v := c.(type) {
			case *level.Block:
				scan(v)
			case *level.Ref:
				if v.ID > max {
					max = v.ID
				}
			}
		}
	}
	for _, r := range e.history.Current.Roots {
		scan(r)
	}
	return max + 1
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.canvas.Draw(screen, e)
	e.ui.Draw(screen)
	e.drawStatus(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
