package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"boxtree/edit"
	"boxtree/level"
)

// topBarHeight is the strip reserved for the toolbar; clicks there belong
// to the UI, not the canvas.
const topBarHeight = 56

// Canvas owns the pan/zoom transform and turns pointer input into edits on
// the block the editor is currently inside.
type Canvas struct {
	cellSize int
	zoom     float64
	offsetX  float64
	offsetY  float64

	panning bool
	lastMX  int
	lastMY  int

	painting      bool
	lastPaintX    int
	lastPaintY    int
	lastClickAt   time.Time
	lastClickCell [2]int
}

func NewCanvas(cellSize int) *Canvas {
	return &Canvas{
		cellSize: cellSize,
		zoom:     1,
		offsetX:  120,
		offsetY:  topBarHeight + 40,
	}
}

// screenToCell maps a screen position to block cell coordinates. ok is
// false when the position is over the toolbar.
func (c *Canvas) screenToCell(sx, sy int) (int, int, bool) {
	if sy < topBarHeight {
		return 0, 0, false
	}
	cell := float64(c.cellSize) * c.zoom
	cx := math.Floor((float64(sx) - c.offsetX) / cell)
	cy := math.Floor((float64(sy) - c.offsetY) / cell)
	return int(cx), int(cy), true
}

func (c *Canvas) Update(e *Editor) {
	mx, my := ebiten.CursorPosition()

	// Wheel zoom anchored at the cursor.
	if _, wy := ebiten.Wheel(); wy != 0 && my >= topBarHeight {
		factor := 1.1
		if wy < 0 {
			factor = 1 / 1.1
		}
		next := c.zoom * factor
		if next >= 0.2 && next <= 8 {
			c.offsetX = float64(mx) - (float64(mx)-c.offsetX)*factor
			c.offsetY = float64(my) - (float64(my)-c.offsetY)*factor
			c.zoom = next
		}
	}

	// Middle (or right) drag pans.
	panHeld := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if panHeld {
		if c.panning {
			c.offsetX += float64(mx - c.lastMX)
			c.offsetY += float64(my - c.lastMY)
		}
		c.panning = true
		c.lastMX, c.lastMY = mx, my
	} else {
		c.panning = false
	}

	c.updatePaint(e, mx, my)
}

func (c *Canvas) updatePaint(e *Editor, mx, my int) {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	just := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if !pressed {
		c.painting = false
		return
	}

	x, y, ok := c.screenToCell(mx, my)
	if !ok {
		return
	}
	b := e.block()
	if b == nil || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}

	if just {
		// Double click on a child block descends into it.
		now := time.Now()
		if now.Sub(c.lastClickAt) < 400*time.Millisecond && c.lastClickCell == [2]int{x, y} {
			if hit := edit.HitTest(b, x, y); hit.Kind == edit.HitBlock {
				e.descend(hit.Index)
				c.lastClickAt = time.Time{}
				return
			}
		}
		c.lastClickAt = now
		c.lastClickCell = [2]int{x, y}

		// Alt+click samples a ref target from whatever block is under the
		// cursor instead of painting.
		if ebiten.IsKeyPressed(ebiten.KeyAlt) {
			if hit := edit.HitTest(b, x, y); hit.Kind == edit.HitBlock {
				e.refID = b.Children[hit.Index].(*level.Block).ID
				e.setStatus("ref target = block %d", e.refID)
			}
			return
		}
	}

	// Wall and erase paint while dragging; the others act once per press.
	dragTool := e.tool == ToolWall || e.tool == ToolErase
	if !just && (!dragTool || !c.painting || (c.lastPaintX == x && c.lastPaintY == y)) {
		return
	}
	c.painting = true
	c.lastPaintX, c.lastPaintY = x, y

	switch e.tool {
	case ToolWall:
		e.commit(edit.ToggleWall(b, x, y))
	case ToolErase:
		e.commit(edit.RemoveAt(b, x, y))
	case ToolFloor:
		if just {
			e.commit(edit.PlaceFloor(b, &level.Floor{X: x, Y: y, Kind: e.cfg.FloorKind()}))
		}
	case ToolBlock:
		if just {
			e.commit(edit.AddChildBlock(b, x, y, e.cfg.ChildWidth, e.cfg.ChildHeight, e.nextBlockID()))
		}
	case ToolRef:
		if just {
			e.commit(edit.PlaceRef(b, x, y, e.refID))
		}
	}
}
