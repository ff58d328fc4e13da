package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"boxtree/common"
	"boxtree/level"
)

var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(whiteImg, op)
}

func dim(c color.RGBA, f float64) color.RGBA {
	f = common.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func (c *Canvas) Draw(screen *ebiten.Image, e *Editor) {
	screen.Fill(color.RGBA{24, 24, 28, 255})

	b := e.block()
	if b == nil {
		return
	}

	cell := float64(c.cellSize) * c.zoom
	base := common.HSVToRGB(b.Hue, b.Sat, b.Val)

	// Interior of the edited block, dimmed so children stand out.
	fillRect(screen, c.offsetX, c.offsetY, float64(b.Width)*cell, float64(b.Height)*cell, dim(base, 0.35))

	// Grid lines.
	lineCol := dim(base, 0.5)
	for gx := 0; gx <= b.Width; gx++ {
		fillRect(screen, c.offsetX+float64(gx)*cell, c.offsetY, 1, float64(b.Height)*cell, lineCol)
	}
	for gy := 0; gy <= b.Height; gy++ {
		fillRect(screen, c.offsetX, c.offsetY+float64(gy)*cell, float64(b.Width)*cell, 1, lineCol)
	}

	for _, child := range b.Children {
		c.drawChild(screen, child, cell)
	}

	// Hover highlight.
	if mx, my := ebiten.CursorPosition(); my >= topBarHeight {
		if x, y, ok := c.screenToCell(mx, my); ok && x >= 0 && y >= 0 && x < b.Width && y < b.Height {
			fillRect(screen, c.offsetX+float64(x)*cell, c.offsetY+float64(y)*cell, cell, cell, color.RGBA{255, 255, 255, 40})
		}
	}
}

func (c *Canvas) drawChild(screen *ebiten.Image, o level.Object, cell float64) {
	at := func(x, y int) (float64, float64) {
		return c.offsetX + float64(x)*cell, c.offsetY + float64(y)*cell
	}

	switch v := o.(type) {
	case *level.Block:
		px, py := at(v.X, v.Y)
		w, h := float64(v.Width)*cell, float64(v.Height)*cell
		col := common.HSVToRGB(v.Hue, v.Sat, v.Val)
		fillRect(screen, px, py, w, h, col)
		border := dim(col, 0.4)
		fillRect(screen, px, py, w, 2, border)
		fillRect(screen, px, py+h-2, w, 2, border)
		fillRect(screen, px, py, 2, h, border)
		fillRect(screen, px+w-2, py, 2, h, border)
		if v.FillWithWalls {
			fillRect(screen, px+4, py+4, w-8, h-8, dim(col, 0.7))
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", v.ID), int(px)+4, int(py)+2)
	case *level.Wall:
		px, py := at(v.X, v.Y)
		fillRect(screen, px+1, py+1, cell-2, cell-2, color.RGBA{150, 150, 150, 255})
	case *level.Ref:
		px, py := at(v.X, v.Y)
		fillRect(screen, px+1, py+1, cell-2, cell-2, color.RGBA{170, 110, 220, 255})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("R%d", v.ID), int(px)+4, int(py)+2)
	case *level.Floor:
		px, py := at(v.X, v.Y)
		fillRect(screen, px+3, py+3, cell-6, cell-6, color.RGBA{70, 70, 90, 255})
		ebitenutil.DebugPrintAt(screen, floorGlyph(v), int(px)+4, int(py)+2)
	}
}

func floorGlyph(f *level.Floor) string {
	switch f.Kind {
	case level.FloorButton:
		return "o"
	case level.FloorPlayerButton:
		return "p"
	case level.FloorPortal:
		return "@"
	case level.FloorInfo:
		return "i"
	case level.FloorBreak:
		return "x"
	case level.FloorFastTravel:
		return ">"
	case level.FloorGallery:
		return "g"
	case level.FloorDemoEnd:
		return "!"
	default:
		return "?"
	}
}

func (e *Editor) drawStatus(screen *ebiten.Image) {
	name := e.filename
	if name == "" {
		name = "(unsaved)"
	}
	_, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	line := fmt.Sprintf("%s  path=%v  tool=%s  ref->%d", name, e.path, e.tool, e.refID)
	ebitenutil.DebugPrintAt(screen, line, 8, h-36)
	if e.status != "" && time.Now().Before(e.statusUntil) {
		ebitenutil.DebugPrintAt(screen, e.status, 8, h-20)
	}
}
