package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/termgol/model"
)

const brailleBase = 0x2800

// brailleBits maps a dot's (row, column) inside a 2x4 braille cell to its bit
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Renderer paints live cells onto a braille canvas stretched over the whole screen
type Renderer struct {
	screen tcell.Screen
	dots   []uint8 // one braille mask per terminal cell, reused across frames
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw scales the grid onto the screen's current size and shows the frame
func (r *Renderer) Draw(live []model.Point, cellColor, background tcell.Color, gridHeight, gridWidth int) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || gridHeight <= 0 || gridWidth <= 0 {
		return
	}

	if cap(r.dots) < cols*rows {
		r.dots = make([]uint8, cols*rows)
	}
	r.dots = r.dots[:cols*rows]
	clear(r.dots)

	dotWidth, dotHeight := cols*2, rows*4
	for _, p := range live {
		x := p.Column * dotWidth / gridWidth
		y := p.Row * dotHeight / gridHeight
		r.dots[(y/4)*cols+x/2] |= brailleBits[y%4][x%2]
	}

	style := tcell.StyleDefault.Foreground(cellColor).Background(background)
	for row := range rows {
		for col := range cols {
			ch := ' '
			if mask := r.dots[row*cols+col]; mask != 0 {
				ch = rune(brailleBase + int(mask))
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
	r.screen.Show()
}
