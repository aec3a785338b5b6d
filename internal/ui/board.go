package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/world"
)

const (
	cellWidth = 2 // Terminal columns per board cell, so cells look square
	originX   = 1 // Board starts inside a one-character border
	originY   = 1
)

// Board is a height x width grid of paintable terminal cells.
type Board struct {
	surface Surface
	width   int
	height  int
	theme   gamedata.Theme
	cells   [][]world.CellType
}

// NewBoard creates a board and draws its border.
func NewBoard(surface Surface, width, height int, theme gamedata.Theme) *Board {
	cells := make([][]world.CellType, height)
	for y := range cells {
		cells[y] = make([]world.CellType, width)
	}

	b := &Board{
		surface: surface,
		width:   width,
		height:  height,
		theme:   theme,
		cells:   cells,
	}
	b.drawBorder()
	return b
}

// Paint sets the visible state of one cell. Positions off the board are ignored.
func (b *Board) Paint(x, y int, kind world.CellType) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = kind

	left, right, style := b.look(kind)
	sx := originX + x*cellWidth
	sy := originY + y
	b.surface.SetContent(sx, sy, left, style)
	b.surface.SetContent(sx+1, sy, right, style)
}

// At returns the last painted state of a cell, or CellEmpty off the board.
func (b *Board) At(x, y int) world.CellType {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return world.CellEmpty
	}
	return b.cells[y][x]
}

// Present writes status lines under the board and flushes the screen.
func (b *Board) Present(lines ...string) {
	style := tcell.StyleDefault.Foreground(b.theme.Text)
	lineWidth := b.width*cellWidth + 2
	top := originY + b.height + 1

	for i, line := range lines {
		y := top + i
		col := 0
		for _, ch := range line {
			b.surface.SetContent(col, y, ch, style)
			col++
		}
		for ; col < lineWidth; col++ {
			b.surface.SetContent(col, y, ' ', tcell.StyleDefault)
		}
	}

	b.surface.Show()
}

// look returns the two runes and the style used to draw a cell type.
func (b *Board) look(kind world.CellType) (rune, rune, tcell.Style) {
	base := tcell.StyleDefault.Background(b.theme.Background)

	switch kind {
	case world.CellHead:
		return ' ', ' ', base.Background(b.theme.Head)
	case world.CellBody:
		return ' ', ' ', base.Background(b.theme.Body)
	case world.CellTail:
		return ' ', ' ', base.Background(b.theme.Tail)
	case world.CellFood:
		return b.theme.FoodGlyph, ' ', base.Foreground(b.theme.Food)
	default:
		return ' ', ' ', base
	}
}

// drawBorder frames the board with box-drawing runes.
func (b *Board) drawBorder() {
	style := tcell.StyleDefault.Foreground(b.theme.Border)
	right := originX + b.width*cellWidth
	bottom := originY + b.height

	for x := originX; x < right; x++ {
		b.surface.SetContent(x, 0, tcell.RuneHLine, style)
		b.surface.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := originY; y < bottom; y++ {
		b.surface.SetContent(0, y, tcell.RuneVLine, style)
		b.surface.SetContent(right, y, tcell.RuneVLine, style)
	}
	b.surface.SetContent(0, 0, tcell.RuneULCorner, style)
	b.surface.SetContent(right, 0, tcell.RuneURCorner, style)
	b.surface.SetContent(0, bottom, tcell.RuneLLCorner, style)
	b.surface.SetContent(right, bottom, tcell.RuneLRCorner, style)
}
