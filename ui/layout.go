package ui

import (
	"snake-arcade/game/types"
)

const (
	borderPadding = 10
	hudHeight     = 40

	buttonWidth  = 110
	buttonHeight = 36
	menuWidth    = 280
	menuHeight   = 170
)

// Layout places the board, HUD and game-over menu inside the window.
type Layout struct {
	Grid    types.Grid
	OffsetX int
	OffsetY int
}

func NewLayout(grid types.Grid) Layout {
	return Layout{
		Grid:    grid,
		OffsetX: borderPadding,
		OffsetY: borderPadding + hudHeight,
	}
}

// WindowSize is the window needed to show the whole board.
func (l Layout) WindowSize() (int, int) {
	side := l.Grid.PixelSize()
	return side + 2*borderPadding, side + hudHeight + 2*borderPadding
}

// Board is the pixel rectangle of the playfield.
func (l Layout) Board() types.Rect {
	side := l.Grid.PixelSize()
	return types.Rect{X: l.OffsetX, Y: l.OffsetY, W: side, H: side}
}

// Cell maps a board cell to window pixels.
func (l Layout) Cell(p types.Point) types.Rect {
	r := l.Grid.ToPixel(p)
	r.X += l.OffsetX
	r.Y += l.OffsetY
	return r
}

// Menu is the game-over panel, centred on the board.
func (l Layout) Menu() types.Rect {
	b := l.Board()
	return types.Rect{
		X: b.X + (b.W-menuWidth)/2,
		Y: b.Y + (b.H-menuHeight)/2,
		W: menuWidth,
		H: menuHeight,
	}
}

// Buttons returns the Restart and Exit buttons of the menu.
func (l Layout) Buttons() (restart, exit types.Rect) {
	m := l.Menu()
	y := m.Y + m.H - buttonHeight - 20
	gap := (m.W - 2*buttonWidth) / 3
	restart = types.Rect{X: m.X + gap, Y: y, W: buttonWidth, H: buttonHeight}
	exit = types.Rect{X: m.X + 2*gap + buttonWidth, Y: y, W: buttonWidth, H: buttonHeight}
	return restart, exit
}

func hit(r types.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
