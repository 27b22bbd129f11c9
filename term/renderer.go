package term

import (
	"fmt"
	"io"
	"strings"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Cell glyphs. Each is two columns wide so the board stays square.
const (
	CharEmpty = "  "
	CharWall  = "██"
	CharHead  = "@@"
	CharBody  = "[]"
	CharFood  = "()"
)

const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
)

// Renderer draws a session snapshot as text. Output goes to w in one write
// per frame.
type Renderer struct {
	w      io.Writer
	board  [][]int
	buffer strings.Builder
	notice string
	label  string
}

func NewRenderer(w io.Writer, grid types.Grid) *Renderer {
	board := make([][]int, grid.Extent)
	for i := range board {
		board[i] = make([]int, grid.Extent)
	}
	return &Renderer{w: w, board: board}
}

// Columns and Rows give the terminal area one frame needs.
func (r *Renderer) Columns() int { return 2*len(r.board) + 8 }
func (r *Renderer) Rows() int    { return len(r.board) + 8 }

// SetNotice shows a one-line message above the board until replaced.
func (r *Renderer) SetNotice(msg string) {
	r.notice = msg
}

// SetLabel sets the difficulty name shown in the header.
func (r *Renderer) SetLabel(label string) {
	r.label = label
}

func (r *Renderer) HideCursor() {
	fmt.Fprint(r.w, "\033[?25l")
}

func (r *Renderer) ShowCursor() {
	fmt.Fprint(r.w, "\033[?25h")
}

func (r *Renderer) Render(snap game.Snapshot) error {
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}
	if r.inside(snap.Food) {
		r.board[snap.Food.Y][snap.Food.X] = cellFood
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if !r.inside(p) {
			continue
		}
		if i == 0 {
			r.board[p.Y][p.X] = cellHead
		} else {
			r.board[p.Y][p.X] = cellBody
		}
	}

	r.buffer.WriteString("\n  SNAKE\n")
	fmt.Fprintf(&r.buffer, "  Score: %d  |  Best: %d  |  Resets left: %d",
		snap.Score, snap.HighScore, snap.MaxResets-snap.ResetCount)
	if r.label != "" {
		fmt.Fprintf(&r.buffer, "  |  %s", r.label)
	}
	r.buffer.WriteString("\n")
	if r.notice != "" {
		r.buffer.WriteString("  " + r.notice)
	}
	r.buffer.WriteString("\n\n")

	wall := strings.Repeat(CharWall, len(r.board)+2)
	r.buffer.WriteString("  " + wall + "\n")
	for _, row := range r.board {
		r.buffer.WriteString("  " + CharWall)
		for _, cell := range row {
			switch cell {
			case cellHead:
				r.buffer.WriteString(CharHead)
			case cellBody:
				r.buffer.WriteString(CharBody)
			case cellFood:
				r.buffer.WriteString(CharFood)
			default:
				r.buffer.WriteString(CharEmpty)
			}
		}
		r.buffer.WriteString(CharWall + "\n")
	}
	r.buffer.WriteString("  " + wall + "\n")

	switch snap.State {
	case manager.GameOver:
		if snap.Won {
			r.buffer.WriteString("\n  Board cleared!")
		} else {
			r.buffer.WriteString("\n  GAME OVER")
		}
		fmt.Fprintf(&r.buffer, "  Final score: %d\n", snap.Score)
		r.buffer.WriteString("  R to play again, Q to quit\n")
	default:
		r.buffer.WriteString("\n  WASD or arrows to move, 1/2/3 difficulty, Q to quit\n")
	}

	_, err := io.WriteString(r.w, r.buffer.String())
	return err
}

func (r *Renderer) inside(p types.Point) bool {
	return p.Y >= 0 && p.Y < len(r.board) && p.X >= 0 && p.X < len(r.board)
}
