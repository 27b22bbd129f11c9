package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Overlay is everything drawn on top of the board that the session does
// not know about.
type Overlay struct {
	Difficulty string
	Notice     string
	Stats      string
	Menu       *Menu
}

type Renderer struct {
	layout   Layout
	color    rl.Color
	fontSize int32
}

func NewRenderer(layout Layout, snakeColor entity.Color) *Renderer {
	return &Renderer{
		layout:   layout,
		color:    rl.NewColor(snakeColor.R, snakeColor.G, snakeColor.B, 255),
		fontSize: 20,
	}
}

func rect(r types.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (r *Renderer) Draw(snap game.Snapshot, ov Overlay) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	board := r.layout.Board()
	rl.DrawRectangleLines(int32(board.X-1), int32(board.Y-1), int32(board.W+2), int32(board.H+2), rl.DarkGray)

	r.drawFood(snap.Food)
	for _, p := range snap.Body {
		// corner radius 5 on a 20px box
		rl.DrawRectangleRounded(rect(r.layout.Cell(p)), 0.5, 6, r.color)
	}

	r.drawHUD(snap, ov)

	if snap.State == manager.GameOver && ov.Menu != nil {
		r.drawMenu(snap, ov)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawFood(p types.Point) {
	c := r.layout.Cell(p)
	radius := float32(c.W) / 2.5
	rl.DrawCircle(int32(c.X+c.W/2), int32(c.Y+c.H/2), radius, rl.Red)
}

func (r *Renderer) drawHUD(snap game.Snapshot, ov Overlay) {
	x := int32(borderPadding)
	y := int32(borderPadding)

	score := fmt.Sprintf("Score: %d", snap.Score)
	rl.DrawText(score, x, y, r.fontSize, rl.White)
	x += rl.MeasureText(score, r.fontSize) + 20

	resets := fmt.Sprintf("Resets: %d", snap.MaxResets-snap.ResetCount)
	rl.DrawText(resets, x, y, r.fontSize, rl.LightGray)
	x += rl.MeasureText(resets, r.fontSize) + 20

	if ov.Difficulty != "" {
		rl.DrawText(ov.Difficulty, x, y, r.fontSize, rl.Gray)
	}

	if ov.Notice != "" {
		w := rl.MeasureText(ov.Notice, r.fontSize)
		board := r.layout.Board()
		rl.DrawText(ov.Notice, int32(board.X)+(int32(board.W)-w)/2, int32(board.Y)+8, r.fontSize, rl.Yellow)
	}
}

func (r *Renderer) drawMenu(snap game.Snapshot, ov Overlay) {
	m := r.layout.Menu()
	rl.DrawRectangleRounded(rect(m), 0.1, 8, rl.NewColor(0x33, 0x33, 0x33, 240))

	title := "Game Over"
	if snap.Won {
		title = "You Win!"
	}
	titleSize := r.fontSize + 8
	tw := rl.MeasureText(title, titleSize)
	rl.DrawText(title, int32(m.X)+(int32(m.W)-tw)/2, int32(m.Y)+16, titleSize, rl.White)

	line := fmt.Sprintf("Your score: %d", snap.Score)
	lw := rl.MeasureText(line, r.fontSize)
	rl.DrawText(line, int32(m.X)+(int32(m.W)-lw)/2, int32(m.Y)+56, r.fontSize, rl.White)

	if ov.Stats != "" {
		statsSize := r.fontSize - 6
		sw := rl.MeasureText(ov.Stats, statsSize)
		rl.DrawText(ov.Stats, int32(m.X)+(int32(m.W)-sw)/2, int32(m.Y)+84, statsSize, rl.LightGray)
	}

	restart, exit := r.layout.Buttons()
	r.drawButton(restart, "Restart", ov.Menu.Selected == game.ChoiceRestart)
	r.drawButton(exit, "Exit", ov.Menu.Selected == game.ChoiceExit)
}

func (r *Renderer) drawButton(b types.Rect, label string, selected bool) {
	bg := rl.DarkGray
	if selected {
		bg = rl.Gray
	}
	rl.DrawRectangleRounded(rect(b), 0.3, 6, bg)
	if selected {
		rl.DrawRectangleRoundedLines(rect(b), 0.3, 6, 2, rl.White)
	}
	w := rl.MeasureText(label, r.fontSize)
	rl.DrawText(label, int32(b.X)+(int32(b.W)-w)/2, int32(b.Y)+(int32(b.H)-r.fontSize)/2, r.fontSize, rl.White)
}

// DrawFarewell shows the closing message after Exit.
func (r *Renderer) DrawFarewell() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	msg := "Thanks for playing!"
	w, h := r.layout.WindowSize()
	tw := rl.MeasureText(msg, r.fontSize+4)
	rl.DrawText(msg, (int32(w)-tw)/2, int32(h)/2-12, r.fontSize+4, rl.White)
	rl.EndDrawing()
}
