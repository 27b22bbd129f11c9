package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/config"
	"snake-arcade/game/types"
)

// Input is what the player pressed during one frame.
type Input struct {
	Direction  types.Direction
	Difficulty config.Difficulty
	Restart    bool
	Exit       bool
	Toggle     bool
	Confirm    bool
	Click      bool
	MouseX     int
	MouseY     int
}

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// PollInput reads the keyboard and mouse. When several arrows are pressed
// in the same frame the last one in the table wins, which matches the
// session's latest-request-wins rule.
func PollInput() Input {
	var in Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Direction = k.dir
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		in.Difficulty = config.Easy
	case rl.IsKeyPressed(rl.KeyTwo):
		in.Difficulty = config.Normal
	case rl.IsKeyPressed(rl.KeyThree):
		in.Difficulty = config.Hard
	}

	in.Restart = rl.IsKeyPressed(rl.KeyR)
	in.Exit = rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ)
	in.Toggle = rl.IsKeyPressed(rl.KeyTab) || in.Direction == types.Left || in.Direction == types.Right
	in.Confirm = rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		in.Click = true
		in.MouseX = int(pos.X)
		in.MouseY = int(pos.Y)
	}
	return in
}
