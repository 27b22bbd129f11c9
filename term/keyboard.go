package term

import (
	"github.com/eiannone/keyboard"

	"snake-arcade/config"
	"snake-arcade/game/types"
)

// KeyboardHandler reads raw keys from the terminal on its own goroutine.
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput is one key press.
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start opens the keyboard and begins forwarding presses. The channel is
// closed when reading fails, which also happens after Stop.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		defer close(h.inputChan)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

func (h *KeyboardHandler) Input() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection maps arrows and WASD to a heading.
func ParseDirection(input KeyInput) (types.Direction, bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return types.Up, true
	case keyboard.KeyArrowDown:
		return types.Down, true
	case keyboard.KeyArrowLeft:
		return types.Left, true
	case keyboard.KeyArrowRight:
		return types.Right, true
	}

	switch input.Char {
	case 'w', 'W':
		return types.Up, true
	case 's', 'S':
		return types.Down, true
	case 'a', 'A':
		return types.Left, true
	case 'd', 'D':
		return types.Right, true
	}

	return types.NoDirection, false
}

// ParseDifficulty maps 1, 2 and 3 to the presets.
func ParseDifficulty(input KeyInput) (config.Difficulty, bool) {
	switch input.Char {
	case '1':
		return config.Easy, true
	case '2':
		return config.Normal, true
	case '3':
		return config.Hard, true
	}
	return "", false
}

func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}

func IsRestart(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R' || input.Key == keyboard.KeyEnter
}
