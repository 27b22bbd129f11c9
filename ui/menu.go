package ui

import (
	"time"

	"snake-arcade/game"
)

// Menu tracks the highlighted button of the game-over panel.
type Menu struct {
	Selected game.Choice
}

// Toggle moves the highlight to the other button.
func (m *Menu) Toggle() {
	if m.Selected == game.ChoiceRestart {
		m.Selected = game.ChoiceExit
		return
	}
	m.Selected = game.ChoiceRestart
}

// Click returns the button under the pointer, if any.
func (m *Menu) Click(l Layout, x, y int) (game.Choice, bool) {
	restart, exit := l.Buttons()
	switch {
	case hit(restart, x, y):
		m.Selected = game.ChoiceRestart
		return game.ChoiceRestart, true
	case hit(exit, x, y):
		m.Selected = game.ChoiceExit
		return game.ChoiceExit, true
	}
	return m.Selected, false
}

// Notice is a message that disappears on its own.
type Notice struct {
	text  string
	until time.Time
}

func (n *Notice) Show(text string, now time.Time, d time.Duration) {
	n.text = text
	n.until = now.Add(d)
}

// Text returns the message while it is still due, "" afterwards.
func (n *Notice) Text(now time.Time) string {
	if n.text == "" || !now.Before(n.until) {
		return ""
	}
	return n.text
}
