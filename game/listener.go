package game

import (
	"time"

	"snake-arcade/game/types"
)

// Summary is handed to the presentation layer when a run ends.
type Summary struct {
	Score      int
	HighScore  int
	ResetsUsed int
	Won        bool
	Lives      []int
}

// Listener receives the user-facing notifications of a session. All calls
// happen on the goroutine that drives the session.
type Listener interface {
	// ScoreChanged fires on every point and on every reset or restart.
	ScoreChanged(score int)
	// Reset fires after an automatic reset, with the resets still left.
	Reset(remaining int, cause types.CollisionType)
	// GameOver fires when the run ends. The answer is given back through
	// Session.Choose.
	GameOver(summary Summary)
	Exited()
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScore    func(score int)
	OnReset    func(remaining int, cause types.CollisionType)
	OnGameOver func(summary Summary)
	OnExit     func()
}

func (f ListenerFuncs) ScoreChanged(score int) {
	if f.OnScore != nil {
		f.OnScore(score)
	}
}

func (f ListenerFuncs) Reset(remaining int, cause types.CollisionType) {
	if f.OnReset != nil {
		f.OnReset(remaining, cause)
	}
}

func (f ListenerFuncs) GameOver(summary Summary) {
	if f.OnGameOver != nil {
		f.OnGameOver(summary)
	}
}

func (f ListenerFuncs) Exited() {
	if f.OnExit != nil {
		f.OnExit()
	}
}

// MultiListener fans every notification out to each listener in order.
type MultiListener []Listener

func (m MultiListener) ScoreChanged(score int) {
	for _, l := range m {
		l.ScoreChanged(score)
	}
}

func (m MultiListener) Reset(remaining int, cause types.CollisionType) {
	for _, l := range m {
		l.Reset(remaining, cause)
	}
}

func (m MultiListener) GameOver(summary Summary) {
	for _, l := range m {
		l.GameOver(summary)
	}
}

func (m MultiListener) Exited() {
	for _, l := range m {
		l.Exited()
	}
}

// IntervalSource supplies the tick interval. It is read on start, on every
// reset and on restart, never mid-life.
type IntervalSource interface {
	Interval() time.Duration
}

// FixedInterval is an IntervalSource that never changes.
type FixedInterval time.Duration

func (f FixedInterval) Interval() time.Duration {
	return time.Duration(f)
}
