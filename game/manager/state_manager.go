package manager

// State is the life-cycle state of a session.
type State int

const (
	Playing State = iota
	Dead
	GameOver
	Exited
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Dead:
		return "dead"
	case GameOver:
		return "game over"
	case Exited:
		return "exited"
	}
	return "unknown"
}

// DefaultMaxResets is the number of extra lives of a run.
const DefaultMaxResets = 3

// StateManager keeps the score and reset budget of a session and enforces
// the Playing -> Dead -> (Playing | GameOver) transitions. Nothing here is
// persisted.
type StateManager struct {
	state        State
	score        int
	resetCount   int
	maxResets    int
	highScore    int
	scoreHistory []int
	won          bool
}

func NewStateManager(maxResets int) *StateManager {
	if maxResets < 0 {
		maxResets = 0
	}
	return &StateManager{
		state:        Playing,
		maxResets:    maxResets,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) ResetCount() int {
	return sm.resetCount
}

func (sm *StateManager) MaxResets() int {
	return sm.maxResets
}

// RemainingResets is the number of automatic resets still available.
func (sm *StateManager) RemainingResets() int {
	return sm.maxResets - sm.resetCount
}

// HighScore is the best score seen since the process started.
func (sm *StateManager) HighScore() int {
	return sm.highScore
}

// Won reports whether the last run ended by filling the board.
func (sm *StateManager) Won() bool {
	return sm.won
}

// ScoreHistory returns the final score of every finished life, oldest first.
func (sm *StateManager) ScoreHistory() []int {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

// AddPoint increments the score while playing and returns the new score.
func (sm *StateManager) AddPoint() int {
	if sm.state != Playing {
		return sm.score
	}
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

// Die moves a playing session to Dead and closes the current life.
func (sm *StateManager) Die() bool {
	if sm.state != Playing {
		return false
	}
	sm.state = Dead
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	return true
}

// ResolveDeath leaves Dead. It spends one reset and returns true when the
// budget allows it, otherwise the session becomes GameOver.
func (sm *StateManager) ResolveDeath() bool {
	if sm.state != Dead {
		return false
	}
	if sm.resetCount < sm.maxResets {
		sm.resetCount++
		sm.score = 0
		sm.state = Playing
		return true
	}
	sm.state = GameOver
	return false
}

// Win ends the run because the board is full.
func (sm *StateManager) Win() bool {
	if sm.state != Playing {
		return false
	}
	sm.won = true
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	sm.state = GameOver
	return true
}

// Restart starts a new life sequence after GameOver.
func (sm *StateManager) Restart() bool {
	if sm.state != GameOver {
		return false
	}
	sm.resetCount = 0
	sm.score = 0
	sm.won = false
	sm.state = Playing
	return true
}

// Exit terminates the session after GameOver.
func (sm *StateManager) Exit() bool {
	if sm.state != GameOver {
		return false
	}
	sm.state = Exited
	return true
}
