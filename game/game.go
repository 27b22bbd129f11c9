package game

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

var (
	ErrNotGameOver = errors.New("session is not over")
	ErrExited      = errors.New("session has exited")
)

// Choice is the answer to the game-over prompt.
type Choice int

const (
	ChoiceRestart Choice = iota
	ChoiceExit
)

func (c Choice) String() string {
	if c == ChoiceExit {
		return "exit"
	}
	return "restart"
}

// DefaultOrigin is where every life starts, heading right.
var DefaultOrigin = types.Point{X: 5, Y: 5}

const DefaultInterval = 100 * time.Millisecond

type Options struct {
	Grid           types.Grid
	Origin         types.Point
	StartDirection types.Direction
	MaxResets      int
	Interval       IntervalSource
	Seed           uint64
	Listener       Listener
	Logger         *log.Logger
}

// Report describes what one call to Tick did.
type Report struct {
	Result entity.TickResult
	Cause  types.CollisionType
	// Transitions lists the states entered during the tick, in order.
	Transitions []manager.State
	State       manager.State
	Reset       bool
	// Idle is set when the session was not playing and nothing happened.
	Idle bool
}

// Snapshot is a read-only copy of what a renderer needs.
type Snapshot struct {
	Body       []types.Point
	Food       types.Point
	Direction  types.Direction
	Score      int
	HighScore  int
	ResetCount int
	MaxResets  int
	State      manager.State
	Interval   time.Duration
	Won        bool
}

// Session owns all state of one game: snake, food, score and reset budget.
type Session struct {
	ID string

	grid      types.Grid
	origin    types.Point
	startDir  types.Direction
	intervals IntervalSource
	interval  time.Duration

	snake        *entity.Snake
	food         types.Point
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	listener Listener
	logger   *log.Logger
}

func NewSession(opts Options) *Session {
	if opts.Grid.Extent <= 0 || opts.Grid.CellSize <= 0 {
		opts.Grid = types.NewGrid(types.DefaultCellSize, types.DefaultExtent)
	}
	if opts.Origin == (types.Point{}) {
		opts.Origin = DefaultOrigin
	}
	if !opts.Grid.Contains(opts.Origin) {
		opts.Origin = types.Point{X: opts.Grid.Extent / 2, Y: opts.Grid.Extent / 2}
	}
	if !opts.StartDirection.Valid() {
		opts.StartDirection = types.Right
	}
	if opts.Interval == nil {
		opts.Interval = FixedInterval(DefaultInterval)
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Listener == nil {
		opts.Listener = ListenerFuncs{}
	}

	id := uuid.New().String()
	base := opts.Logger
	if base == nil {
		base = log.New(os.Stderr, "", log.LstdFlags)
	}

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	s := &Session{
		ID:           id,
		grid:         opts.Grid,
		origin:       opts.Origin,
		startDir:     opts.StartDirection,
		intervals:    opts.Interval,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, rand.New(rand.NewSource(opts.Seed))),
		stateMgr:     manager.NewStateManager(opts.MaxResets),
		listener:     opts.Listener,
		logger:       log.New(base.Writer(), fmt.Sprintf("[snake %s] ", id[:8]), base.Flags()),
	}

	s.reinitialize()
	s.logger.Printf("session started: grid %dx%d, interval %v, max resets %d",
		s.grid.Extent, s.grid.Extent, s.interval, s.stateMgr.MaxResets())
	return s
}

// reinitialize starts a fresh life: single-cell snake at the origin, new
// food, interval re-read from the source.
func (s *Session) reinitialize() {
	s.snake = entity.NewSnake(s.origin, s.startDir, s.collisionMgr)
	s.interval = s.intervals.Interval()

	food, err := s.foodMgr.PlaceFood(s.snake.Body)
	if err != nil {
		// Only a one-cell board gets here.
		s.logger.Printf("no room for food on a fresh board: %v", err)
		s.food = s.origin
		s.stateMgr.Win()
		return
	}
	s.food = food
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Food() types.Point {
	return s.food
}

func (s *Session) State() manager.State {
	return s.stateMgr.State()
}

func (s *Session) Score() int {
	return s.stateMgr.Score()
}

func (s *Session) ResetCount() int {
	return s.stateMgr.ResetCount()
}

// Interval is the tick interval of the current life.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// SetDirection forwards a steering request to the snake while playing.
func (s *Session) SetDirection(dir types.Direction) {
	if s.stateMgr.State() != manager.Playing {
		return
	}
	s.snake.SetDirection(dir)
}

// Tick advances the game by one step. Outside Playing it does nothing.
func (s *Session) Tick() Report {
	if s.stateMgr.State() != manager.Playing {
		return Report{State: s.stateMgr.State(), Idle: true}
	}

	rep := Report{Result: s.snake.Tick(s.food)}

	switch rep.Result {
	case entity.Moved:
	case entity.Ate:
		s.listener.ScoreChanged(s.stateMgr.AddPoint())
		food, err := s.foodMgr.PlaceFood(s.snake.Body)
		if errors.Is(err, manager.ErrBoardFull) {
			s.stateMgr.Win()
			rep.Transitions = append(rep.Transitions, manager.GameOver)
			s.logger.Printf("board full at score %d", s.stateMgr.Score())
			s.listener.GameOver(s.summary())
			break
		}
		s.food = food
	case entity.Died:
		rep.Cause = s.snake.LastCollision
		s.stateMgr.Die()
		rep.Transitions = append(rep.Transitions, manager.Dead)
		rep.Reset = s.enterDead(rep.Cause)
		rep.Transitions = append(rep.Transitions, s.stateMgr.State())
	}

	rep.State = s.stateMgr.State()
	return rep
}

func (s *Session) enterDead(cause types.CollisionType) bool {
	score := s.stateMgr.Score()
	if s.stateMgr.ResolveDeath() {
		s.reinitialize()
		remaining := s.stateMgr.RemainingResets()
		s.logger.Printf("died (%v) at score %d, reset %d/%d",
			cause, score, s.stateMgr.ResetCount(), s.stateMgr.MaxResets())
		s.listener.Reset(remaining, cause)
		s.listener.ScoreChanged(s.stateMgr.Score())
		return true
	}

	s.logger.Printf("died (%v) at score %d, game over", cause, score)
	s.listener.GameOver(s.summary())
	return false
}

// Choose answers the game-over prompt.
func (s *Session) Choose(c Choice) error {
	switch s.stateMgr.State() {
	case manager.Exited:
		return ErrExited
	case manager.GameOver:
	default:
		return errors.Wrapf(ErrNotGameOver, "cannot %v while %v", c, s.stateMgr.State())
	}

	if c == ChoiceExit {
		s.stateMgr.Exit()
		s.logger.Printf("exit")
		s.listener.Exited()
		return nil
	}

	s.stateMgr.Restart()
	s.reinitialize()
	s.logger.Printf("restart, interval %v", s.interval)
	s.listener.ScoreChanged(s.stateMgr.Score())
	return nil
}

func (s *Session) summary() Summary {
	return Summary{
		Score:      s.stateMgr.Score(),
		HighScore:  s.stateMgr.HighScore(),
		ResetsUsed: s.stateMgr.ResetCount(),
		Won:        s.stateMgr.Won(),
		Lives:      s.stateMgr.ScoreHistory(),
	}
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Body:       s.snake.Cells(),
		Food:       s.food,
		Direction:  s.snake.Direction,
		Score:      s.stateMgr.Score(),
		HighScore:  s.stateMgr.HighScore(),
		ResetCount: s.stateMgr.ResetCount(),
		MaxResets:  s.stateMgr.MaxResets(),
		State:      s.stateMgr.State(),
		Interval:   s.interval,
		Won:        s.stateMgr.Won(),
	}
}
