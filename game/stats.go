package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"snake-arcade/game/types"
)

// LifeRecord is one life: from spawn until the snake died or the run ended.
type LifeRecord struct {
	Start time.Time
	End   time.Time
	Score int
	Cause types.CollisionType
}

func (r LifeRecord) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Stats keeps the records of every life played in this process. It is a
// Listener and is fed by the session like any other. Nothing is written to
// disk.
type Stats struct {
	mutex sync.RWMutex
	now   func() time.Time
	lives []LifeRecord
	start time.Time
	score int
	over  bool
}

// NewStats starts the first life at now(). A nil clock uses time.Now.
func NewStats(now func() time.Time) *Stats {
	if now == nil {
		now = time.Now
	}
	return &Stats{now: now, start: now()}
}

var _ Listener = (*Stats)(nil)

func (s *Stats) ScoreChanged(score int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// first notification after a restart opens a new life
	if s.over {
		s.over = false
		s.start = s.now()
	}
	s.score = score
}

func (s *Stats) Reset(_ int, cause types.CollisionType) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.record(s.score, cause)
	s.start = s.now()
}

func (s *Stats) GameOver(summary Summary) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.record(summary.Score, types.NoCollision)
	s.over = true
}

func (s *Stats) Exited() {}

func (s *Stats) record(score int, cause types.CollisionType) {
	s.lives = append(s.lives, LifeRecord{
		Start: s.start,
		End:   s.now(),
		Score: score,
		Cause: cause,
	})
	s.score = 0
}

// Lives returns a copy of the finished lives, oldest first.
func (s *Stats) Lives() []LifeRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]LifeRecord, len(s.lives))
	copy(out, s.lives)
	return out
}

func (s *Stats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.lives)
}

func (s *Stats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.lives) == 0 {
		return 0
	}
	total := 0
	for _, l := range s.lives {
		total += l.Score
	}
	return float64(total) / float64(len(s.lives))
}

func (s *Stats) MedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.lives) == 0 {
		return 0
	}
	scores := make([]int, len(s.lives))
	for i, l := range s.lives {
		scores[i] = l.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *Stats) MaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, l := range s.lives {
		if l.Score > best {
			best = l.Score
		}
	}
	return best
}

// LongestLife is the duration of the longest finished life.
func (s *Stats) LongestLife() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var longest time.Duration
	for _, l := range s.lives {
		if d := l.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// Line is a one-line summary for game-over screens.
func (s *Stats) Line() string {
	return fmt.Sprintf("Lives %d  Avg %.1f  Median %.1f  Best %d",
		s.GamesPlayed(), s.AverageScore(), s.MedianScore(), s.MaxScore())
}
