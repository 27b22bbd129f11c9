package game

import "time"

// Scheduler holds the single timer handle that paces ticks. Start always
// stops the previous ticker first, so there is never more than one live
// tick stream.
type Scheduler struct {
	ticker   *time.Ticker
	interval time.Duration
	starts   int
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start (re)arms the timer with interval.
func (s *Scheduler) Start(interval time.Duration) {
	s.Stop()
	s.ticker = time.NewTicker(interval)
	s.interval = interval
	s.starts++
}

// Stop cancels the timer. Safe to call when stopped.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

func (s *Scheduler) Running() bool {
	return s.ticker != nil
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Starts counts how many times the timer has been armed.
func (s *Scheduler) Starts() int {
	return s.starts
}

// C is the tick channel, nil while stopped so a select on it blocks.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Due reports, without blocking, whether a tick has fired.
func (s *Scheduler) Due() bool {
	select {
	case <-s.C():
		return true
	default:
		return false
	}
}
