package config

import "time"

// Dial is the live difficulty control. Frontends turn it while a life is
// running; the session only reads it on the next reset.
type Dial struct {
	difficulty Difficulty
	interval   time.Duration
}

func NewDial(cfg Config) *Dial {
	return &Dial{difficulty: cfg.Difficulty, interval: cfg.TickInterval}
}

// Set switches to a preset. Unknown names are ignored.
func (d *Dial) Set(diff Difficulty) {
	interval, ok := diff.Interval()
	if !ok {
		return
	}
	d.difficulty = diff
	d.interval = interval
}

func (d *Dial) Difficulty() Difficulty {
	return d.difficulty
}

func (d *Dial) Interval() time.Duration {
	return d.interval
}
