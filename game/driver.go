package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
)

// Driver runs a Session off a Scheduler. Frontends call Poll once per frame
// or Step on every value received from Ticks.
type Driver struct {
	session *Session
	sched   *Scheduler
}

func NewDriver(session *Session, sched *Scheduler) *Driver {
	return &Driver{session: session, sched: sched}
}

func (d *Driver) Session() *Session {
	return d.session
}

// Start arms the timer with the session's current interval.
func (d *Driver) Start() {
	if d.session.State() == manager.Playing {
		d.sched.Start(d.session.Interval())
	}
}

func (d *Driver) Stop() {
	d.sched.Stop()
}

// Ticks is the channel to select on in a blocking loop.
func (d *Driver) Ticks() <-chan time.Time {
	return d.sched.C()
}

// Poll runs one tick if the timer has fired since the last call.
func (d *Driver) Poll() (Report, bool) {
	if !d.sched.Due() {
		return Report{}, false
	}
	return d.Step(), true
}

// Step runs exactly one tick and keeps the timer in line with the outcome:
// cancelled on death, re-armed with the re-read interval after a reset,
// left stopped once the run is over.
func (d *Driver) Step() Report {
	rep := d.session.Tick()
	if rep.Result == entity.Died || rep.State != manager.Playing {
		d.sched.Stop()
	}
	if rep.Reset {
		d.sched.Start(d.session.Interval())
	}
	return rep
}

// Choose forwards the game-over answer and restarts the timer on Restart.
func (d *Driver) Choose(c Choice) error {
	if err := d.session.Choose(c); err != nil {
		return err
	}
	if c == ChoiceRestart && d.session.State() == manager.Playing {
		d.sched.Start(d.session.Interval())
		return nil
	}
	d.sched.Stop()
	return nil
}
