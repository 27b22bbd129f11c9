package main

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/term"
)

func newTestDriver(maxResets int, dial *config.Dial) *game.Driver {
	s := game.NewSession(game.Options{
		Grid:      types.NewGrid(20, 20),
		MaxResets: maxResets,
		Interval:  dial,
		Seed:      5,
		Logger:    log.New(io.Discard, "", 0),
	})
	return game.NewDriver(s, game.NewScheduler())
}

func TestHandleKeyWhilePlaying(t *testing.T) {
	dial := config.NewDial(config.Default())
	drv := newTestDriver(0, dial)
	r := term.NewRenderer(io.Discard, types.NewGrid(20, 20))

	if done, err := handleKey(term.KeyInput{Key: keyboard.KeyArrowDown}, drv, dial, r); done || err != nil {
		t.Fatalf("arrow: done=%v err=%v", done, err)
	}
	if drv.Session().Snake().Pending() != types.Down {
		t.Errorf("pending = %v, want DOWN", drv.Session().Snake().Pending())
	}

	if _, err := handleKey(term.KeyInput{Char: '3'}, drv, dial, r); err != nil {
		t.Fatal(err)
	}
	if dial.Interval() != config.HardInterval {
		t.Errorf("dial = %v", dial.Interval())
	}
	if drv.Session().Interval() != config.NormalInterval {
		t.Error("the running life must keep its interval")
	}

	if done, _ := handleKey(term.KeyInput{Char: 'q'}, drv, dial, r); !done {
		t.Error("q while playing should quit")
	}
}

func TestHandleKeyAtGameOver(t *testing.T) {
	dial := config.NewDial(config.Default())
	drv := newTestDriver(0, dial)
	drv.Start()
	defer drv.Stop()
	r := term.NewRenderer(io.Discard, types.NewGrid(20, 20))

	drv.Session().SetDirection(types.Up)
	deadline := time.Now().Add(5 * time.Second)
	for drv.Session().State() == manager.Playing {
		if time.Now().After(deadline) {
			t.Fatal("snake never died")
		}
		drv.Step()
	}

	if done, err := handleKey(term.KeyInput{Char: 'r'}, drv, dial, r); done || err != nil {
		t.Fatalf("restart: done=%v err=%v", done, err)
	}
	if drv.Session().State() != manager.Playing {
		t.Fatalf("state = %v after restart", drv.Session().State())
	}

	drv.Session().SetDirection(types.Up)
	for drv.Session().State() == manager.Playing {
		drv.Step()
	}
	if _, err := handleKey(term.KeyInput{Key: keyboard.KeyEsc}, drv, dial, r); err != nil {
		t.Fatalf("exit: %v", err)
	}
	if drv.Session().State() != manager.Exited {
		t.Errorf("state = %v, want Exited", drv.Session().State())
	}
}
