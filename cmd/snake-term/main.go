package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/sound"
	"snake-arcade/term"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("snake-term: %v", err)
	}
}

func run() error {
	cfg, err := config.Load("snake-term", os.Args[1:])
	if err != nil {
		return err
	}

	// The screen belongs to the board, so logs only go to -log if given.
	logger, closeLog, err := cfg.OpenLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	grid := types.NewGrid(cfg.CellSize, cfg.GridExtent)
	renderer := term.NewRenderer(os.Stdout, grid)
	if err := term.CheckScreen(int(os.Stdout.Fd()), renderer); err != nil {
		return err
	}

	kb := term.NewKeyboardHandler()
	if err := kb.Start(); err != nil {
		return errors.Wrap(err, "opening keyboard")
	}
	defer kb.Stop()

	renderer.HideCursor()
	defer renderer.ShowCursor()

	dial := config.NewDial(cfg)
	stats := game.NewStats(nil)
	listeners := game.MultiListener{stats, game.ListenerFuncs{
		OnReset: func(remaining int, cause types.CollisionType) {
			renderer.SetNotice(fmt.Sprintf("Hit the %s! You have %d reset(s) remaining.", obstacle(cause), remaining))
		},
		OnGameOver: func(game.Summary) {
			renderer.SetNotice(stats.Line())
		},
	}}
	if cfg.Sound {
		player, err := sound.New(0.6)
		if err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			listeners = append(listeners, player)
		}
	}

	session := game.NewSession(game.Options{
		Grid:      grid,
		MaxResets: cfg.MaxResets,
		Interval:  dial,
		Seed:      cfg.Seed,
		Listener:  listeners,
		Logger:    logger,
	})
	driver := game.NewDriver(session, game.NewScheduler())
	driver.Start()
	defer driver.Stop()

	draw := func() error {
		renderer.SetLabel(string(dial.Difficulty()))
		return renderer.Render(session.Snapshot())
	}
	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-driver.Ticks():
			driver.Step()

		case in, ok := <-kb.Input():
			if !ok {
				return nil
			}
			if done, err := handleKey(in, driver, dial, renderer); err != nil || done {
				return err
			}
		}

		if session.State() == manager.Exited {
			fmt.Fprintln(os.Stdout, "\n  Thanks for playing!")
			return nil
		}
		if err := draw(); err != nil {
			return err
		}
	}
}

// handleKey applies one key press. It reports true when the program should
// stop.
func handleKey(in term.KeyInput, driver *game.Driver, dial *config.Dial, renderer *term.Renderer) (bool, error) {
	session := driver.Session()

	if d, ok := term.ParseDifficulty(in); ok {
		dial.Set(d)
		renderer.SetNotice(fmt.Sprintf("Difficulty %s from the next life", d))
		return false, nil
	}

	switch session.State() {
	case manager.Playing:
		if term.IsQuit(in) {
			return true, nil
		}
		if dir, ok := term.ParseDirection(in); ok {
			session.SetDirection(dir)
		}
	case manager.GameOver:
		switch {
		case term.IsRestart(in):
			return false, driver.Choose(game.ChoiceRestart)
		case term.IsQuit(in):
			return false, driver.Choose(game.ChoiceExit)
		}
	}
	return false, nil
}

func obstacle(cause types.CollisionType) string {
	if cause == types.SelfCollision {
		return "tail"
	}
	return "wall"
}
