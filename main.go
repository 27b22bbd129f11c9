package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/sound"
	"snake-arcade/ui"
)

const (
	noticeDuration   = 2 * time.Second
	farewellDuration = 1500 * time.Millisecond
	sfxVolume        = 0.6
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("snake: %v", err)
	}

	logger, closeLog, err := cfg.OpenLogger(os.Stderr)
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	defer closeLog()

	grid := types.NewGrid(cfg.CellSize, cfg.GridExtent)
	layout := ui.NewLayout(grid)
	width, height := layout.WindowSize()

	rl.InitWindow(int32(width), int32(height), "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc is handled by the game-over menu
	rl.SetTargetFPS(60)

	dial := config.NewDial(cfg)
	notice := &ui.Notice{}
	menu := &ui.Menu{}

	stats := game.NewStats(nil)
	listeners := game.MultiListener{stats, game.ListenerFuncs{
		OnReset: func(remaining int, cause types.CollisionType) {
			notice.Show(fmt.Sprintf("Game Over! You have %d reset(s) remaining.", remaining), time.Now(), noticeDuration)
		},
		OnGameOver: func(game.Summary) {
			menu.Selected = game.ChoiceRestart
		},
	}}
	if cfg.Sound {
		player, err := sound.New(sfxVolume)
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

	renderer := ui.NewRenderer(layout, session.Snake().Color)

	var exitedAt time.Time
	for !rl.WindowShouldClose() {
		in := ui.PollInput()

		if in.Difficulty != "" && in.Difficulty != dial.Difficulty() {
			dial.Set(in.Difficulty)
			notice.Show(fmt.Sprintf("Difficulty: %s (from the next life)", in.Difficulty), time.Now(), noticeDuration)
		}

		switch session.State() {
		case manager.Playing:
			if in.Exit {
				logger.Printf("quit during play at score %d", session.Score())
				return
			}
			if in.Direction != types.NoDirection {
				session.SetDirection(in.Direction)
			}
			driver.Poll()

		case manager.GameOver:
			if choice, ok := gameOverChoice(in, menu, layout); ok {
				if err := driver.Choose(choice); err != nil {
					logger.Printf("menu: %v", err)
				}
			}

		case manager.Exited:
			if exitedAt.IsZero() {
				exitedAt = time.Now()
			}
			if time.Since(exitedAt) >= farewellDuration {
				return
			}
			renderer.DrawFarewell()
			continue
		}

		renderer.Draw(session.Snapshot(), ui.Overlay{
			Difficulty: string(dial.Difficulty()),
			Notice:     notice.Text(time.Now()),
			Stats:      stats.Line(),
			Menu:       menu,
		})
	}
}

// gameOverChoice turns one frame of input into a menu answer.
func gameOverChoice(in ui.Input, menu *ui.Menu, layout ui.Layout) (game.Choice, bool) {
	switch {
	case in.Restart:
		return game.ChoiceRestart, true
	case in.Exit:
		return game.ChoiceExit, true
	case in.Confirm:
		return menu.Selected, true
	case in.Click:
		return menu.Click(layout, in.MouseX, in.MouseY)
	case in.Toggle:
		menu.Toggle()
	}
	return menu.Selected, false
}
