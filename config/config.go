package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Difficulty names a preset tick interval.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Difficulty presets
const (
	EasyInterval   = 150 * time.Millisecond
	NormalInterval = 100 * time.Millisecond
	HardInterval   = 60 * time.Millisecond

	MinInterval = 10 * time.Millisecond
)

// Board defaults, matching a 400px canvas of 20px boxes.
const (
	DefaultCellSize   = 20
	DefaultGridExtent = 20
	DefaultMaxResets  = 3
	DefaultEnvFile    = ".env"
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// Interval returns the tick interval of the preset.
func (d Difficulty) Interval() (time.Duration, bool) {
	switch d {
	case Easy:
		return EasyInterval, true
	case Normal:
		return NormalInterval, true
	case Hard:
		return HardInterval, true
	}
	return 0, false
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := d.Interval(); !ok {
		return "", errors.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return d, nil
}

// Config holds everything read at start-up.
type Config struct {
	CellSize     int
	GridExtent   int
	Difficulty   Difficulty
	TickInterval time.Duration
	MaxResets    int
	Seed         uint64
	Sound        bool
	LogFile      string
}

func Default() Config {
	return Config{
		CellSize:     DefaultCellSize,
		GridExtent:   DefaultGridExtent,
		Difficulty:   Normal,
		TickInterval: NormalInterval,
		MaxResets:    DefaultMaxResets,
		Sound:        true,
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.GridExtent < 2 {
		return errors.Errorf("grid must be at least 2 cells wide, got %d", c.GridExtent)
	}
	if c.TickInterval < MinInterval {
		return errors.Errorf("tick interval %v is below the %v minimum", c.TickInterval, MinInterval)
	}
	if c.MaxResets < 0 {
		return errors.Errorf("max resets cannot be negative, got %d", c.MaxResets)
	}
	if _, ok := c.Difficulty.Interval(); !ok {
		return errors.Errorf("unknown difficulty %q", c.Difficulty)
	}
	return nil
}

// Lookup reads one environment variable.
type Lookup func(key string) (string, bool)

// Load builds the configuration from defaults, the optional .env file,
// SNAKE_* environment variables and finally the command-line flags.
func Load(name string, args []string) (Config, error) {
	return LoadFrom(name, args, os.LookupEnv)
}

// LoadFrom is Load with an explicit environment.
func LoadFrom(name string, args []string, env Lookup) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	envFile := fs.String("env", DefaultEnvFile, "Optional .env file with SNAKE_* settings")
	cellSize := fs.Int("cell", cfg.CellSize, "Cell size in pixels")
	grid := fs.Int("grid", cfg.GridExtent, "Cells per side of the board")
	difficulty := fs.String("difficulty", string(cfg.Difficulty), "Difficulty preset: easy, normal or hard")
	speed := fs.Int("speed", 0, "Game speed in milliseconds (lower = faster), overrides -difficulty")
	maxResets := fs.Int("resets", cfg.MaxResets, "Automatic resets before game over")
	seed := fs.Uint64("seed", 0, "Random seed for food placement (0 = time based)")
	sound := fs.Bool("sound", cfg.Sound, "Play sound effects")
	logFile := fs.String("log", "", "Write the session log to this file")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	fileEnv, err := godotenv.Read(*envFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return cfg, errors.Wrapf(err, "reading %s", *envFile)
		}
		fileEnv = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := env(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	speedSet, err := applyEnv(&cfg, lookup)
	if err != nil {
		return cfg, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "cell":
			cfg.CellSize = *cellSize
		case "grid":
			cfg.GridExtent = *grid
		case "difficulty":
			d, err := ParseDifficulty(*difficulty)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Difficulty = d
			if !speedSet {
				cfg.TickInterval, _ = d.Interval()
			}
		case "speed":
			cfg.TickInterval = time.Duration(*speed) * time.Millisecond
			speedSet = true
		case "resets":
			cfg.MaxResets = *maxResets
		case "seed":
			cfg.Seed = *seed
		case "sound":
			cfg.Sound = *sound
		case "log":
			cfg.LogFile = *logFile
		}
	})
	if flagErr != nil {
		return cfg, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// applyEnv reads SNAKE_* variables into cfg. It reports whether an explicit
// speed was given, which takes precedence over the difficulty preset.
func applyEnv(cfg *Config, lookup Lookup) (bool, error) {
	speedSet := false

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_CELL_SIZE", &cfg.CellSize},
		{"SNAKE_GRID", &cfg.GridExtent},
		{"SNAKE_MAX_RESETS", &cfg.MaxResets},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return false, errors.Wrapf(err, "parsing %s", e.key)
		}
		*e.dst = n
	}

	if v, ok := lookup("SNAKE_DIFFICULTY"); ok {
		d, err := ParseDifficulty(v)
		if err != nil {
			return false, errors.Wrap(err, "parsing SNAKE_DIFFICULTY")
		}
		cfg.Difficulty = d
		cfg.TickInterval, _ = d.Interval()
	}
	if v, ok := lookup("SNAKE_SPEED_MS"); ok {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return false, errors.Wrap(err, "parsing SNAKE_SPEED_MS")
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
		speedSet = true
	}
	if v, ok := lookup("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return false, errors.Wrap(err, "parsing SNAKE_SEED")
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("SNAKE_SOUND"); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, errors.Wrap(err, "parsing SNAKE_SOUND")
		}
		cfg.Sound = on
	}
	if v, ok := lookup("SNAKE_LOG"); ok {
		cfg.LogFile = v
	}
	return speedSet, nil
}
