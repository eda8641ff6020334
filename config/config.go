// Package config carries the runtime options for one game session and
// binds them to command-line flags. The defaults reproduce the classic
// behavior: a 40x20 pit, a move every 2nd tick, auto-detected color.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/gkareem2661/Snake-Game/constants"
)

// Color mode names accepted by the -color flag
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the full set of session options.
type Config struct {
	PitWidth     int
	PitHeight    int
	TicksPerMove int    // Snake moves every Nth tick; 1 is fastest
	ColorMode    string // auto, truecolor, 256
	Sound        bool
	Seed         int64 // 0 seeds from the current time
}

// Default returns the classic configuration.
func Default() Config {
	return Config{
		PitWidth:     constants.DefaultPitWidth,
		PitHeight:    constants.DefaultPitHeight,
		TicksPerMove: constants.DefaultTicksPerMove,
		ColorMode:    ColorAuto,
		Sound:        true,
	}
}

// RegisterFlags binds the config fields to fs. Call fs.Parse afterwards.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.PitWidth, "pit-width", c.PitWidth, "playable area width in cells")
	fs.IntVar(&c.PitHeight, "pit-height", c.PitHeight, "playable area height in cells")
	fs.IntVar(&c.TicksPerMove, "speed", c.TicksPerMove, "ticks between snake moves (1 = fastest)")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "color mode: auto, truecolor, 256")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "enable sound effects")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time-based)")
}

// Validate checks ranges and the color mode name.
func (c *Config) Validate() error {
	if c.PitWidth < constants.MinPitWidth || c.PitHeight < constants.MinPitHeight {
		return fmt.Errorf("pit must be at least %dx%d, got %dx%d",
			constants.MinPitWidth, constants.MinPitHeight, c.PitWidth, c.PitHeight)
	}
	if c.TicksPerMove < 1 {
		return fmt.Errorf("speed must be at least 1, got %d", c.TicksPerMove)
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, "true", "24bit", Color256:
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	return nil
}

// SeedValue resolves the effective RNG seed.
func (c Config) SeedValue() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
