package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"

	"github.com/gkareem2661/Snake-Game/audio"
	"github.com/gkareem2661/Snake-Game/config"
	"github.com/gkareem2661/Snake-Game/constants"
	"github.com/gkareem2661/Snake-Game/engine"
	"github.com/gkareem2661/Snake-Game/game"
	"github.com/gkareem2661/Snake-Game/render"
	"github.com/gkareem2661/Snake-Game/terminal"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Panic Recovery: restore the terminal to a sane state before printing
	// the stack so the crash is readable after the alternate screen closes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	scr, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer scr.Fini()

	// The pit plus border needs margin rows for the score line and messages
	termWidth, termHeight := scr.Size()
	if termWidth < cfg.PitWidth+constants.PitMargin || termHeight < cfg.PitHeight+constants.PitMargin {
		scr.Fini()
		fmt.Fprintf(os.Stderr, "Terminal too small! Need at least %dx%d (including borders)\n",
			cfg.PitWidth+2, cfg.PitHeight+2)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(cfg.SeedValue()))
	state := game.NewState(cfg.PitWidth, cfg.PitHeight, rng)
	renderer := render.NewRenderer(scr, cfg.PitWidth, cfg.PitHeight, resolveColorMode(cfg.ColorMode))

	var sounds engine.Sounds = engine.NopSounds{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without sound)\n", err)
		} else {
			sounds = sm
			defer sm.Close()
		}
	}

	loop := engine.NewLoop(scr, state, renderer, sounds, engine.NewRealTimeProvider(), cfg.TicksPerMove)
	loop.Run()
}

// resolveColorMode maps the flag value onto a terminal color mode,
// detecting from the environment in auto mode.
func resolveColorMode(mode string) terminal.ColorMode {
	switch mode {
	case config.Color256:
		return terminal.ColorMode256
	case config.ColorTrueColor, "true", "24bit":
		return terminal.ColorModeTrueColor
	default:
		return terminal.DetectColorMode()
	}
}
