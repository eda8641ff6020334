package config

import (
	"flag"
	"testing"
)

// TestDefaultValid verifies the classic defaults pass validation
func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config valid, got %v", err)
	}
	if cfg.PitWidth != 40 || cfg.PitHeight != 20 {
		t.Errorf("Expected 40x20 pit, got %dx%d", cfg.PitWidth, cfg.PitHeight)
	}
	if cfg.TicksPerMove != 2 {
		t.Errorf("Expected 2 ticks per move, got %d", cfg.TicksPerMove)
	}
}

// TestValidateRejects verifies range and enum checks
func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"pit too narrow", func(c *Config) { c.PitWidth = 10 }},
		{"pit too short", func(c *Config) { c.PitHeight = 10 }},
		{"zero speed", func(c *Config) { c.TicksPerMove = 0 }},
		{"bad color mode", func(c *Config) { c.ColorMode = "16" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestRegisterFlags verifies flags override the defaults
func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{
		"-pit-width", "30", "-pit-height", "25",
		"-speed", "1", "-color", "256", "-sound=false", "-seed", "99",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.PitWidth != 30 || cfg.PitHeight != 25 {
		t.Errorf("Expected 30x25 pit, got %dx%d", cfg.PitWidth, cfg.PitHeight)
	}
	if cfg.TicksPerMove != 1 {
		t.Errorf("Expected speed 1, got %d", cfg.TicksPerMove)
	}
	if cfg.ColorMode != "256" {
		t.Errorf("Expected color mode 256, got %q", cfg.ColorMode)
	}
	if cfg.Sound {
		t.Error("Expected sound disabled")
	}
	if cfg.SeedValue() != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.SeedValue())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected parsed config valid, got %v", err)
	}
}

// TestSeedValueDefault verifies the zero seed falls back to a time seed
func TestSeedValueDefault(t *testing.T) {
	cfg := Default()
	if cfg.SeedValue() == 0 {
		t.Error("Expected non-zero time-based seed")
	}
}
