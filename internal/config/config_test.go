package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 12\nscoring:\n  points_per_line: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 12 {
		t.Errorf("Board.Width = %d, expected 12", cfg.Board.Width)
	}
	if cfg.Scoring.PointsPerLine != 25 {
		t.Errorf("PointsPerLine = %d, expected 25", cfg.Scoring.PointsPerLine)
	}
	// Unset keys keep their defaults
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if !cfg.Gameplay.DetectGameOver {
		t.Error("DetectGameOver should default to true")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"narrow board", func(c *Config) { c.Board.Width = 3 }, false},
		{"short board", func(c *Config) { c.Board.Height = 0 }, false},
		{"zero tick", func(c *Config) { c.Timing.TickIntervalMS = 0 }, false},
		{"negative score", func(c *Config) { c.Scoring.PointsPerLine = -1 }, false},
		{"zero score allowed", func(c *Config) { c.Scoring.PointsPerLine = 0 }, true},
		{"speedup without levels", func(c *Config) {
			c.Timing.Speedup.Enabled = true
			c.Timing.Speedup.LinesPerLevel = 0
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestTickInterval(t *testing.T) {
	if got := Default().TickInterval(); got != 500*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 500ms", got)
	}
}

func TestSpeedCurve(t *testing.T) {
	timing := Default().Timing

	// Disabled curve never changes
	flat := NewSpeedCurve(timing)
	if got := flat.Interval(100); got != 500*time.Millisecond {
		t.Errorf("disabled Interval(100) = %v, expected 500ms", got)
	}

	timing.Speedup.Enabled = true
	curve := NewSpeedCurve(timing)

	tests := []struct {
		lines    int
		level    int
		interval time.Duration
	}{
		{0, 0, 500 * time.Millisecond},
		{9, 0, 500 * time.Millisecond},
		{10, 1, 460 * time.Millisecond},
		{25, 2, 420 * time.Millisecond},
		{1000, 100, 100 * time.Millisecond}, // clamped to min
	}

	for _, tc := range tests {
		if got := curve.Level(tc.lines); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.lines, got, tc.level)
		}
		if got := curve.Interval(tc.lines); got != tc.interval {
			t.Errorf("Interval(%d) = %v, expected %v", tc.lines, got, tc.interval)
		}
	}
}
