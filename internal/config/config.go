// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for a blockfall session.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity tick.
type TimingConfig struct {
	TickIntervalMS int           `yaml:"tick_interval_ms"`
	Speedup        SpeedupConfig `yaml:"speedup"`
}

// SpeedupConfig shortens the tick interval as rows are cleared.
type SpeedupConfig struct {
	Enabled       bool `yaml:"enabled"`
	LinesPerLevel int  `yaml:"lines_per_level"`
	StepMS        int  `yaml:"step_ms"`         // Interval reduction per level
	MinIntervalMS int  `yaml:"min_interval_ms"` // Floor for the interval
}

// ScoringConfig defines points awarded for cleared rows.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// GameplayConfig toggles rule variants.
type GameplayConfig struct {
	DetectGameOver bool `yaml:"detect_game_over"`
}

// TickInterval returns the base gravity interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board.width must be at least 4, got %d", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: board.height must be at least 4, got %d", ErrInvalid, c.Board.Height)
	case c.Timing.TickIntervalMS <= 0:
		return fmt.Errorf("%w: timing.tick_interval_ms must be positive, got %d", ErrInvalid, c.Timing.TickIntervalMS)
	case c.Scoring.PointsPerLine < 0:
		return fmt.Errorf("%w: scoring.points_per_line must not be negative, got %d", ErrInvalid, c.Scoring.PointsPerLine)
	}

	if s := c.Timing.Speedup; s.Enabled {
		if s.LinesPerLevel <= 0 {
			return fmt.Errorf("%w: timing.speedup.lines_per_level must be positive", ErrInvalid)
		}
		if s.MinIntervalMS <= 0 {
			return fmt.Errorf("%w: timing.speedup.min_interval_ms must be positive", ErrInvalid)
		}
	}
	return nil
}
