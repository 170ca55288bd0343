package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/blockfall.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			TickIntervalMS: 500,
			Speedup: SpeedupConfig{
				Enabled:       false,
				LinesPerLevel: 10,
				StepMS:        40,
				MinIntervalMS: 100,
			},
		},
		Scoring: ScoringConfig{
			PointsPerLine: 10,
		},
		Gameplay: GameplayConfig{
			DetectGameOver: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
