package config

import (
	_ "embed"
)

//go:embed defaults/brickbreak.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded YAML and
// is used when the embedded document cannot be parsed.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Size:   10,
			SpeedX: 4,
			SpeedY: 4,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			BottomMargin: 10,
			Step:         20,
		},
		Bricks: BricksConfig{
			Rows:    5,
			Columns: 10,
			Width:   75,
			Height:  20,
		},
		Scoring: ScoringConfig{
			PointsPerBrick: 10,
		},
		Timing: TimingConfig{
			TickMillis: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
