// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"time"

	"github.com/vovakirdan/brickbreak/internal/core"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownPreset is returned for difficulty names that are not presets.
	ErrUnknownPreset = errors.New("unknown difficulty preset")
)

// Config contains all tunable parameters of a brickbreak game.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// ArenaConfig defines the logical viewport size.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball size and its velocity after every reset.
type BallConfig struct {
	Size   int `yaml:"size"`
	SpeedX int `yaml:"speed_x"`
	SpeedY int `yaml:"speed_y"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomMargin int `yaml:"bottom_margin"` // Gap between paddle and the arena's bottom edge
	Step         int `yaml:"step"`          // Distance moved per key press
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	PointsPerBrick int `yaml:"points_per_brick"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickInterval returns the tick period as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMillis) * time.Millisecond
}

// Runtime returns the host parameters implied by the config.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ViewportW:    c.Arena.Width,
		ViewportH:    c.Arena.Height,
		TickInterval: c.Timing.TickInterval(),
		Seed:         seed,
	}
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists all presets in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset converts a CLI value to a Preset. Empty means normal.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, true
	case PresetEasy:
		return PresetEasy, true
	case PresetHard:
		return PresetHard, true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Ball.SpeedX = 3
		cfg.Ball.SpeedY = 3
		cfg.Paddle.Width = 140
	case PresetHard:
		cfg.Ball.SpeedX = 6
		cfg.Ball.SpeedY = 6
		cfg.Paddle.Width = 70
	}
	// Keep the paddle inside narrow arenas
	if cfg.Arena.Width > 0 && cfg.Paddle.Width > cfg.Arena.Width {
		cfg.Paddle.Width = cfg.Arena.Width
	}
}
