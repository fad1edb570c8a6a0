package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.brickbreak/config.yaml -> ./configs/brickbreak.yaml -> embedded default
//
// Only a custom path reports read or parse errors; the other sources fall
// through silently. Every source starts from Default(), so a file only needs
// to name the fields it changes. The result is validated.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "brickbreak.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// LoadWithPreset loads the configuration like Load and applies the named
// difficulty preset. An empty name means normal.
func LoadWithPreset(customPath, presetName string) (Config, Preset, error) {
	preset, ok := ParsePreset(presetName)
	if !ok {
		return Config{}, "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, presetName)
	}
	cfg, err := Load(customPath)
	if err != nil {
		return Config{}, "", err
	}
	ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// Parse decodes a YAML document on top of Default() and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable arena.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.step", c.Paddle.Step},
		{"bricks.rows", c.Bricks.Rows},
		{"bricks.columns", c.Bricks.Columns},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"timing.tick_ms", c.Timing.TickMillis},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Ball.SpeedX == 0 || c.Ball.SpeedY == 0 {
		return fmt.Errorf("%w: ball speed components must be nonzero, got (%d, %d)",
			ErrInvalidConfig, c.Ball.SpeedX, c.Ball.SpeedY)
	}
	if c.Paddle.BottomMargin < 0 {
		return fmt.Errorf("%w: paddle.bottom_margin must not be negative", ErrInvalidConfig)
	}
	if c.Scoring.PointsPerBrick < 0 {
		return fmt.Errorf("%w: scoring.points_per_brick must not be negative", ErrInvalidConfig)
	}
	if c.Paddle.Width > c.Arena.Width {
		return fmt.Errorf("%w: paddle width %d exceeds arena width %d",
			ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	}
	if gridW := c.Bricks.Columns * c.Bricks.Width; gridW > c.Arena.Width {
		return fmt.Errorf("%w: brick grid width %d exceeds arena width %d",
			ErrInvalidConfig, gridW, c.Arena.Width)
	}

	paddleTop := c.Arena.Height - c.Paddle.Height - c.Paddle.BottomMargin
	if gridH := c.Bricks.Rows * c.Bricks.Height; gridH >= paddleTop {
		return fmt.Errorf("%w: brick grid height %d reaches the paddle row at %d",
			ErrInvalidConfig, gridH, paddleTop)
	}
	if c.Arena.Height/2+c.Ball.Size > paddleTop {
		return fmt.Errorf("%w: ball start overlaps the paddle row", ErrInvalidConfig)
	}

	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreak", filename)
}
