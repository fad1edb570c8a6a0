//go:build ebiten

// brickbreak-gui plays brickbreak in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/gui"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagScale      float64
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "brickbreak-gui",
	Short: "Play brickbreak in a desktop window",
	Long: `Open a window sized to the arena and play with the keyboard.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  R            - Reset
  Enter/Space  - Dismiss the game over overlay
  Q/Esc        - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.brickbreak/scores.db", "Path to scores database")
	f.Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreak-gui",
		Level:           level,
	})

	cfg, preset, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	return gui.Run(gui.Options{
		Config:  cfg,
		Preset:  preset,
		Runtime: cfg.Runtime(flagSeed),
		Store:   store,
		Logger:  logger,
		Player:  os.Getenv("USER"),
		Scale:   flagScale,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
