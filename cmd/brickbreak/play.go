package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Without --difficulty a menu lets you pick one; with it the game starts
right away.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  R            - Reset
  Enter/Space  - Dismiss the game over dialog
  Esc          - Back to the menu (after game over)
  Q/Ctrl+C     - Quit

Examples:
  brickbreak play
  brickbreak play --difficulty easy
  brickbreak play --config ./my-brickbreak.yaml --seed 42
  brickbreak play --log-level debug --log-file brickbreak.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logOut, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut, "brickbreak")
	if err != nil {
		return err
	}

	// The menu applies presets itself, so only a fixed difficulty is applied here
	fixed := cmd.Flags().Changed("difficulty")
	presetName := ""
	if fixed {
		presetName = flagDifficulty
	}
	cfg, preset, err := config.LoadWithPreset(flagConfig, presetName)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config:  cfg,
		Preset:  preset,
		Runtime: cfg.Runtime(flagSeed),
		Store:   store,
		Logger:  logger,
		Player:  playerName(flagPlayer),
		Width:   width,
		Height:  height,
	}

	logger.Info("starting", "preset", preset, "menu", !fixed, "seed", flagSeed)
	if fixed {
		err = tui.Run(opts)
	} else {
		err = tui.RunSession(opts)
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// parseDifficulty validates --difficulty, defaulting to normal.
func parseDifficulty() (config.Preset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return "", fmt.Errorf("%w: %q", config.ErrUnknownPreset, flagDifficulty)
	}
	return preset, nil
}
