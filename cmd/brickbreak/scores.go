package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores",
	Long: `Display the top high scores for a difficulty preset. The preset
defaults to --difficulty, or normal.

Examples:
  brickbreak scores
  brickbreak scores hard --limit 20
  brickbreak scores --interactive
  brickbreak scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the preset")
}

func runScores(_ *cobra.Command, args []string) error {
	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownPreset, name)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(string(preset)); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", preset)
		return nil
	}

	if flagInteractive {
		logger, err := newLogger(io.Discard, "brickbreak")
		if err != nil {
			return err
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, logger, preset, width, height)
	}

	return printScores(os.Stdout, store, preset, flagLimit)
}

// printScores writes a plain-text score table for one preset.
func printScores(w io.Writer, store *storage.Store, preset config.Preset, limit int) error {
	scores, err := store.TopScores(string(preset), limit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", preset)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'brickbreak play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(string(preset))
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
