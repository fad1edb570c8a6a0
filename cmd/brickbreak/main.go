// brickbreak is a brick breaking game for the terminal.
//
// Usage:
//
//	brickbreak play            - Play in this terminal
//	brickbreak serve           - Start SSH server for remote play
//	brickbreak scores [preset] - Show high scores
//	brickbreak config dump     - Print the default configuration
//	brickbreak config check    - Validate a configuration file
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--seed <value>        - RNG seed for reproducible brick colors
//	--db <path>           - Scores database (default: ~/.brickbreak/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "Brickbreak - break bricks in your terminal",
	Long: `Brickbreak is a classic brick breaking game. Keep the ball in play
with the paddle and clear the wall of bricks above.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Inspect and validate configuration

Examples:
  brickbreak play
  brickbreak play --difficulty hard
  brickbreak serve --ssh :2222
  brickbreak scores easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.brickbreak/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write play logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
