package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickbreak SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting at the difficulty menu.
Scores are stored per-server (all users share the same leaderboard) and
recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickbreak/host_key

Examples:
  brickbreak serve                           # Listen on :23234 with auto-generated key
  brickbreak serve --ssh :2222               # Listen on port 2222
  brickbreak serve --host-key ./my_host_key  # Use specific host key
  brickbreak serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "brickbreak-ssh")
	if err != nil {
		return err
	}

	preset, err := parseDifficulty()
	if err != nil {
		return err
	}
	// Sessions apply presets per game, so the base config is loaded as is
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        cfg,
		Preset:      preset,
	}, store, logger)
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>, press Ctrl+C to stop")
	return server.ListenAndServe()
}
