package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rtype/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWorkers     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a title menu.
Scores and runs are stored per-server (all users share the same leaderboard).
Sound is not played over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rtype/host_key

Examples:
  rtype serve                           # Listen on :23234 with auto-generated key
  rtype serve --ssh :2222               # Listen on port 2222
  rtype serve --difficulty hard         # Every session plays on hard
  rtype serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagWorkers, "workers", 16, "Size of the database write pool")
	addGameFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	_, preset, err := gameSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("rtype-ssh", false)
	if err != nil {
		return err
	}
	defer closeLog()

	pool, err := tui.NewWorkerPool(flagWorkers, logger)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.ReleaseTimeout(5 * time.Second)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = gameID
	cfg.TickRate = flagFPS
	cfg.Level = flagLevel
	cfg.Difficulty = string(preset)

	server, err := tui.NewSSHServer(cfg, pool, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting R-Type SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
