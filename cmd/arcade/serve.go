package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quadbreak/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with a title menu.
Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", defaultGame, "Game served to every session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	server := appConfig.Server
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	logger.SetPrefix("arcade-ssh")

	cfg := tui.SSHServerConfig{
		Address:     server.Address,
		HostKeyPath: server.HostKeyPath,
		DBPath:      appConfig.Storage.DBPath,
		IdleTimeout: server.IdleTimeout(),
		GameID:      flagServeGame,
		FrameRate:   appConfig.Display.FPS,
		Seed:        appConfig.Seed,
	}

	srv, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return srv.ListenAndServe()
}
