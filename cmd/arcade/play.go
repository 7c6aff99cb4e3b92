package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quadbreak/internal/core"
	"github.com/vovakirdan/quadbreak/internal/platform/tui"
	"github.com/vovakirdan/quadbreak/internal/registry"
	"github.com/vovakirdan/quadbreak/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing breakout in this terminal.

Controls:
  Left/A/H   - Move paddle left
  Right/D/L  - Move paddle right
  P          - Pause
  R          - Restart (after clearing the field)
  Esc/B      - Leave (while paused or finished)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --fps 60 --log-file arcade.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	// The game owns the terminal, so logs only go to a file
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: appConfig.Display.FPS,
		Seed:      appConfig.Seed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	user := os.Getenv("USER")
	runErr := tui.Run(game, cfg,
		tui.WithStore(store),
		tui.WithLogger(logger),
		tui.WithPlayer(user),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
