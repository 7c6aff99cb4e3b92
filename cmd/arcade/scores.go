package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quadbreak/internal/platform/tui"
	"github.com/vovakirdan/quadbreak/internal/registry"
	"github.com/vovakirdan/quadbreak/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded runs",
	Long: `Browse recorded runs for a game.

In a terminal this opens an interactive table with aggregate stats.
With --plain, or when output is not a terminal, the best runs are
printed as text.

Examples:
  arcade scores
  arcade scores --plain --limit 5
  arcade scores --plain --recent
  arcade scores --run 2f1c9a0e-5b7d-4c1e-9a52-0b7c3d4e5f60
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		return printRun(os.Stdout, store, flagRunID)
	case flagClear:
		return clearRuns(os.Stdout, store, gameID, title)
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		return printRuns(os.Stdout, store, gameID, title, flagRecent, flagLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, gameID, title, width, height)
}

// printRuns writes a plain text table of the best or the most recent runs.
func printRuns(w io.Writer, store *storage.Store, gameID, title string, recent bool, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	heading := tui.ViewTop
	if recent {
		heading = tui.ViewRecent
		runs, err = store.RecentRuns(gameID, limit)
	} else {
		runs, err = store.TopRuns(gameID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "%s - %s\n\n", heading, title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-8s  %-12s  %-16s  %s\n", "Rank", "Score", "Bricks", "Result", "Player", "Date", "ID")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-8s  %-12s  %-16s  %s\n", "----", "-----", "------", "------", "------", "----", "--")

	for i, r := range runs {
		row := tui.RunRow(i+1, r)
		fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-8s  %-12s  %-16s  %s\n",
			row[0], row[1], row[2], row[4], row[5], r.CreatedAt.Local().Format("2006-01-02 15:04"), r.ID)
	}

	fmt.Fprintln(w)
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", high)
	}
	return nil
}

// printRun writes every recorded field of one run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	result := "quit"
	if r.Cleared {
		result = "cleared"
	}
	fmt.Fprintf(w, "Run %s\n\n", r.ID)
	fmt.Fprintf(w, "  Game:    %s\n", r.GameID)
	fmt.Fprintf(w, "  Player:  %s\n", r.Player)
	fmt.Fprintf(w, "  Score:   %d\n", r.Score)
	fmt.Fprintf(w, "  Bricks:  %d\n", r.BricksDestroyed)
	fmt.Fprintf(w, "  Lost:    %d\n", r.BallsLost)
	fmt.Fprintf(w, "  Ticks:   %d\n", r.Ticks)
	fmt.Fprintf(w, "  Seed:    %d\n", r.Seed)
	fmt.Fprintf(w, "  Result:  %s (%s)\n", result, r.EndReason)
	fmt.Fprintf(w, "  Date:    %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// clearRuns deletes the game's run history and reports how many runs went.
func clearRuns(w io.Writer, store *storage.Store, gameID, title string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs for %s\n", stats.RunsCount, title)
	return nil
}
