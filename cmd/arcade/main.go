// arcade runs the quadbreak breakout game in the terminal.
//
// Usage:
//
//	arcade play              - Play breakout
//	arcade serve             - Start SSH server for remote play
//	arcade scores            - Show recorded runs
//	arcade sim               - Run the simulation headless and print its frame hash
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.arcade/configs, ./configs)
//	--fps <rate>        - Host frame rate (the simulation always ticks at 60 Hz)
//	--seed <value>      - RNG seed for brick health
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quadbreak/internal/config"
	_ "github.com/vovakirdan/quadbreak/internal/games/breakout" // Registers the game
)

const defaultGame = "breakout"

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Resolved before any subcommand runs
	appConfig config.ArcadeConfig
	logOutput io.WriteCloser
)

func main() {
	err := rootCmd.Execute()
	if logOutput != nil {
		logOutput.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Quadbreak - breakout in your terminal",
	Long: `Quadbreak is a fixed-timestep breakout game for the terminal.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  sim      - Run the simulation without a terminal

Examples:
  arcade play
  arcade play --seed 42
  arcade serve --ssh :2222
  arcade scores --plain
  arcade sim --ticks 3600 --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the config file, then applies flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadArcade(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// newLogger builds the process logger. Logs go to the configured file, or
// to fallback when no file is set.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	w := fallback
	if appConfig.Log.File != "" {
		f, err := os.OpenFile(appConfig.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logOutput = f
		w = f
	}

	level, err := log.ParseLevel(appConfig.Log.Level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}
