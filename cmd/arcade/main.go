// arcade plays turn-based grid games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible piece sequences
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// A .env file in the working directory is loaded at startup. Setting
// OTEL_EXPORTER_OTLP_ENDPOINT there or in the environment enables tracing.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/storage"
	"github.com/vovakirdan/grid-arcade/internal/telemetry"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger   *log.Logger
	envErr   error
	shutdown telemetry.ShutdownFunc
)

func main() {
	envErr = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - turn-based Snake and Tetris in your terminal",
	Long: `Grid Arcade is a terminal platform for two turn-based grid games:
Snake Trail and Tetris. Nothing moves until you press a key.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play tetris
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup builds the process logger and starts telemetry.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", envErr)
	}

	shutdown, err = telemetry.Setup(cmd.Context())
	if err != nil {
		// Tracing is optional, keep playing without it
		logger.Warn("telemetry setup failed", "error", err)
		shutdown = nil
	} else if telemetry.Enabled() {
		logger.Debug("tracing enabled", "endpoint", os.Getenv(telemetry.EndpointEnv))
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown failed", "error", err)
	}
	return nil
}

// fileLogger redirects logging to ~/.arcade/arcade.log while a local TUI
// owns the terminal. It returns a close function.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return logger, func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logger, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("cannot open log file, logging disabled during play", "error", err)
		return log.New(io.Discard), func() {}
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}

// openStore opens the scores database. Failure is not fatal: games still
// run without a scoreboard.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
