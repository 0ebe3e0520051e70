package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/games/tetris"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/telemetry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Every key press is one turn.

Snake Trail controls:
  Arrows/WASD  - Move the head one cell
  R            - Restart (after game over)

Tetris controls:
  Left/Right   - Shift the piece
  Up/X         - Rotate clockwise
  Down/Space   - Drop one row (locks when blocked)
  R            - Restart (after game over)

Everywhere:
  B/Esc        - Leave the game
  Ctrl+S       - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Examples:
  arcade play snake
  arcade play tetris --seed 42
  arcade play tetris --config ./wide-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	switch gameID {
	case snake.GameID:
		snake.SetConfigPath(flagConfig)
	case tetris.GameID:
		tetris.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	playLogger, closeLog := fileLogger()
	defer closeLog()

	env := tui.Env{
		Store:  store,
		Logger: playLogger,
		Tracer: telemetry.Tracer("tui"),
	}
	if err := tui.Run(game, env, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
