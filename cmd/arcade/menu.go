package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/telemetry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. Leaving a game with B or Esc returns to the menu.

Examples:
  arcade menu
  arcade menu --seed 7
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	menuLogger, closeLog := fileLogger()
	defer closeLog()

	env := tui.Env{
		Store:  store,
		Logger: menuLogger,
		Tracer: telemetry.Tracer("tui"),
	}
	return tui.RunSession(env, runtimeConfig())
}
