package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with how often it was played.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	stats := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		defer store.Close()
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		} else {
			logger.Warn("could not load stats", "error", err)
		}
	}

	idWidth := 2 // "ID" header
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %6s  %6s\n", idWidth, "ID", "Title", "Played", "Best")
	fmt.Printf("  %-*s  %-12s  %6s  %6s\n", idWidth, "--", "-----", "------", "----")
	for _, g := range games {
		played, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			played, best = s.GamesCount, s.HighScore
		}
		fmt.Printf("  %-*s  %-12s  %6d  %6d\n", idWidth, g.ID, g.Title, played, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
