package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagPlayer      string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game. Snake Trail
scores are the final trail length, Tetris scores are line points.

Examples:
  arcade scores tetris
  arcade scores snake --limit 20
  arcade scores snake --player alice
  arcade scores tetris --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show games of this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store == nil {
		return errors.New("scores database unavailable")
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s scores.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		all, err := store.PlayerScores(flagPlayer, 0)
		if err != nil {
			return err
		}
		for _, e := range all {
			if e.GameID == gameID && len(scores) < flagScoresLimit {
				scores = append(scores, e)
			}
		}
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
		if err != nil {
			return err
		}
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-16s  %s\n", i+1, e.Score, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
