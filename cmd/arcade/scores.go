package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the best runs for the specified game.

Examples:
  arcade scores carshoot
  arcade scores roadrace --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		level := entry.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %s\n",
			i+1, entry.Score, level, entry.Duration.Round(time.Second), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Played: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.PlayTime.Round(time.Second))
	}
	return nil
}
