package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rtype/internal/platform/tui"
	"github.com/vovakirdan/tui-rtype/internal/storage"
)

var (
	flagClear       bool
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  rtype scores
  rtype scores --limit 25
  rtype scores --interactive
  rtype scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and runs in a full-screen table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, "R-Type", width, height)
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - R-Type")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'rtype play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Average: %.0f   Wins: %d   Losses: %d\n",
			stats.HighScore, stats.AvgScore, stats.Wins, stats.Losses)
	}
	return nil
}
