package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rtype/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show recent runs",
	Long: `List the most recent runs, newest first, or show one run in detail.

Examples:
  rtype runs
  rtype runs --limit 50
  rtype runs 5f0c6a8e-3b1d-4d2e-9c41-7a2b8e0f1d33`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		run, err := store.RunByID(args[0])
		if errors.Is(err, storage.ErrRunNotFound) {
			return fmt.Errorf("no run with ID %q", args[0])
		}
		if err != nil {
			return err
		}
		printRun(out, run)
		return nil
	}

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-9s  %-7s  %-4s  %-8s  %s\n", "Date", "Outcome", "Score", "Boss", "Level", "Run")
	fmt.Fprintf(out, "  %-16s  %-9s  %-7s  %-4s  %-8s  %s\n", "----", "-------", "-----", "----", "-----", "---")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-16s  %-9s  %-7d  %-4d  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Score, r.BossHP, r.Level, r.RunID)
	}
	return nil
}

func printRun(w io.Writer, r storage.RunRecord) {
	fmt.Fprintf(w, "Run:        %s\n", r.RunID)
	fmt.Fprintf(w, "Date:       %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Outcome:    %s\n", r.Outcome)
	fmt.Fprintf(w, "Score:      %d\n", r.Score)
	fmt.Fprintf(w, "Boss lives: %d\n", r.BossHP)
	fmt.Fprintf(w, "Level:      %s\n", r.Level)
	fmt.Fprintf(w, "Difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(w, "Distance:   %.0f px\n", r.Scroll)
	fmt.Fprintf(w, "Ticks:      %d\n", r.Ticks)
}
