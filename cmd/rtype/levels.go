package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rtype/internal/games/rtype"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and any valid level files found in --level-dir.
A level file in --level-dir replaces a built-in level with the same ID.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	levels, err := rtype.ListLevels(flagLevelDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	maxIDLen := 2
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Source")
	fmt.Fprintf(out, "  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "------")
	for _, l := range levels {
		fmt.Fprintf(out, "  %-*s  %-24s  %s\n", maxIDLen, l.ID, l.Name, l.Source)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'rtype play --level <id>' to play a level.")
	return nil
}
