// rtype is a side-scrolling shooter for the terminal.
//
// Usage:
//
//	rtype                    - Play (same as rtype play)
//	rtype play               - Play the game
//	rtype serve              - Start SSH server for remote play
//	rtype scores             - Show high scores
//	rtype runs [run-id]      - Show recent runs, or one run in detail
//	rtype levels             - List available levels
//	rtype config             - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.rtype/scores.db)
//	--level-dir <path>   - Directory searched for level files
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-rtype/internal/games/rtype"
)

const gameID = "rtype"

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevelDir string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rtype",
	Short: "R-Type - a side-scrolling shooter in your terminal",
	Long: `Fly through the level, dodge the turret fire and destroy the boss.

Running rtype without a command starts a game.

Examples:
  rtype
  rtype play --difficulty hard
  rtype serve --ssh :2222
  rtype scores
  rtype runs`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rtype/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "level-dir", "", "Directory searched for level files before the built-in ones")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addGameFlags(rootCmd)
	addSoundFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
