package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rtype/internal/audio"
	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
	"github.com/vovakirdan/tui-rtype/internal/games/rtype"
	"github.com/vovakirdan/tui-rtype/internal/platform/tui"
	"github.com/vovakirdan/tui-rtype/internal/registry"
	"github.com/vovakirdan/tui-rtype/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter/Click  - Start
  P            - Pause
  R            - Restart (after the run ends)
  Esc/B        - Leave (when paused or after the run ends)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer boss lives, fewer and slower turret shots
  normal - Config values as loaded
  hard   - More boss lives, more and faster turret shots
  fixed  - Config values as loaded, never adjusted

Examples:
  rtype play
  rtype play --difficulty hard
  rtype play --level level2 --level-dir ./levels
  rtype play --config ./my-rtype.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	addSoundFlags(playCmd)
}

// addGameFlags registers the flags that select what is played.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevel, "level", rtype.DefaultLevel, "Level ID")
}

func addSoundFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// gameSettings checks the game flags and hands them to the game package.
// It returns the resolved config so callers can use its audio settings.
func gameSettings() (config.RTypeConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RTypeConfig{}, "", err
	}
	cfg, _, err := config.LoadRType(flagConfig)
	if err != nil {
		return config.RTypeConfig{}, "", err
	}
	if _, err := rtype.LoadLevel(flagLevelDir, flagLevel); err != nil {
		return config.RTypeConfig{}, "", err
	}

	rtype.SetConfigPath(flagConfig)
	rtype.SetDifficultyPreset(string(preset))
	rtype.SetLevel(flagLevelDir, flagLevel)
	return cfg, preset, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := gameSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("rtype", true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Logger:     logger,
		Level:      flagLevel,
		Difficulty: string(preset),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	// Released before the store closes, so pending writes finish first.
	pool, err := tui.NewWorkerPool(4, logger)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.ReleaseTimeout(3 * time.Second)
	opts.Workers = pool

	if !flagMute {
		player := audio.NewPlayer(cfg.Audio, pool)
		if err := player.Start(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Audio = player
		}
	}

	logger.Info("starting game", "level", flagLevel, "difficulty", preset, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
