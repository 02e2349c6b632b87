// Package rtype implements a side-scrolling shooter: the ship flies through a
// tile level past a roaming enemy and a ground turret, then fights a boss.
package rtype

import (
	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
	"github.com/vovakirdan/tui-rtype/internal/registry"
)

const gameID = "rtype"

// Settings chosen on the command line, applied on every Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	levelDir         string
	levelID          string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to normal; the CLI validates them first.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLevel selects the level ID and an optional directory of level files.
func SetLevel(dir, id string) {
	levelDir = dir
	levelID = id
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New()
	})
}

// Game adapts a World to the platform's Game interface and adds pause.
type Game struct {
	cfg   config.RTypeConfig
	level *Level
	fixed bool // cfg and level were injected, skip loading

	world  *World
	paused bool
}

// New creates a game that loads its settings on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config and level.
func NewWithConfig(cfg config.RTypeConfig, level *Level) *Game {
	return &Game{cfg: cfg, level: level, fixed: true}
}

func (g *Game) ID() string    { return gameID }
func (g *Game) Title() string { return "R-Type" }

// Reset starts a new run at the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixed {
		g.cfg, g.level = loadSettings()
	}
	g.world = NewWorld(g.cfg, g.level, rc.TickRate, rc.Seed)
	g.paused = false
}

// loadSettings resolves config and level from the CLI settings. Failures
// fall back to the built-in defaults; the CLI reports them before play.
func loadSettings() (config.RTypeConfig, *Level) {
	cfg, _, err := config.LoadRType(configPath)
	if err != nil {
		cfg = config.DefaultRTypeConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)

	lvl, err := LoadLevel(levelDir, levelID)
	if err != nil {
		lvl, _ = LoadLevel("", DefaultLevel)
	}
	return cfg, lvl
}

// Step advances one tick. Pause toggles on P while the run is live.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	if in.Has(core.ActionPause) && !g.world.phase.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.world.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// State reports score and whether the run has ended, won or lost.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.score,
		GameOver: g.world.phase.Terminal(),
		Paused:   g.paused,
	}
}

// Phase returns the current gameplay phase.
func (g *Game) Phase() Phase {
	if g.world == nil {
		return PhaseStart
	}
	return g.world.phase
}

// RunSummary describes the run for the history table.
func (g *Game) RunSummary() registry.RunSummary {
	if g.world == nil {
		return registry.RunSummary{Outcome: "abandoned"}
	}
	w := g.world
	outcome := "abandoned"
	switch w.phase {
	case PhaseWin:
		outcome = "win"
	case PhaseLose:
		outcome = "lose"
	}
	return registry.RunSummary{
		Outcome: outcome,
		BossHP:  w.boss.HP,
		Ticks:   w.tick,
		Scroll:  w.scroll,
	}
}
