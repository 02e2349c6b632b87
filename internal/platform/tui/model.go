package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rtype/internal/audio"
	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
	"github.com/vovakirdan/tui-rtype/internal/registry"
	"github.com/vovakirdan/tui-rtype/internal/storage"
)

// statusTicks is how long a status message replaces the help line.
const statusTicks = 120

// Options are the services a GameModel uses. Every field may be left empty.
type Options struct {
	Store   *storage.Store
	Audio   *audio.Player
	Workers Submitter
	Logger  *log.Logger

	// Level and Difficulty are recorded with each run.
	Level      string
	Difficulty string

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone    bool
	ScreenshotDir string
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	seeded bool // keep the configured seed on restart
	loop   uint64

	mapper *KeyMapper
	keys   *KeyState
	help   help.Model
	input  core.InputFrame

	gameState  core.GameState
	started    bool // the run left its initial phase
	runSaved   bool
	quitting   bool
	backToMenu bool
	status     string
	statusLeft int
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	seeded := cfg.Seed != 0
	if !seeded {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		opts:   opts,
		seeded: seeded,
		mapper: NewKeyMapper(),
		keys:   NewKeyState(cfg.TickRate),
		help:   h,
		input:  core.NewInputFrame(),
		loop:   nextLoopID(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if a := m.mapper.MapMouse(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.mapper.Keys().Screenshot) {
		m.setStatus(m.saveScreenshot())
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun()
			m.backToMenu = true
			if m.opts.Standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.input.Set(action)
	m.keys.Press(action)
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	m.keys.Apply(&m.input)
	result := m.game.Step(m.input)
	m.gameState = result.State
	m.handleEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleEvents plays sounds and logs phase changes.
func (m *GameModel) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventSound:
			m.opts.Audio.Play(e.Name)
		case core.EventPhase:
			m.started = true
			m.opts.Logger.Debug("phase", "game", m.game.ID(), "phase", e.Name)
		}
	}
}

func (m *GameModel) restart() {
	if !m.seeded {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.started = false
	m.runSaved = false
	m.keys.Reset()
	m.input.Clear()
}

// finishRun records a run that is left before it ended.
func (m *GameModel) finishRun() {
	if m.started && !m.runSaved {
		m.saveRun()
	}
}

// saveRun stores the run and, when it ended, its score. The write happens
// on the worker pool.
func (m *GameModel) saveRun() {
	m.runSaved = true
	store := m.opts.Store
	if store == nil {
		return
	}

	rec := storage.RunRecord{
		RunID:      storage.NewRunID(),
		GameID:     m.game.ID(),
		Level:      m.opts.Level,
		Difficulty: m.opts.Difficulty,
		Outcome:    "abandoned",
		Score:      m.gameState.Score,
	}
	if r, ok := m.game.(registry.RunReporter); ok {
		s := r.RunSummary()
		rec.Outcome = s.Outcome
		rec.BossHP = s.BossHP
		rec.Ticks = s.Ticks
		rec.Scroll = s.Scroll
	}
	ended := m.gameState.GameOver
	logger := m.opts.Logger

	submit(m.opts.Workers, func() {
		if ended && rec.Score > 0 {
			if _, err := store.SaveScore(rec.GameID, rec.Score); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}
		if _, err := store.SaveRun(rec); err != nil {
			logger.Warn("could not save run", "error", err)
			return
		}
		logger.Info("run saved", "run", rec.RunID, "outcome", rec.Outcome, "score", rec.Score)
	})
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// saveScreenshot writes the current frame as plain text and returns a
// status line.
func (m *GameModel) saveScreenshot() string {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(config.Dir(), "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return "screenshot failed"
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	return "saved " + path
}

// View renders the game with a help line below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.mapper.Keys())
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
