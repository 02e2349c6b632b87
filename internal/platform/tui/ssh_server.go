package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
	"github.com/vovakirdan/tui-rtype/internal/registry"
	"github.com/vovakirdan/tui-rtype/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.rtype/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	GameID     string
	TickRate   int
	Level      string
	Difficulty string
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.rtype/scores.db",
		IdleTimeout: 30 * time.Minute,
		GameID:      "rtype",
		TickRate:    60,
	}
}

// SSHServer serves the game to SSH clients.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	workers Submitter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. workers runs database writes and
// may be nil.
func NewSSHServer(cfg SSHServerConfig, workers Submitter, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "rtype-ssh",
		})
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		workers: workers,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir := config.Dir()
		if dir == "" {
			return nil, errors.New("cannot get home directory for host key")
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	opts := Options{
		Store:      s.store,
		Workers:    s.workers,
		Logger:     s.logger.With("user", sess.User()),
		Level:      s.config.Level,
		Difficulty: s.config.Difficulty,
	}

	return NewSessionModel(s.config.GameID, cfg, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		s.Shutdown()
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel is the top-level model of an SSH session:
// menu, then game or scoreboard, then back to the menu.
type SessionModel struct {
	gameID string
	config core.RuntimeConfig
	opts   Options

	view       sessionView
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session for the given game.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, opts Options) SessionModel {
	m := SessionModel{gameID: gameID, config: cfg, opts: opts}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) title() string {
	for _, g := range registry.List() {
		if g.ID == m.gameID {
			return g.Title
		}
	}
	return m.gameID
}

func (m SessionModel) newMenu() MenuModel {
	high := 0
	if m.opts.Store != nil {
		if h, err := m.opts.Store.HighScore(m.gameID); err == nil {
			high = h
		}
	}
	return NewMenuModel(m.title(), high, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "error", err)
			m.menu = m.newMenu()
			return m, nil
		}
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.gameModel = NewGameModel(game, cfg, m.opts)
		m.view = viewGame
		return m, m.gameModel.Init()
	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.gameID, m.title(), m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	m.gameModel = next.(GameModel)

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
