package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rtype/internal/storage"
)

const maxRows = 100

// Scoreboard tabs.
const (
	tabScores = iota
	tabRuns
)

var tabTitles = []string{"High Scores", "Recent Runs"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "previous view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores and the latest runs of one game.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	tab       int
	scores    []storage.ScoreEntry
	runs      []storage.RunRecord
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads its data.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats, m.loadErr = nil, nil, nil, nil
	if m.store == nil {
		return
	}
	if m.scores, m.loadErr = m.store.TopScores(m.gameID, maxRows); m.loadErr != nil {
		return
	}
	if m.runs, m.loadErr = m.store.RecentRuns(m.gameID, maxRows); m.loadErr != nil {
		return
	}
	m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == tabRuns {
		return []table.Column{
			{Title: "When", Width: 14},
			{Title: "Outcome", Width: 10},
			{Title: "Score", Width: 8},
			{Title: "Boss", Width: 5},
			{Title: "Level", Width: 10},
			{Title: "Diff", Width: 7},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 20},
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.tab == tabRuns {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Outcome,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.BossHP),
				r.Level,
				r.Difficulty,
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	m.tab = (m.tab + delta + len(tabTitles)) % len(tabTitles)
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(helpStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = tabStyle.Render(t)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 && m.stats.Wins == 0 && m.stats.Losses == 0 {
		return ""
	}
	s := m.stats
	return fmt.Sprintf("best %d · avg %.0f · %d wins · %d losses", s.HighScore, s.AvgScore, s.Wins, s.Losses)
}

func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are unavailable:\nno database is open.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.tab == tabScores && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nDestroy the boss to set one!")
	case m.tab == tabRuns && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in the local terminal.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	m := NewScoreboardModel(store, gameID, title, width, height)
	p := tea.NewProgram(standaloneScoreboard{m}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// standaloneScoreboard quits on Back, since there is no menu to return to.
type standaloneScoreboard struct {
	ScoreboardModel
}

func (s standaloneScoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	s.ScoreboardModel = next.(ScoreboardModel)
	if s.IsGoingBack() {
		return s, tea.Quit
	}
	return s, cmd
}
