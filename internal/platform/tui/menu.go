package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one selectable menu line.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Label: "Play", Choice: ChoicePlay},
	{Label: "High Scores", Choice: ChoiceScores},
	{Label: "Quit", Choice: ChoiceQuit},
}

// MenuModel is the title menu shown to SSH players.
type MenuModel struct {
	title     string
	highScore int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a menu. highScore is shown under the title when
// positive.
func NewMenuModel(title string, highScore, width, height int) MenuModel {
	return MenuModel{
		title:     title,
		highScore: highScore,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.selected = ChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.selected = menuItems[m.cursor].Choice
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// Selected returns the chosen item, ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(1, m.height/4)))
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(helpStyle.Render(fmt.Sprintf("high score %d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + item.Label + "  "
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Label + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("↑/↓ navigate · enter select · q quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}
