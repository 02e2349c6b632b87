package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rtype/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Fire, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Start, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("←↑↓→/wasd", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMouse translates a mouse message. A left click starts the game.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionStart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// holdWindowMillis is how long a direction stays held after its last key
// event. Terminals report no key releases, only auto-repeat presses.
const holdWindowMillis = 180

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// KeyState emulates held direction keys. Each press (or auto-repeat) keeps
// the direction held for a short window of ticks.
type KeyState struct {
	window int
	held   map[core.Action]int
}

// NewKeyState creates a key state for the given tick rate.
func NewKeyState(tickRate int) *KeyState {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &KeyState{
		window: max(1, tickRate*holdWindowMillis/1000),
		held:   make(map[core.Action]int),
	}
}

// Press records a key event. Only directions are held; pressing one releases
// its opposite.
func (ks *KeyState) Press(a core.Action) {
	opp, ok := opposite[a]
	if !ok {
		return
	}
	delete(ks.held, opp)
	ks.held[a] = ks.window
}

// Apply marks the held directions on the frame and ages them by one tick.
func (ks *KeyState) Apply(f *core.InputFrame) {
	for a, left := range ks.held {
		f.Hold(a)
		if left <= 1 {
			delete(ks.held, a)
		} else {
			ks.held[a] = left - 1
		}
	}
}

// Holding reports whether a direction is currently held.
func (ks *KeyState) Holding(a core.Action) bool {
	return ks.held[a] > 0
}

// Reset releases every direction.
func (ks *KeyState) Reset() {
	clear(ks.held)
}
