package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space
	ActionStart          // Enter, mouse click
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionStart:   "Start",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input for one simulation tick.
//
// Actions holds edge-triggered presses (true only on the tick the key went
// down). Held holds level-triggered state for actions the platform considers
// still pressed.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held down this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Holding returns true if the action is held or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
