package rtype

// Phase is the gameplay state. Exactly one phase is current at any time.
type Phase int

const (
	PhaseStart  Phase = iota // title screen, waiting for start
	PhaseScroll              // camera scrolls through the level
	PhaseBoss                // camera stopped at the boss
	PhaseWin
	PhaseLose
)

var phaseNames = [...]string{
	PhaseStart:  "startScreen",
	PhaseScroll: "scrollGame",
	PhaseBoss:   "bossGame",
	PhaseWin:    "winGame",
	PhaseLose:   "loseGame",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether the phase accepts no further events.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// Event drives phase transitions.
type Event int

const (
	EventStart Event = iota
	EventScrollLimit
	EventBossDestroyed
	EventPlayerDestroyed
)

var eventNames = [...]string{
	EventStart:           "start",
	EventScrollLimit:     "scrollLimit",
	EventBossDestroyed:   "bossDestroyed",
	EventPlayerDestroyed: "playerDestroyed",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

var transitions = map[Phase]map[Event]Phase{
	PhaseStart: {
		EventStart:           PhaseScroll,
		EventPlayerDestroyed: PhaseLose,
	},
	PhaseScroll: {
		EventScrollLimit:     PhaseBoss,
		EventBossDestroyed:   PhaseWin,
		EventPlayerDestroyed: PhaseLose,
	},
	PhaseBoss: {
		EventBossDestroyed:   PhaseWin,
		EventPlayerDestroyed: PhaseLose,
	},
}

// Transition returns the phase reached from p on event e, and false when the
// event is not accepted in p.
func Transition(p Phase, e Event) (Phase, bool) {
	next, ok := transitions[p][e]
	return next, ok
}
