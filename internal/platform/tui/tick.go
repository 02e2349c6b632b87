// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. It maps keys to actions, drives the fixed tick loop, plays sounds and
// records finished runs.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a stale tick cannot start a second loop.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
