// Package registry maps game IDs to factories. Games register themselves in
// init() so the platform can create them without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-rtype/internal/core"
)

// Game is the interface the platform drives. Implementations contain pure
// logic with no Bubble Tea dependency; the platform owns input mapping,
// timing and terminal output.
type Game interface {
	// ID returns a unique identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// RunSummary describes how a finished run ended.
type RunSummary struct {
	Outcome string // "win", "lose" or "abandoned"
	BossHP  int
	Ticks   int
	Scroll  float64
}

// RunReporter is implemented by games that can summarize a run for the
// run history.
type RunReporter interface {
	RunSummary() RunSummary
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
