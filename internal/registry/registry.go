// Package registry maps game IDs to factories so the CLI, the SSH server
// and the window host can create games by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Game is what a host drives: it feeds input frames, advances ticks and
// renders. Implementations hold no terminal or window state.
type Game interface {
	ID() string
	Title() string

	// Reset puts the game in the stopped phase for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions in order, then advances one tick
	// when running.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cell grid for terminal hosts.
	Render(dst *core.Screen)

	// Draw paints through a pixel surface for the window host.
	Draw(dst core.Surface)

	State() core.GameState
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a new, stopped game. It must not touch the disk or the
// terminal: Register calls it once to read the game's ID and title.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register records a factory under the ID its games report.
// Panics on an empty or duplicate ID; both are programming errors caught
// at start-up.
func Register(f Factory) {
	g := f()
	info := GameInfo{ID: g.ID(), Title: g.Title()}
	if info.ID == "" {
		panic("registry: game with empty ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a fresh game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
