// Package registry maps game IDs to factories. Variants register
// themselves from init, so front ends and the CLI find them by ID without
// importing game packages directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Game is a playable variant as seen by the front ends. Implementations
// hold only simulation state; input mapping, timing, sound and drawing
// belong to the platform packages.
type Game interface {
	// ID is the stable key used on the command line and in the score
	// database ("fish", "flappy").
	ID() string
	Title() string

	// Reset reloads configuration and returns to the title screen.
	// Restarts after a crash happen inside Step and keep the clock.
	Reset(cfg core.RuntimeConfig)

	// Step advances by dt seconds and reports the resulting state and
	// the events raised during the frame.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Resize tells the game the playfield changed, in cells.
	Resize(w, h int)

	// Render draws the current frame into a cleared terminal screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. The title is read from a probe instance,
// whose ID must match. Registering an id twice panics.
func Register(id string, f Factory) {
	probe := f()
	if probe.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds %q", id, probe.ID()))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: probe.Title()}, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the description of id without creating a game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create builds a new instance of id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
