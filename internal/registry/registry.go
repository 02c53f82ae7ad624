// Package registry holds the factories for every playable game.
// Games register themselves from init(), so the platform can list and
// create them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
)

// Game is the interface every arcade game implements. Game logic never
// touches the terminal or window; the platform maps input, drives the
// tick loop and presents the rendered screen.
type Game interface {
	// ID returns a unique identifier (e.g. "carshoot"), used by the CLI
	// and as the score key.
	ID() string

	// Title returns a display name (e.g. "Car Shoot").
	Title() string

	// Reset starts or restarts the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
	Hint  string // short controls line, empty if the game has none
}

// IsVariant reports whether the game is an alternate mode of another
// game (e.g. "carshoot_practice"). Variants are reached through their
// parent's mode selector instead of the main menu.
func (g GameInfo) IsVariant() bool {
	return strings.Contains(g.ID, "_")
}

// Hinter is implemented by games that describe their controls. The hint
// is shown under the game's title in menus.
type Hinter interface {
	Hint() string
}

// DifficultySetter is implemented by games that accept a difficulty
// preset per instance.
type DifficultySetter interface {
	SetDifficulty(preset string)
}

// AudioSource is implemented by games that queue audio cues. Frontends
// drain it after every step.
type AudioSource interface {
	DrainAudio() []engine.AudioEvent
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if h, ok := g.(Hinter); ok {
		info.Hint = h.Hint()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
