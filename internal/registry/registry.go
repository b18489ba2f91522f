// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nordvik/icedrift/internal/engine"
)

// Game is the interface the platform drives. Implementations contain pure
// round logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, and terminal display.
type Game interface {
	// ID returns a unique identifier for this variant (e.g. "icedrift").
	// Used for CLI commands and history storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Practice reports whether this variant uses a throwaway wallet that
	// must not be persisted.
	Practice() bool

	// Reset initializes or resets the session state. The RuntimeConfig
	// provides screen dimensions, the RNG seed, and the wallet balance.
	Reset(cfg engine.RuntimeConfig)

	// Measure derives lane geometry from the terminal size. The platform
	// feeds the result to Calibrate on startup and on every resize.
	Measure(screenW, screenH int) engine.Geometry

	// Calibrate supplies measured ship/lane geometry. The game stays in
	// its idle phase until the first valid call arrives.
	Calibrate(geom engine.Geometry)

	// Step advances the simulation by the elapsed wall-clock delta.
	Step(dt time.Duration) engine.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *engine.Screen)

	// State returns the current round and ledger state.
	State() engine.GameState

	// BetLimits returns the smallest accepted stake and the increment
	// used by bet adjustment keys.
	BetLimits() (min, step float64)

	// Player commands. Each returns a human-readable status string along
	// with the domain error, never panics, and is a no-op on failure.
	PlaceBet(amount float64) (string, error)
	CancelBet() (string, error)
	CashOut() (string, error)
	ForceStart() (string, error)
}

// GameInfo contains metadata about a registered game variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
