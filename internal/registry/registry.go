// Package registry maps rule variant IDs to their metadata and session
// factories. Variants register in init() so the CLI, the menu and the SSH
// server can enumerate rule sets without importing each one.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ErrUnknownVariant is returned by Create for IDs nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is a playable session of one variant. Implementations hold pure
// logic; the platform maps keys, drives ticks and paints the screen.
type Game interface {
	// ID is the variant identifier results are stored under.
	ID() string
	Title() string

	// Reset starts a fresh board. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Variant describes a registered rule set.
type Variant struct {
	ID    string
	Title string
	Rule  engine.MergeRule
}

// Factory creates a new session for a variant.
type Factory func() Game

type entry struct {
	variant Variant
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. It panics on an empty or duplicate ID, and when
// the factory builds sessions reporting a different ID than v.
func Register(v Variant, f Factory) {
	if v.ID == "" {
		panic("registry: variant ID is empty")
	}
	if id := f().ID(); id != v.ID {
		panic(fmt.Sprintf("registry: factory for %q builds %q sessions", v.ID, id))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	entries[v.ID] = entry{variant: v, factory: f}
}

// List returns every registered variant sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.variant)
	}
	slices.SortFunc(result, func(a, b Variant) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata registered under id.
func Lookup(id string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.variant, ok
}

// Create starts a new session of the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return e.factory(), nil
}
