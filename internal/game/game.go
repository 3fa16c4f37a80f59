package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Game implements one puzzle session.
type Game struct {
	variant    Variant
	rng        *rand.Rand
	grid       *engine.Grid
	spawn4Prob float64
	tick       uint64
	moves      int
	lastSpawn  *engine.Spawn

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the rule set in use.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawn4Prob = min(max(cfg.Spawn4Prob, 0), 1)

	g.tick = 0
	g.moves = 0
	g.lastSpawn = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false

	g.grid = &engine.Grid{}
	g.spawnTile()
	g.spawnTile()

	g.checkScreenSize()
}

// Resize adapts the layout to a new screen size without touching the grid.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) spawnTile() {
	if s, ok := g.grid.SpawnWithOdds(g.rng, g.spawn4Prob); ok {
		g.lastSpawn = &s
	}
}

func (g *Game) checkScreenSize() {
	// Board (25 wide, 9 tall) + HUD (3 lines) + controls line
	minW := 29
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.Move(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor picks the move requested by a frame. Only one move is made
// per tick; Up wins over Down over Left over Right.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// Move applies dir to the grid. A move that changes nothing does not spawn
// a tile and does not count. Returns whether the grid changed.
func (g *Game) Move(dir engine.Direction) bool {
	if g.gameOver {
		return false
	}

	res := engine.Apply(g.grid, dir, g.variant.Rule)
	if !res.Changed {
		return false
	}

	g.moves++
	g.spawnTile()

	if engine.IsTerminal(g.grid) {
		g.gameOver = true
	}
	return true
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() *engine.Grid {
	return g.grid.Clone()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		MaxTile:  int(g.grid.MaxTile()),
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
