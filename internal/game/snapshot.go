package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// StateType represents the current session state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state. Screenshots store it next to
// the rendered text.
type Snapshot struct {
	Tick    uint64                        `yaml:"tick"`
	Variant string                        `yaml:"variant"`
	Moves   int                           `yaml:"moves"`
	MaxTile int                           `yaml:"max_tile"`
	Grid    [engine.Size][engine.Size]int `yaml:"grid,flow"`
	State   StateType                     `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var cells [engine.Size][engine.Size]int
	for r := range engine.Size {
		for c := range engine.Size {
			cells[r][c] = int(g.grid.Cell(r, c))
		}
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Moves:   g.moves,
		MaxTile: int(g.grid.MaxTile()),
		Grid:    cells,
		State:   state,
	}
}
