package engine

// DefaultSpawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Probability = 0.1

// Source is the randomness used for spawning. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawn describes a tile placed by SpawnRandomTile.
type Spawn struct {
	Position
	Value Cell
}

// SpawnRandomTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// It is a no-op returning false when the grid is full.
func (g *Grid) SpawnRandomTile(rng Source) (Spawn, bool) {
	return g.SpawnWithOdds(rng, DefaultSpawn4Probability)
}

// SpawnWithOdds is SpawnRandomTile with a custom probability of spawning a 4.
func (g *Grid) SpawnWithOdds(rng Source, prob4 float64) (Spawn, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, false
	}

	pos := empty[rng.Intn(len(empty))]

	value := Cell(2)
	if rng.Float64() < prob4 {
		value = 4
	}

	g.set(pos, value)
	return Spawn{Position: pos, Value: value}, true
}
