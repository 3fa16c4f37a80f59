package engine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// fixedSource returns preset values so spawn tests can pick exact cells.
type fixedSource struct {
	index int
	roll  float64
}

func (s fixedSource) Intn(n int) int {
	return s.index % n
}

func (s fixedSource) Float64() float64 {
	return s.roll
}

func mustGrid(t *testing.T, rows [Size][Size]Cell) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

func TestNewSpawnsTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := New(rand.New(rand.NewSource(seed)))
		if g.Count() != 2 {
			t.Fatalf("seed %d: Count() = %d, want 2\n%s", seed, g.Count(), g)
		}
		for r := range Size {
			for c := range Size {
				v := g.Cell(r, c)
				if !v.Empty() && v != 2 && v != 4 {
					t.Errorf("seed %d: initial tile %d at (%d, %d), want 2 or 4", seed, v, r, c)
				}
			}
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	g1 := New(rand.New(rand.NewSource(12345)))
	g2 := New(rand.New(rand.NewSource(12345)))

	if !g1.Equal(g2) {
		t.Errorf("same seed should produce the same grid:\n%s\nvs\n%s", g1, g2)
	}
}

func TestFromRowsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value Cell
	}{
		{"one", 1},
		{"three", 3},
		{"six", 6},
		{"not power of two", 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows [Size][Size]Cell
			rows[2][1] = tt.value

			_, err := FromRows(rows)
			if !errors.Is(err, ErrInvalidTile) {
				t.Errorf("FromRows() error = %v, want ErrInvalidTile", err)
			}
		})
	}
}

func TestSpawnSingleEmptyCell(t *testing.T) {
	rows := [Size][Size]Cell{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	for seed := int64(0); seed < 100; seed++ {
		g := mustGrid(t, rows)
		spawn, ok := g.SpawnRandomTile(rand.New(rand.NewSource(seed)))
		if !ok {
			t.Fatalf("seed %d: SpawnRandomTile() reported full grid", seed)
		}
		if spawn.Position != (Position{Row: 2, Col: 2}) {
			t.Errorf("seed %d: spawned at %+v, want (2, 2)", seed, spawn.Position)
		}
		v := g.Cell(2, 2)
		if v != 2 && v != 4 {
			t.Errorf("seed %d: spawned value %d, want 2 or 4", seed, v)
		}
		if v != spawn.Value {
			t.Errorf("seed %d: Spawn.Value = %d, cell holds %d", seed, spawn.Value, v)
		}
	}
}

func TestSpawnFullGridIsNoop(t *testing.T) {
	rows := [Size][Size]Cell{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	g := mustGrid(t, rows)

	if _, ok := g.SpawnRandomTile(fixedSource{}); ok {
		t.Error("SpawnRandomTile() on a full grid should report false")
	}
	if g.Rows() != rows {
		t.Errorf("full grid changed after spawn:\n%s", g)
	}
}

func TestSpawnValueOdds(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want Cell
	}{
		{"low roll spawns 4", 0.05, 4},
		{"boundary spawns 2", DefaultSpawn4Probability, 2},
		{"high roll spawns 2", 0.95, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Grid{}
			spawn, ok := g.SpawnRandomTile(fixedSource{index: 5, roll: tt.roll})
			if !ok {
				t.Fatal("SpawnRandomTile() on an empty grid should succeed")
			}
			if spawn.Value != tt.want {
				t.Errorf("spawned %d, want %d", spawn.Value, tt.want)
			}
			if spawn.Position != (Position{Row: 1, Col: 1}) {
				t.Errorf("spawned at %+v, want (1, 1)", spawn.Position)
			}
		})
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fours := 0
	const trials = 10000

	for range trials {
		g := &Grid{}
		spawn, _ := g.SpawnRandomTile(rng)
		if spawn.Value == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("share of 4s = %.3f, want about 0.10", ratio)
	}
}

func TestSpawnWithOddsAlwaysFour(t *testing.T) {
	g := &Grid{}
	spawn, _ := g.SpawnWithOdds(rand.New(rand.NewSource(1)), 1.0)
	if spawn.Value != 4 {
		t.Errorf("SpawnWithOdds(1.0) spawned %d, want 4", spawn.Value)
	}
}

func TestGridHelpers(t *testing.T) {
	g := mustGrid(t, [Size][Size]Cell{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	if got := len(g.EmptyCells()); got != 8 {
		t.Errorf("EmptyCells() count = %d, want 8", got)
	}
	if got := g.Count(); got != 8 {
		t.Errorf("Count() = %d, want 8", got)
	}
	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", got)
	}
	if got := g.Sum(); got != 2+8+64+256+512+2048+16+64 {
		t.Errorf("Sum() = %d", got)
	}
}

func TestGridString(t *testing.T) {
	g := mustGrid(t, [Size][Size]Cell{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1024},
	})

	out := g.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2*Size+1 {
		t.Fatalf("String() has %d lines, want %d", len(lines), 2*Size+1)
	}
	if lines[0] != "┌────┬────┬────┬────┐" {
		t.Errorf("top border = %q", lines[0])
	}
	if lines[1] != "│   2│    │    │    │" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[7] != "│    │    │    │1024│" {
		t.Errorf("last row = %q", lines[7])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [Size][Size]Cell{{2, 2}})
	c := g.Clone()

	ApplyMove(c, Left)

	if g.Cell(0, 0) != 2 || g.Cell(0, 1) != 2 {
		t.Errorf("moving a clone changed the original:\n%s", g)
	}
}
