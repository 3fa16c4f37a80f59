// Package engine implements the rules of the sliding-tile merge puzzle:
// the fixed-size grid, random tile spawning, directional moves with merge
// semantics and terminal-state detection.
//
// The package has no dependencies beyond the standard library so the rules
// stay pure and testable. Rendering and input live in the platform layer.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the grid dimension.
const Size = 4

// ErrInvalidTile is returned when a grid is built from a value that is neither
// empty nor a power of two of at least 2.
var ErrInvalidTile = errors.New("engine: invalid tile value")

// Cell is a single grid value. Zero means empty.
type Cell uint32

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return c == 0
}

// Valid reports whether c is empty or a power of two >= 2.
func (c Cell) Valid() bool {
	return c == 0 || (c >= 2 && c&(c-1) == 0)
}

// Position addresses a cell. Row 0 is the top, Col 0 the left.
type Position struct {
	Row, Col int
}

// Grid is a Size x Size row-major board.
type Grid struct {
	cells [Size][Size]Cell
}

// New returns a grid with two tiles spawned from rng.
func New(rng Source) *Grid {
	g := &Grid{}
	g.SpawnRandomTile(rng)
	g.SpawnRandomTile(rng)
	return g
}

// FromRows builds a grid from explicit values, validating every cell.
func FromRows(rows [Size][Size]Cell) (*Grid, error) {
	for r := range Size {
		for c := range Size {
			if !rows[r][c].Valid() {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, rows[r][c], r, c)
			}
		}
	}
	return &Grid{cells: rows}, nil
}

// Cell returns the value at (row, col). Indices outside [0, Size) panic.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row][col]
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [Size][Size]Cell {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether both grids hold the same values.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// EmptyCells returns all empty positions in row-major order.
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if g.cells[r][c].Empty() {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if !g.cells[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += int(g.cells[r][c])
		}
	}
	return total
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() Cell {
	var maxVal Cell
	for r := range Size {
		for c := range Size {
			if g.cells[r][c] > maxVal {
				maxVal = g.cells[r][c]
			}
		}
	}
	return maxVal
}

// String draws the grid with box characters; empty cells are blank.
func (g *Grid) String() string {
	const cellWidth = 4

	var sb strings.Builder
	border := func(left, mid, right string) {
		sb.WriteString(left)
		for c := range Size {
			sb.WriteString(strings.Repeat("─", cellWidth))
			if c < Size-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}

	border("┌", "┬", "┐")
	for r := range Size {
		for c := range Size {
			sb.WriteString("│")
			if g.cells[r][c].Empty() {
				sb.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			val := strconv.FormatUint(uint64(g.cells[r][c]), 10)
			sb.WriteString(strings.Repeat(" ", max(cellWidth-len(val), 0)))
			sb.WriteString(val)
		}
		sb.WriteString("│\n")
		if r < Size-1 {
			border("├", "┼", "┤")
		}
	}
	border("└", "┴", "┘")
	return sb.String()
}

// set stores v at p. Only the move engine and spawn mutate cells.
func (g *Grid) set(p Position, v Cell) {
	g.cells[p.Row][p.Col] = v
}

func (g *Grid) at(p Position) Cell {
	return g.cells[p.Row][p.Col]
}
