package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("engine: unknown direction")
	// ErrUnknownMergeRule is returned by ParseMergeRule.
	ErrUnknownMergeRule = errors.New("engine: unknown merge rule")
)

// Direction is the side of the grid tiles move toward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MergeRule decides when a tile may merge during a single move.
type MergeRule int

const (
	// MergePerTile forbids a tile created by a merge from merging again in the
	// same move. [2,2,2,2] moved left becomes [4,4,_,_].
	MergePerTile MergeRule = iota
	// MergePerLine allows at most one merge per line per move.
	// [2,2,2,2] moved left becomes [4,2,2,_].
	MergePerLine
)

// String returns the config name of the rule.
func (r MergeRule) String() string {
	switch r {
	case MergePerTile:
		return "tile"
	case MergePerLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseMergeRule converts "tile" or "line" into a MergeRule.
func ParseMergeRule(s string) (MergeRule, error) {
	switch strings.ToLower(s) {
	case "", "tile":
		return MergePerTile, nil
	case "line":
		return MergePerLine, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMergeRule, s)
}

// Merge records one combination of two equal tiles.
type Merge struct {
	From  Position // cell the moving tile left
	Into  Position // cell holding the doubled tile
	Value Cell     // value after merging
}

// Result summarizes a move.
type Result struct {
	Changed bool
	Merges  []Merge
	Slides  int // tiles that moved without merging
}

// ApplyMove moves g toward dir using MergePerTile.
// It returns true iff at least one cell changed.
func ApplyMove(g *Grid, dir Direction) bool {
	return Apply(g, dir, MergePerTile).Changed
}

// Apply moves g in place toward dir and reports what happened.
//
// Every line is scanned starting next to the destination edge and moving
// outward, so tiles closer to the edge settle first. This order decides which
// pair merges when three or more equal tiles share a line.
func Apply(g *Grid, dir Direction, rule MergeRule) Result {
	var res Result

	for line := range Size {
		l := lineWalker{grid: g, dir: dir, line: line}

		var (
			lineMerged bool
			tileMerged [Size]bool
		)

		for i := 1; i < Size; i++ {
			v := l.get(i)
			if v.Empty() {
				continue
			}

			stop := i
			for stop > 0 && l.get(stop-1).Empty() {
				stop--
			}

			if stop > 0 && l.get(stop-1) == v {
				blocked := tileMerged[stop-1]
				if rule == MergePerLine {
					blocked = lineMerged
				}
				if !blocked {
					l.set(stop-1, v*2)
					l.set(i, 0)
					lineMerged = true
					tileMerged[stop-1] = true
					res.Merges = append(res.Merges, Merge{
						From:  l.pos(i),
						Into:  l.pos(stop - 1),
						Value: v * 2,
					})
					res.Changed = true
					continue
				}
			}

			if stop != i {
				l.set(stop, v)
				l.set(i, 0)
				res.Slides++
				res.Changed = true
			}
		}
	}

	return res
}

// lineWalker maps an index along a line to a grid position.
// Index 0 is the cell on the destination edge.
type lineWalker struct {
	grid *Grid
	dir  Direction
	line int
}

func (l lineWalker) pos(i int) Position {
	switch l.dir {
	case Up:
		return Position{Row: i, Col: l.line}
	case Down:
		return Position{Row: Size - 1 - i, Col: l.line}
	case Right:
		return Position{Row: l.line, Col: Size - 1 - i}
	default:
		return Position{Row: l.line, Col: i}
	}
}

func (l lineWalker) get(i int) Cell {
	return l.grid.at(l.pos(i))
}

func (l lineWalker) set(i int, v Cell) {
	l.grid.set(l.pos(i), v)
}
