package engine

// IsTerminal reports whether no move can change the grid: every cell is
// occupied and no two horizontally or vertically adjacent cells are equal.
//
// Each cell is compared with its right and bottom neighbours only, which
// covers every adjacent pair exactly once.
func IsTerminal(g *Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g.cells[r][c]
			if v.Empty() {
				return false
			}
			if c < Size-1 && g.cells[r][c+1] == v {
				return false
			}
			if r < Size-1 && g.cells[r+1][c] == v {
				return false
			}
		}
	}
	return true
}

// CanMove is the negation of IsTerminal.
func CanMove(g *Grid) bool {
	return !IsTerminal(g)
}
