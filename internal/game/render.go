package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := engine.Size*cellWidth + 1
	boardH := engine.Size*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))

	hint := g.Controls()
	dst.DrawText((g.screenW-len(hint))/2, boardY+boardH+1, hint)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, variant and progress line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX, 1, movesStr)

	maxStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	maxX := core.Clamp(boardX+boardW-len(maxStr), boardX, g.screenW)
	dst.DrawText(maxX, 1, maxStr)

	rule := "merge once per tile"
	if g.variant.Rule == engine.MergePerLine {
		rule = "merge once per line"
	}
	dst.DrawText(boardX+(boardW-len(rule))/2, 2, rule)
}

// renderBoard draws the grid lines and tiles. Empty cells stay blank.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, junction(x, y))

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range engine.Size {
		for col := range engine.Size {
			val := g.grid.Cell(row, col)
			if val.Empty() {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			valStr := strconv.FormatUint(uint64(val), 10)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			color := core.TileColor(int(val))
			if g.lastSpawn != nil && g.lastSpawn.Position == (engine.Position{Row: row, Col: col}) {
				color = core.ColorBrightGreen
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// junction returns the box-drawing rune for grid intersection (x, y).
func junction(x, y int) rune {
	const last = engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.grid.MaxTile())
		drawOverlay(dst, board, "Game Over!", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD move, Q quits"
}
