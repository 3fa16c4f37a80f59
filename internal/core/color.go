package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tilePalette cycles through colors as tiles double: 2, 4, 8, ...
var tilePalette = []Color{
	ColorWhite,
	ColorBrightYellow,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightMagenta,
	ColorMagenta,
	ColorBrightBlue,
	ColorBlue,
	ColorBrightCyan,
	ColorBrightGreen,
}

// TileColor returns the display color for a tile value.
// Non-positive values use the default color.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	return tilePalette[exp%len(tilePalette)]
}
