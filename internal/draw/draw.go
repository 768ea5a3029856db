// Package draw renders into a half-block terminal canvas and writes ANSI
// output in network-friendly chunks.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal palette entry. ColorNone means an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorOrange
)

// ansi256 maps palette entries to xterm-256 color indexes.
var ansi256 = [...]int{
	ColorNone:    0,
	ColorWhite:   15,
	ColorRed:     196,
	ColorGreen:   46,
	ColorYellow:  226,
	ColorBlue:    33,
	ColorMagenta: 201,
	ColorCyan:    51,
	ColorGray:    244,
	ColorOrange:  208,
}

// fg returns the SGR sequence selecting c as the foreground color.
func (c Color) fg() string {
	return "\033[38;5;" + strconv.Itoa(ansi256[c]) + "m"
}

// bg returns the SGR sequence selecting c as the background color.
func (c Color) bg() string {
	return "\033[48;5;" + strconv.Itoa(ansi256[c]) + "m"
}

// resetStyle restores default colors.
const resetStyle = "\033[0m"

// Colorize wraps s in the SGR sequences for c.
func Colorize(s string, c Color) string {
	if c == ColorNone {
		return s
	}
	return c.fg() + s + resetStyle
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
