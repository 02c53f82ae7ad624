package core

// Color is a foreground color for a screen cell.
// Values map onto the ANSI 16-color palette plus a few 256-color extras.
type Color uint8

// Palette used by sprite presets and HUD text.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)
