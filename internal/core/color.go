package core

// Color is the foreground colour of a screen cell. The zero value is the
// terminal's default colour.
type Color uint8

// Palette used by the terminal renderers.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorCoral
	ColorBrown
	ColorGray

	colorCount
)

// xterm-256 indices per colour.
var ansiCodes = [colorCount]string{
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorCyan:         "6",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightBlue:   "12",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorCoral:        "209",
	ColorBrown:        "130",
	ColorGray:         "245",
}

// ANSI returns the xterm-256 palette index of c, or "" for the default
// colour and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}
