package core

// Color is the foreground of a screen cell. The zero value is the
// terminal's own colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// Board roles.
const (
	ColorFood  = ColorBrightRed
	ColorHead  = ColorBrightGreen
	ColorBody  = ColorGreen
	ColorFrame = ColorGray
	ColorCrash = ColorBrightRed
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
}

// ANSI returns the 256-colour palette index, or "" for the default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
