package core

// Color is a palette entry for a screen cell, either as foreground or background.
// The platform layer maps it to terminal colors.
type Color uint8

// Palette used by the desktop and the games.
const (
	ColorDefault Color = iota
	ColorBlack
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
	ColorDarkGray
	ColorNavy   // desktop wallpaper
	ColorSlate  // snake board, taskbar
	ColorSky    // title bars
	ColorPaper  // window bodies
	ColorAccent // highlighted entries
)
