package desktop

import "github.com/vovakirdan/tui-fenetres/internal/core"

var (
	styleWallpaper     = core.Style{Fg: core.ColorWhite, Bg: core.ColorNavy}
	styleBody          = core.Style{Fg: core.ColorBlack, Bg: core.ColorPaper}
	styleBorder        = core.Style{Fg: core.ColorGray, Bg: core.ColorPaper}
	styleBorderFocused = core.Style{Fg: core.ColorBlue, Bg: core.ColorPaper}
	styleTitle         = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorBlue, Bold: true}
	styleTitleBlurred  = core.Style{Fg: core.ColorWhite, Bg: core.ColorSlate}
	styleClose         = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorRed, Bold: true}
	styleButton        = core.Style{Fg: core.ColorBlack, Bg: core.ColorWhite}
	styleButtonPrimary = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorAccent, Bold: true}
	styleIcon          = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorNavy}
	styleIconLabel     = core.Style{Fg: core.ColorWhite, Bg: core.ColorNavy}
	styleMenu          = core.Style{Fg: core.ColorBlack, Bg: core.ColorWhite}
	styleMenuBorder    = core.Style{Fg: core.ColorGray, Bg: core.ColorWhite}
	styleTaskbar       = core.Style{Fg: core.ColorWhite, Bg: core.ColorDarkGray}
	styleStart         = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorAccent, Bold: true}
)

// Text styles for window content.
var (
	StyleText     = styleBody
	StyleHeading  = core.Style{Fg: core.ColorNavy, Bg: core.ColorPaper, Bold: true}
	StyleMuted    = core.Style{Fg: core.ColorGray, Bg: core.ColorPaper}
	StyleLink     = core.Style{Fg: core.ColorBlue, Bg: core.ColorPaper}
	StyleSelected = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorSky, Bold: true}
	StyleError    = core.Style{Fg: core.ColorRed, Bg: core.ColorPaper, Bold: true}
	StyleSuccess  = core.Style{Fg: core.ColorGreen, Bg: core.ColorPaper, Bold: true}
	StyleAd       = core.Style{Fg: core.ColorBlack, Bg: core.ColorBrightYellow, Bold: true}
	StyleTile     = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorSky}
)
