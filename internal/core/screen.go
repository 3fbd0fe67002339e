package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style is the color attribute pair of a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Cell is one character position of the screen buffer.
// A Rune of 0 marks the trailing half of a double-width glyph.
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is a 2D cell buffer for rendering the desktop and the games.
// It decouples drawing from the terminal: components paint runes and styles
// while the platform layer turns the buffer into escape sequences.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(0, width),
		height: max(0, height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = max(0, width)
	s.height = max(0, height)
	s.allocate()
	s.Clear()

	copyW := min(oldW, s.width)
	copyH := min(oldH, s.height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.FillStyle(' ', Style{})
}

// FillStyle fills the entire screen with the given rune and style.
func (s *Screen) FillStyle(r rune, st Style) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Style: st}
		}
	}
}

// Set places a rune at the given position, keeping the cell's style.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.SetCell(x, y, Cell{Rune: r, Style: s.cells[y][x].Style})
}

// SetCell places a full cell at the given position.
// Overwriting either half of a double-width glyph blanks the other half so
// rows keep their column alignment.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	row := s.cells[y]
	if row[x].Rune == 0 && x > 0 {
		row[x-1].Rune = ' '
	}
	if x+1 < s.width && row[x+1].Rune == 0 {
		row[x+1].Rune = ' '
	}
	row[x] = c
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// DrawText writes a string horizontally starting at (x, y), keeping styles.
// Characters that extend beyond screen bounds are clipped.
// Returns the number of columns consumed.
func (s *Screen) DrawText(x, y int, text string) int {
	col := x
	for _, r := range text {
		col += s.putRune(col, y, r, nil)
	}
	return col - x
}

// DrawStyledText writes a string with the given style.
// Returns the number of columns consumed.
func (s *Screen) DrawStyledText(x, y int, text string, st Style) int {
	col := x
	for _, r := range text {
		col += s.putRune(col, y, r, &st)
	}
	return col - x
}

// putRune writes one rune and returns its display width.
func (s *Screen) putRune(x, y int, r rune, st *Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	style := s.GetCell(x, y).Style
	if st != nil {
		style = *st
	}
	if w == 2 && x+1 >= s.width {
		// No room for the trailing half.
		s.SetCell(x, y, Cell{Rune: ' ', Style: style})
		return w
	}
	if w == 2 {
		// Clear whatever sat under the trailing half before claiming it.
		s.SetCell(x+1, y, Cell{Rune: ' ', Style: style})
	}
	s.SetCell(x, y, Cell{Rune: r, Style: style})
	if w == 2 && s.inBounds(x+1, y) {
		s.cells[y][x+1] = Cell{Rune: 0, Style: style}
	}
	return w
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a rectangular area with the given rune and style.
func (s *Screen) FillRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, Cell{Rune: fill, Style: st})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// TextWidth returns the number of terminal columns a string occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, adding an ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}
