package desktop

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// Content fills the body of a window.
type Content interface {
	// Size is the preferred content size in cells.
	Size() (w, h int)
	// Draw paints the content into area.
	Draw(dst *core.Screen, area core.Rect)
	// Click handles a press at p, relative to the content origin.
	Click(p core.Point) bool
}

// Line is one row of text content. Rows with OnClick are clickable.
type Line struct {
	Text    string
	Style   core.Style
	Indent  int
	OnClick func()
}

// TextContent is a column of styled lines.
type TextContent struct {
	Lines []Line
	// MinWidth widens the content past its longest line.
	MinWidth int
}

// Text builds content from plain lines in the default style.
func Text(lines ...string) *TextContent {
	c := &TextContent{}
	for _, l := range lines {
		c.Add(l, StyleText)
	}
	return c
}

// Add appends a line.
func (c *TextContent) Add(text string, style core.Style) *TextContent {
	c.Lines = append(c.Lines, Line{Text: text, Style: style})
	return c
}

// AddWrapped appends text word-wrapped at width.
func (c *TextContent) AddWrapped(text string, width int, style core.Style) *TextContent {
	for _, l := range Wrap(text, width) {
		c.Add(l, style)
	}
	return c
}

// AddLink appends a clickable line.
func (c *TextContent) AddLink(text string, style core.Style, fn func()) *TextContent {
	c.Lines = append(c.Lines, Line{Text: text, Style: style, OnClick: fn})
	return c
}

// Blank appends an empty line.
func (c *TextContent) Blank() *TextContent {
	return c.Add("", StyleText)
}

func (c *TextContent) Size() (int, int) {
	w := c.MinWidth
	for _, l := range c.Lines {
		w = max(w, l.Indent+core.TextWidth(l.Text))
	}
	return w, len(c.Lines)
}

func (c *TextContent) Draw(dst *core.Screen, area core.Rect) {
	for i, l := range c.Lines {
		if i >= area.H {
			return
		}
		y := area.Y + i
		if l.Style != StyleText {
			dst.FillRect(core.NewRect(area.X, y, area.W, 1), ' ', l.Style)
		}
		dst.DrawStyledText(area.X+l.Indent, y, core.Truncate(l.Text, area.W-l.Indent), l.Style)
	}
}

func (c *TextContent) Click(p core.Point) bool {
	if p.Y < 0 || p.Y >= len(c.Lines) {
		return false
	}
	if fn := c.Lines[p.Y].OnClick; fn != nil {
		fn()
		return true
	}
	return false
}

// Wrap splits text into lines no wider than width. Words break on spaces;
// a word longer than width is cut. Explicit newlines are kept.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// Columns lays content side by side: a fixed-width left pane and a right pane.
type Columns struct {
	Left      Content
	Right     Content
	LeftWidth int
	Gap       int
}

func (c *Columns) Size() (int, int) {
	lw, lh := c.Left.Size()
	rw, rh := c.Right.Size()
	return max(lw, c.LeftWidth) + c.Gap + rw, max(lh, rh)
}

func (c *Columns) leftWidth() int {
	lw, _ := c.Left.Size()
	return max(lw, c.LeftWidth)
}

func (c *Columns) Draw(dst *core.Screen, area core.Rect) {
	lw := min(c.leftWidth(), area.W)
	c.Left.Draw(dst, core.NewRect(area.X, area.Y, lw, area.H))
	for y := area.Y; y < area.Bottom(); y++ {
		dst.SetCell(area.X+lw+c.Gap/2, y, core.Cell{Rune: '│', Style: StyleMuted})
	}
	rx := area.X + lw + c.Gap
	c.Right.Draw(dst, core.NewRect(rx, area.Y, max(0, area.Right()-rx), area.H))
}

func (c *Columns) Click(p core.Point) bool {
	lw := c.leftWidth()
	if p.X < lw {
		return c.Left.Click(p)
	}
	return c.Right.Click(core.Point{X: p.X - lw - c.Gap, Y: p.Y})
}
