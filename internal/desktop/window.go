// Package desktop implements the window system of the fake OS: a window
// factory, a drag controller, the desktop surface that stacks windows and
// icons, a context menu, and a host-independent timer table.
//
// Everything here is driven by explicit calls (pointer, key, timer) from the
// platform layer and paints into a core.Screen, so it runs without a terminal.
package desktop

import (
	"slices"
	"strings"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// Kind tags a window. Windows with a non-empty kind are singletons on a
// surface; anonymous windows may be opened any number of times.
type Kind string

// KindAnonymous marks a window with free multiplicity.
const KindAnonymous Kind = ""

// Window sizing in cells.
const (
	narrowInnerWidth = 40
	wideInnerWidth   = 60
	closeLabel       = "[x]"
)

// Placement decides where a window sits on the surface before any drag.
type Placement int

const (
	// PlaceCentered anchors the window at the surface center; drag offsets are
	// relative to that anchor.
	PlaceCentered Placement = iota
	// PlaceBottomLeft pins the window above the taskbar on the left edge.
	PlaceBottomLeft
)

// Button is a push button in a window's button row.
type Button struct {
	Label   string
	Primary bool
	OnPress func()
}

// Window is a floating panel with a title bar, a close control and a content slot.
type Window struct {
	ID        int
	Kind      Kind
	Title     string
	Body      Content
	Wide      bool
	Frameless bool // no title bar, close control or drag handle
	Placement Placement
	Buttons   []Button
	// Default is the index of the button triggered by Enter, or -1.
	Default int
	// Lift shifts the window vertically after placement (used for slide-in).
	Lift int

	drag    *Draggable
	onClose func()
	surface *Desktop
}

// NewWindow builds a detached window with a title bar (title plus close control)
// and a content region, draggable by its title bar.
func NewWindow(title string, body Content, wide bool) *Window {
	if body == nil {
		body = &TextContent{}
	}
	w := &Window{
		Title:   title,
		Body:    body,
		Wide:    wide,
		Default: -1,
	}
	w.drag = NewDraggable(windowClamp{win: w}, DefaultDragThreshold)
	return w
}

// NewFramelessWindow builds a window without title bar, used for menus.
func NewFramelessWindow(body Content, placement Placement) *Window {
	w := NewWindow("", body, false)
	w.Frameless = true
	w.Placement = placement
	w.drag = nil
	return w
}

// Tag sets the window kind and returns the window for chaining.
func (w *Window) Tag(kind Kind) *Window {
	w.Kind = kind
	return w
}

// WithButtons appends buttons. The default is the first primary button
// across all calls, or the first button when none is primary.
func (w *Window) WithButtons(buttons ...Button) *Window {
	w.Buttons = append(w.Buttons, buttons...)
	w.Default = slices.IndexFunc(w.Buttons, func(b Button) bool { return b.Primary })
	if w.Default < 0 && len(w.Buttons) > 0 {
		w.Default = 0
	}
	return w
}

// OnClose sets the close behavior: fn runs once, right after the window
// leaves its surface. Windows owning timers or listeners use it to tear them down.
func (w *Window) OnClose(fn func()) *Window {
	w.onClose = fn
	return w
}

// Offset returns the resting drag offset of the window.
func (w *Window) Offset() core.Point {
	if w.drag == nil {
		return core.Point{}
	}
	return w.drag.Offset()
}

// Draggable returns the window's drag controller, or nil for frameless windows.
func (w *Window) Draggable() *Draggable {
	return w.drag
}

// Close removes the window from its surface, then runs its close handler.
func (w *Window) Close() {
	if w.surface == nil {
		return
	}
	w.surface.Close(w)
}

// Open reports whether the window is currently on a surface.
func (w *Window) Open() bool {
	return w.surface != nil
}

// Size returns the window's outer width and height, capped by the surface.
func (w *Window) Size(area core.Rect) (int, int) {
	cw, ch := w.Body.Size()
	inner := narrowInnerWidth
	if w.Wide {
		inner = wideInnerWidth
	}
	inner = max(inner, cw, buttonRowWidth(w.Buttons))
	if !w.Frameless {
		inner = max(inner, core.TextWidth(w.Title)+len(closeLabel)+2)
	}

	width := inner + 4 // borders and one column of padding each side
	height := ch + 2   // top and bottom border
	if len(w.Buttons) > 0 {
		height += 2 // blank line and button row
	}
	if area.W > 0 {
		width = min(width, area.W)
	}
	if area.H > 0 {
		height = min(height, area.H)
	}
	return width, height
}

// Layout holds the screen regions of a placed window.
type Layout struct {
	Frame   core.Rect
	Title   core.Rect
	Close   core.Rect
	Content core.Rect
	Buttons []core.Rect
}

// Layout places the window on the given surface area.
func (w *Window) Layout(area core.Rect) Layout {
	width, height := w.Size(area)

	var frame core.Rect
	switch w.Placement {
	case PlaceBottomLeft:
		frame = core.NewRect(area.X+1, area.Bottom()-height, width, height)
	default:
		x := area.X + (area.W-width)/2
		y := area.Y + (area.H-height)/2
		frame = core.NewRect(x, y, width, height).Translate(w.Offset())
	}
	frame.Y += w.Lift

	l := Layout{Frame: frame}
	l.Title = core.NewRect(frame.X, frame.Y, frame.W, 1)
	if !w.Frameless {
		l.Close = core.NewRect(frame.Right()-1-len(closeLabel), frame.Y, len(closeLabel), 1)
	}

	contentH := frame.H - 2
	if len(w.Buttons) > 0 {
		contentH -= 2
	}
	l.Content = core.NewRect(frame.X+2, frame.Y+1, frame.W-4, max(0, contentH))

	if len(w.Buttons) > 0 {
		y := frame.Bottom() - 2
		x := frame.Right() - 2 - buttonRowWidth(w.Buttons)
		for _, b := range w.Buttons {
			bw := core.TextWidth(buttonLabel(b))
			l.Buttons = append(l.Buttons, core.NewRect(x, y, bw, 1))
			x += bw + 1
		}
	}
	return l
}

// Draw paints the window onto dst.
func (w *Window) Draw(dst *core.Screen, area core.Rect, focused bool) {
	l := w.Layout(area)
	dst.FillRect(l.Frame, ' ', styleBody)

	border := styleBorder
	if focused {
		border = styleBorderFocused
	}
	for x := l.Frame.X; x < l.Frame.Right(); x++ {
		dst.SetCell(x, l.Frame.Bottom()-1, core.Cell{Rune: '─', Style: border})
		if w.Frameless {
			dst.SetCell(x, l.Frame.Y, core.Cell{Rune: '─', Style: border})
		}
	}
	for y := l.Frame.Y; y < l.Frame.Bottom(); y++ {
		dst.SetCell(l.Frame.X, y, core.Cell{Rune: '│', Style: border})
		dst.SetCell(l.Frame.Right()-1, y, core.Cell{Rune: '│', Style: border})
	}
	dst.SetCell(l.Frame.X, l.Frame.Bottom()-1, core.Cell{Rune: '└', Style: border})
	dst.SetCell(l.Frame.Right()-1, l.Frame.Bottom()-1, core.Cell{Rune: '┘', Style: border})

	if w.Frameless {
		dst.SetCell(l.Frame.X, l.Frame.Y, core.Cell{Rune: '┌', Style: border})
		dst.SetCell(l.Frame.Right()-1, l.Frame.Y, core.Cell{Rune: '┐', Style: border})
	} else {
		title := styleTitle
		if !focused {
			title = styleTitleBlurred
		}
		dst.FillRect(l.Title, ' ', title)
		dst.DrawStyledText(l.Title.X+1, l.Title.Y, core.Truncate(w.Title, l.Title.W-len(closeLabel)-3), title)
		dst.DrawStyledText(l.Close.X, l.Close.Y, closeLabel, styleClose)
	}

	w.Body.Draw(dst, l.Content)

	for i, b := range w.Buttons {
		st := styleButton
		if b.Primary || i == w.Default {
			st = styleButtonPrimary
		}
		r := l.Buttons[i]
		dst.DrawStyledText(r.X, r.Y, buttonLabel(b), st)
	}
}

// Press triggers the button at index i.
func (w *Window) Press(i int) bool {
	if i < 0 || i >= len(w.Buttons) {
		return false
	}
	if fn := w.Buttons[i].OnPress; fn != nil {
		fn()
	}
	return true
}

func buttonLabel(b Button) string {
	return "[ " + b.Label + " ]"
}

func buttonRowWidth(buttons []Button) int {
	if len(buttons) == 0 {
		return 0
	}
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = buttonLabel(b)
	}
	return core.TextWidth(strings.Join(labels, " "))
}

// windowClamp keeps a centered window inside its surface while dragging.
type windowClamp struct {
	win *Window
}

func (c windowClamp) Constrain(off core.Point) core.Point {
	d := c.win.surface
	if d == nil {
		return off
	}
	area := d.Area()
	w, h := c.win.Size(area)
	return ClampCentered(off, area.W, area.H, w, h, d.opts.ClampMargin)
}
