package desktop

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// MouseButton identifies the pressed pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Options tunes a desktop.
type Options struct {
	DragThreshold float64
	ClampMargin   int
	TaskbarHeight int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		DragThreshold: DefaultDragThreshold,
		ClampMargin:   1,
		TaskbarHeight: 1,
	}
}

// Taskbar is the strip at the bottom of the desktop.
type Taskbar struct {
	StartLabel string
	OnStart    func()
	Clock      string
}

const startLabelDefault = " ⊞ Démarrer "

// KeyListener receives key actions. It returns true when it consumed the key.
type KeyListener func(core.Action) bool

// Subscription is the handle of a registered key listener.
type Subscription int

type grab struct {
	drag *Draggable
	win  *Window
}

// Desktop is the surface that owns windows, icons, the taskbar and the
// context menu. The window slice is the z-order: the last window is on top.
type Desktop struct {
	bounds  core.Rect
	opts    Options
	logger  *log.Logger
	windows []*Window
	icons   []*Icon
	taskbar Taskbar
	menu    *ContextMenu
	items   []MenuItem
	grab    *grab
	nextID  int

	listeners map[Subscription]KeyListener
	order     []Subscription
	nextSub   Subscription
}

// New returns an empty desktop covering bounds, taskbar included.
func New(bounds core.Rect, opts Options, logger *log.Logger) *Desktop {
	if logger == nil {
		logger = log.Default()
	}
	if opts.TaskbarHeight <= 0 {
		opts.TaskbarHeight = 1
	}
	if opts.DragThreshold < 0 {
		opts.DragThreshold = DefaultDragThreshold
	}
	return &Desktop{
		bounds:    bounds,
		opts:      opts,
		logger:    logger,
		taskbar:   Taskbar{StartLabel: startLabelDefault},
		listeners: make(map[Subscription]KeyListener),
	}
}

// Resize changes the desktop bounds.
func (d *Desktop) Resize(bounds core.Rect) {
	d.bounds = bounds
}

// Bounds returns the full desktop rectangle.
func (d *Desktop) Bounds() core.Rect {
	return d.bounds
}

// Area returns the rectangle above the taskbar, where windows live.
func (d *Desktop) Area() core.Rect {
	r := d.bounds
	r.H = max(0, r.H-d.opts.TaskbarHeight)
	return r
}

// TaskbarRect returns the taskbar rectangle.
func (d *Desktop) TaskbarRect() core.Rect {
	a := d.Area()
	return core.NewRect(d.bounds.X, a.Bottom(), d.bounds.W, d.bounds.H-a.H)
}

// Taskbar exposes the taskbar for the shell to configure.
func (d *Desktop) Taskbar() *Taskbar {
	return &d.taskbar
}

// SetMenuItems sets the entries of the context menu.
func (d *Desktop) SetMenuItems(items ...MenuItem) {
	d.items = items
}

// AddIcon places an icon on the desktop.
func (d *Desktop) AddIcon(icon *Icon) {
	icon.drag.SetThreshold(d.opts.DragThreshold)
	d.icons = append(d.icons, icon)
}

// Icons returns the desktop icons.
func (d *Desktop) Icons() []*Icon {
	return d.icons
}

// Windows returns the open windows bottom to top.
func (d *Desktop) Windows() []*Window {
	return slices.Clone(d.windows)
}

// Top returns the topmost window, or nil.
func (d *Desktop) Top() *Window {
	if len(d.windows) == 0 {
		return nil
	}
	return d.windows[len(d.windows)-1]
}

// Find returns the open window of the given kind, or nil.
func (d *Desktop) Find(kind Kind) *Window {
	if kind == KindAnonymous {
		return nil
	}
	for _, w := range d.windows {
		if w.Kind == kind {
			return w
		}
	}
	return nil
}

// Count returns how many open windows have the given kind.
func (d *Desktop) Count(kind Kind) int {
	n := 0
	for _, w := range d.windows {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

func (d *Desktop) attach(w *Window) *Window {
	d.nextID++
	w.ID = d.nextID
	w.surface = d
	if w.drag != nil {
		w.drag.SetThreshold(d.opts.DragThreshold)
	}
	d.windows = append(d.windows, w)
	return w
}

// OpenSingleton opens the window built by build unless a window of that kind is
// already open. It returns the window on the surface and whether it is new.
func (d *Desktop) OpenSingleton(kind Kind, build func() *Window) (*Window, bool) {
	if existing := d.Find(kind); existing != nil {
		d.logger.Debug("singleton already open", "kind", kind)
		return existing, false
	}
	w := build()
	if w == nil {
		return nil, false
	}
	w.Kind = kind
	return d.attach(w), true
}

// OpenMany opens an anonymous window. Each call adds one more.
func (d *Desktop) OpenMany(build func() *Window) *Window {
	w := build()
	if w == nil {
		return nil
	}
	w.Kind = KindAnonymous
	return d.attach(w)
}

// ReplaceSingleton closes the open window of kind, if any, and opens a fresh
// one at the same position.
func (d *Desktop) ReplaceSingleton(kind Kind, build func() *Window) *Window {
	var offset core.Point
	if existing := d.Find(kind); existing != nil {
		offset = existing.Offset()
		d.Close(existing)
	}
	w, _ := d.OpenSingleton(kind, build)
	if w != nil && w.drag != nil {
		w.drag.offset = offset
	}
	return w
}

// ToggleSingleton closes the window of kind if open, otherwise opens it.
// It returns true when the window ends up open.
func (d *Desktop) ToggleSingleton(kind Kind, build func() *Window) bool {
	if existing := d.Find(kind); existing != nil {
		d.Close(existing)
		return false
	}
	w, _ := d.OpenSingleton(kind, build)
	return w != nil
}

// Close runs the window's close handler, then removes it. Closing a window
// that is not on this surface does nothing.
func (d *Desktop) Close(w *Window) {
	i := slices.Index(d.windows, w)
	if i < 0 {
		return
	}
	if d.grab != nil && d.grab.win == w {
		d.grab = nil
	}
	d.windows = slices.Delete(d.windows, i, i+1)
	w.surface = nil
	if fn := w.onClose; fn != nil {
		w.onClose = nil
		fn()
	}
}

// CloseKind closes every window of kind.
func (d *Desktop) CloseKind(kind Kind) {
	for _, w := range d.Windows() {
		if w.Kind == kind {
			d.Close(w)
		}
	}
}

// Focus raises w to the top of the stack.
func (d *Desktop) Focus(w *Window) {
	i := slices.Index(d.windows, w)
	if i < 0 || i == len(d.windows)-1 {
		return
	}
	d.windows = append(slices.Delete(d.windows, i, i+1), w)
}

// WindowAt returns the topmost window containing p, or nil.
func (d *Desktop) WindowAt(p core.Point) *Window {
	area := d.Area()
	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		if w.Layout(area).Frame.ContainsPoint(p) {
			return w
		}
	}
	return nil
}

// IconAt returns the topmost icon containing p, or nil.
func (d *Desktop) IconAt(p core.Point) *Icon {
	area := d.Area()
	for i := len(d.icons) - 1; i >= 0; i-- {
		if d.icons[i].Rect(area).ContainsPoint(p) {
			return d.icons[i]
		}
	}
	return nil
}

// ContextMenu returns the open context menu, or nil.
func (d *Desktop) ContextMenu() *ContextMenu {
	return d.menu
}

// OpenContextMenu shows the menu at p, replacing any open one. Presses on an
// icon or on the taskbar are ignored.
func (d *Desktop) OpenContextMenu(p core.Point) bool {
	if d.TaskbarRect().ContainsPoint(p) || d.IconAt(p) != nil {
		return false
	}
	if !d.bounds.ContainsPoint(p) {
		return false
	}
	d.menu = &ContextMenu{Pos: p, Items: d.items}
	return true
}

// CloseContextMenu hides the menu.
func (d *Desktop) CloseContextMenu() {
	d.menu = nil
}

// Subscribe registers a key listener.
func (d *Desktop) Subscribe(fn KeyListener) Subscription {
	d.nextSub++
	id := d.nextSub
	d.listeners[id] = fn
	d.order = append(d.order, id)
	return id
}

// Unsubscribe removes a listener. Unknown handles are ignored.
func (d *Desktop) Unsubscribe(id Subscription) {
	if _, ok := d.listeners[id]; !ok {
		return
	}
	delete(d.listeners, id)
	d.order = slices.DeleteFunc(d.order, func(s Subscription) bool { return s == id })
}

// Listeners returns the number of registered key listeners.
func (d *Desktop) Listeners() int {
	return len(d.listeners)
}

// HandleKey offers the action to the listeners, then applies the default
// bindings: Back closes the context menu or the top window, Confirm presses
// the top window's default button.
func (d *Desktop) HandleKey(a core.Action) bool {
	consumed := false
	for _, id := range slices.Clone(d.order) {
		if fn, ok := d.listeners[id]; ok && fn(a) {
			consumed = true
		}
	}
	if consumed {
		return true
	}
	switch a {
	case core.ActionBack:
		if d.menu != nil {
			d.menu = nil
			return true
		}
		if top := d.Top(); top != nil {
			d.Close(top)
			return true
		}
	case core.ActionConfirm:
		if top := d.Top(); top != nil && top.Default >= 0 {
			return top.Press(top.Default)
		}
	}
	return false
}

// PointerDown routes a press.
func (d *Desktop) PointerDown(p core.Point, button MouseButton) {
	if d.menu != nil && button == MouseLeft {
		area := d.bounds
		if i := d.menu.ItemAt(area, p); i >= 0 {
			item := d.menu.Items[i]
			d.menu = nil
			if item.Action != nil {
				item.Action()
			}
			return
		}
		if d.menu.Rect(area).ContainsPoint(p) {
			return
		}
		d.menu = nil
	}

	if button == MouseRight {
		d.OpenContextMenu(p)
		return
	}

	if w := d.WindowAt(p); w != nil {
		d.pressWindow(w, p)
		return
	}
	if icon := d.IconAt(p); icon != nil {
		icon.drag.Press(p)
		d.grab = &grab{drag: icon.drag}
		return
	}
	if d.TaskbarRect().ContainsPoint(p) {
		d.pressTaskbar(p)
	}
}

func (d *Desktop) pressWindow(w *Window, p core.Point) {
	d.Focus(w)
	l := w.Layout(d.Area())
	switch {
	case !w.Frameless && l.Close.ContainsPoint(p):
		d.Close(w)
	case !w.Frameless && l.Title.ContainsPoint(p):
		if w.drag != nil {
			w.drag.Press(p)
			d.grab = &grab{drag: w.drag, win: w}
		}
	case l.Content.ContainsPoint(p):
		w.Body.Click(p.Sub(core.Point{X: l.Content.X, Y: l.Content.Y}))
	default:
		for i, r := range l.Buttons {
			if r.ContainsPoint(p) {
				w.Press(i)
				return
			}
		}
	}
}

func (d *Desktop) pressTaskbar(p core.Point) {
	bar := d.TaskbarRect()
	if p.X < bar.X+core.TextWidth(d.taskbar.StartLabel) {
		if d.taskbar.OnStart != nil {
			d.taskbar.OnStart()
		}
		return
	}
	for _, slot := range d.taskbarSlots() {
		if slot.rect.ContainsPoint(p) {
			d.Focus(slot.win)
			return
		}
	}
}

// PointerMove forwards motion to the press in progress.
func (d *Desktop) PointerMove(p core.Point) {
	if d.grab != nil {
		d.grab.drag.Move(p)
	}
}

// PointerUp ends the press in progress.
func (d *Desktop) PointerUp(p core.Point) {
	g := d.grab
	if g == nil {
		return
	}
	d.grab = nil
	g.drag.Release(p)
}

type taskbarSlot struct {
	win  *Window
	rect core.Rect
}

func (d *Desktop) taskbarSlots() []taskbarSlot {
	bar := d.TaskbarRect()
	x := bar.X + core.TextWidth(d.taskbar.StartLabel) + 1
	limit := bar.Right() - core.TextWidth(d.taskbar.Clock) - 2
	var slots []taskbarSlot
	for _, w := range d.windows {
		if w.Frameless || w.Title == "" {
			continue
		}
		label := " " + core.Truncate(w.Title, 14) + " "
		lw := core.TextWidth(label)
		if x+lw > limit {
			break
		}
		slots = append(slots, taskbarSlot{win: w, rect: core.NewRect(x, bar.Y, lw, 1)})
		x += lw + 1
	}
	return slots
}

// Draw paints the whole desktop onto dst.
func (d *Desktop) Draw(dst *core.Screen) {
	area := d.Area()
	dst.FillRect(area, ' ', styleWallpaper)
	for _, icon := range d.icons {
		icon.draw(dst, area)
	}
	top := d.Top()
	for _, w := range d.windows {
		w.Draw(dst, area, w == top)
	}
	if d.menu != nil {
		d.menu.draw(dst, d.bounds)
	}

	bar := d.TaskbarRect()
	dst.FillRect(bar, ' ', styleTaskbar)
	dst.DrawStyledText(bar.X, bar.Y, d.taskbar.StartLabel, styleStart)
	for _, slot := range d.taskbarSlots() {
		st := styleTaskbar
		if slot.win == top {
			st = styleTitle
		}
		dst.DrawStyledText(slot.rect.X, slot.rect.Y, " "+core.Truncate(slot.win.Title, 14)+" ", st)
	}
	if clock := d.taskbar.Clock; clock != "" {
		dst.DrawStyledText(bar.Right()-core.TextWidth(clock)-1, bar.Y, clock, styleTaskbar)
	}
}
