package desktop

import "github.com/vovakirdan/tui-fenetres/internal/core"

// MenuItem is an entry of the desktop context menu.
type MenuItem struct {
	Label  string
	Action func()
}

// ContextMenu is the floating menu opened by a right click on the surface.
// At most one exists per desktop.
type ContextMenu struct {
	Pos   core.Point
	Items []MenuItem
}

// Rect returns the menu's rectangle, shifted to stay inside area.
func (m *ContextMenu) Rect(area core.Rect) core.Rect {
	w := 0
	for _, it := range m.Items {
		w = max(w, core.TextWidth(it.Label))
	}
	w += 4
	h := len(m.Items) + 2
	x := min(m.Pos.X, area.Right()-w)
	y := min(m.Pos.Y, area.Bottom()-h)
	return core.NewRect(max(area.X, x), max(area.Y, y), w, h)
}

// ItemAt returns the index of the item under p, or -1.
func (m *ContextMenu) ItemAt(area core.Rect, p core.Point) int {
	r := m.Rect(area)
	if !r.ContainsPoint(p) {
		return -1
	}
	i := p.Y - r.Y - 1
	if i < 0 || i >= len(m.Items) {
		return -1
	}
	return i
}

func (m *ContextMenu) draw(dst *core.Screen, area core.Rect) {
	r := m.Rect(area)
	dst.FillRect(r, ' ', styleMenu)
	for x := r.X; x < r.Right(); x++ {
		dst.SetCell(x, r.Y, core.Cell{Rune: '─', Style: styleMenuBorder})
		dst.SetCell(x, r.Bottom()-1, core.Cell{Rune: '─', Style: styleMenuBorder})
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetCell(r.X, y, core.Cell{Rune: '│', Style: styleMenuBorder})
		dst.SetCell(r.Right()-1, y, core.Cell{Rune: '│', Style: styleMenuBorder})
	}
	dst.SetCell(r.X, r.Y, core.Cell{Rune: '┌', Style: styleMenuBorder})
	dst.SetCell(r.Right()-1, r.Y, core.Cell{Rune: '┐', Style: styleMenuBorder})
	dst.SetCell(r.X, r.Bottom()-1, core.Cell{Rune: '└', Style: styleMenuBorder})
	dst.SetCell(r.Right()-1, r.Bottom()-1, core.Cell{Rune: '┘', Style: styleMenuBorder})
	for i, it := range m.Items {
		dst.DrawStyledText(r.X+2, r.Y+1+i, it.Label, styleMenu)
	}
}
