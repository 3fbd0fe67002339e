package desktop

import "github.com/vovakirdan/tui-fenetres/internal/core"

const (
	iconWidth  = 11
	iconHeight = 3
	iconGapY   = 1
)

// Icon is a desktop shortcut. A press released within the drag threshold
// activates it; a longer move relocates it freely.
type Icon struct {
	ID    string
	Glyph string
	Label string
	// Slot is the grid position (column, row) before any drag.
	Slot core.Point

	drag *Draggable
}

// NewIcon returns an icon whose click runs action.
func NewIcon(id, glyph, label string, slot core.Point, action func()) *Icon {
	d := NewDraggable(Unclamped, DefaultDragThreshold)
	d.OnClick = action
	return &Icon{ID: id, Glyph: glyph, Label: label, Slot: slot, drag: d}
}

// Draggable returns the icon's drag controller.
func (i *Icon) Draggable() *Draggable {
	return i.drag
}

// Rect returns the icon's cell rectangle within area.
func (i *Icon) Rect(area core.Rect) core.Rect {
	x := area.X + 1 + i.Slot.X*(iconWidth+1)
	y := area.Y + 1 + i.Slot.Y*(iconHeight+iconGapY)
	return core.NewRect(x, y, iconWidth, iconHeight).Translate(i.drag.Offset())
}

func (i *Icon) draw(dst *core.Screen, area core.Rect) {
	r := i.Rect(area)
	center := func(y int, text string, st core.Style) {
		text = core.Truncate(text, r.W)
		x := r.X + (r.W-core.TextWidth(text))/2
		dst.DrawStyledText(x, y, text, st)
	}
	center(r.Y, i.Glyph, styleIcon)
	center(r.Y+1, i.Label, styleIconLabel)
}
