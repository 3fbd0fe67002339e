package vm

import (
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

// StartMenu returns the open start menu window, or nil.
func (v *VM) StartMenu() *desktop.Window { return v.desk.Find(KindStartMenu) }

// ToggleStartMenu opens the start menu, or closes it when open.
func (v *VM) ToggleStartMenu() {
	open := v.desk.ToggleSingleton(KindStartMenu, v.buildStartMenu)
	v.logger.Debug("start menu", "open", open)
}

// pick closes the menu, then launches the shortcut.
func (v *VM) pick(id string) {
	v.desk.CloseKind(KindStartMenu)
	v.Launch(id)
}

func (v *VM) buildStartMenu() *desktop.Window {
	sm := v.content.Popups.StartMenu

	sidebar := &desktop.TextContent{}
	for _, sc := range sm.Sidebar {
		id := sc.ID
		sidebar.AddLink(sc.Glyph+" "+sc.Label, desktop.StyleText, func() { v.pick(id) })
	}

	apps := &desktop.TextContent{MinWidth: 32}
	apps.Add(sm.Heading, desktop.StyleMuted).Blank()
	for _, sc := range sm.Tiles {
		id := sc.ID
		apps.AddLink(" "+sc.Glyph+"  "+sc.Label+" ", desktop.StyleTile, func() { v.pick(id) })
	}
	if sm.TipHeading != "" {
		apps.Blank().Add(sm.TipHeading, desktop.StyleHeading)
		apps.AddWrapped(sm.Tip, 32, desktop.StyleMuted)
	}

	body := &desktop.Columns{Left: sidebar, Right: apps, LeftWidth: 14, Gap: 3}
	return desktop.NewFramelessWindow(body, desktop.PlaceBottomLeft)
}
