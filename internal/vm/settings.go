package vm

import (
	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

const settingsPaneWidth = 40

// Section returns the settings section shown last.
func (v *VM) Section() string { return v.settings }

// OpenSettings shows the settings window on section, replacing the open one
// in place. Unknown sections fall back to the first.
func (v *VM) OpenSettings(section string) *desktop.Window {
	if _, ok := v.content.Settings.Section(section); !ok {
		v.logger.Debug("unknown settings section", "section", section)
		section = v.content.Settings.First()
	}
	v.settings = section
	return v.desk.ReplaceSingleton(KindSettings, v.buildSettings)
}

func (v *VM) buildSettings() *desktop.Window {
	sidebar := &desktop.TextContent{}
	for _, sec := range v.content.Settings.Sections {
		id := sec.ID
		style := desktop.StyleText
		if id == v.settings {
			style = desktop.StyleSelected
		}
		sidebar.AddLink(sec.Label, style, func() { v.OpenSettings(id) })
	}

	page := &desktop.TextContent{MinWidth: settingsPaneWidth}
	if sec, ok := v.content.Settings.Section(v.settings); ok {
		page.Add(sec.Heading, desktop.StyleHeading).Blank()
		for _, item := range sec.Items {
			addSettingItem(page, item)
		}
	}
	if tip := v.content.Settings.Linux; tip.Heading != "" {
		page.Add(tip.Heading, desktop.StyleSuccess)
		for _, p := range tip.Points {
			page.AddWrapped("✓ "+p, settingsPaneWidth, desktop.StyleSuccess)
		}
	}

	body := &desktop.Columns{Left: sidebar, Right: page, LeftWidth: 20, Gap: 3}
	return desktop.NewWindow("⚙ Paramètres Windows", body, true)
}

func addSettingItem(page *desktop.TextContent, item content.SettingItem) {
	title := item.Title
	if item.Toggle == "on" {
		title += "  [■ Activé]"
	}
	page.Add(title, desktop.StyleText)
	if item.Detail != "" {
		page.AddWrapped(item.Detail, settingsPaneWidth, desktop.StyleMuted)
	}
	if item.Warning != "" {
		page.AddWrapped(item.Warning, settingsPaneWidth, desktop.StyleError)
	}
	if item.Button != "" {
		page.Add("[ "+item.Button+" ]", desktop.StyleMuted)
	}
	page.Blank()
}
