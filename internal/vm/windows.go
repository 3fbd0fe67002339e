package vm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

const (
	narrowText = 40
	wideText   = 60
)

// closeButton returns a button that closes w.
func closeButton(label string, primary bool, w **desktop.Window) desktop.Button {
	return desktop.Button{Label: label, Primary: primary, OnPress: func() {
		if *w != nil {
			(*w).Close()
		}
	}}
}

// Notify opens a notification window. Each call opens one more.
func (v *VM) Notify(text string) *desktop.Window {
	return v.desk.OpenMany(func() *desktop.Window {
		body := &desktop.TextContent{}
		for _, para := range strings.Split(text, "\n") {
			if para == "" {
				body.Blank()
				continue
			}
			body.AddWrapped(para, narrowText, desktop.StyleText)
		}
		var w *desktop.Window
		w = desktop.NewWindow("Notification", body, false).
			WithButtons(closeButton("OK", true, &w))
		return w
	})
}

// OpenNotepad shows a text file read-only.
func (v *VM) OpenNotepad(name string) *desktop.Window {
	nv := v.content.Popups.Viewers.Notepad
	body := &desktop.TextContent{MinWidth: wideText}
	body.Add(nv.Menu, desktop.StyleMuted).Blank()
	for _, l := range strings.Split(v.content.Files.Text(name), "\n") {
		body.Add(l, desktop.StyleText)
	}
	body.Blank()
	status := nv.Status
	if strings.Contains(status, "%s") {
		status = fmt.Sprintf(status, name)
	}
	body.Add(status, desktop.StyleMuted)
	addTip(body, nv.Tip, wideText)
	return v.desk.OpenMany(func() *desktop.Window {
		return desktop.NewWindow(name+" - Bloc-notes", body, true)
	})
}

// OpenImage shows the terminal rendition of a picture.
func (v *VM) OpenImage(e content.Entry) *desktop.Window {
	iv := v.content.Popups.Viewers.Image
	body := &desktop.TextContent{MinWidth: wideText}
	body.Add(iv.Toolbar+"   "+e.Name, desktop.StyleMuted).Blank()
	art, ok := v.content.Files.Images[e.Image]
	if !ok {
		v.logger.Debug("image missing", "image", e.Image)
		art = "[ image introuvable ]"
	}
	for _, l := range strings.Split(art, "\n") {
		body.Lines = append(body.Lines, desktop.Line{Text: l, Style: desktop.StyleText, Indent: 4})
	}
	addTip(body, iv.Tip, wideText)
	return v.desk.OpenMany(func() *desktop.Window {
		return desktop.NewWindow("🖼 "+e.Name, body, true)
	})
}

// OpenPDF shows the PDF reader mockup.
func (v *VM) OpenPDF(name string) *desktop.Window {
	return v.openDocument("📕 "+name, v.content.Popups.Viewers.PDF)
}

// OpenDocx shows the word processor mockup.
func (v *VM) OpenDocx(name string) *desktop.Window {
	return v.openDocument("📘 "+name+" - Word", v.content.Popups.Viewers.Docx)
}

func (v *VM) openDocument(title string, dv content.Viewer) *desktop.Window {
	body := &desktop.TextContent{MinWidth: wideText}
	body.Add(dv.Toolbar, desktop.StyleMuted).Blank()
	for i, l := range dv.Body {
		style := desktop.StyleText
		if i == 0 {
			style = desktop.StyleHeading
		}
		if l == "" {
			body.Blank()
			continue
		}
		body.AddWrapped(l, wideText, style)
	}
	addTip(body, dv.Tip, wideText)
	return v.desk.OpenMany(func() *desktop.Window {
		return desktop.NewWindow(title, body, true)
	})
}

// OpenRecycleBin shows the empty recycle bin.
func (v *VM) OpenRecycleBin() *desktop.Window {
	rb := v.content.Popups.RecycleBin
	body := &desktop.TextContent{}
	body.Add("🗑", desktop.StyleText).
		Add(rb.Heading, desktop.StyleHeading).
		Add(rb.Detail, desktop.StyleMuted)
	addTip(body, rb.Tip, narrowText)
	return v.desk.OpenMany(func() *desktop.Window {
		return desktop.NewWindow("🗑 Corbeille", body, false)
	})
}

// OpenBrowser shows the ad-ridden browser. Clicking an ad opens its message.
func (v *VM) OpenBrowser() *desktop.Window {
	b := v.content.Browser
	body := &desktop.TextContent{MinWidth: wideText}
	body.Add("🔒 "+b.URL, desktop.StyleMuted).Blank().
		Add(b.Logo, desktop.StyleHeading).
		Add("[ "+b.Search+" ]", desktop.StyleMuted).Blank()
	for _, ad := range b.Ads {
		msg := ad.Message
		for _, l := range desktop.Wrap(ad.Headline, wideText) {
			body.AddLink(l, desktop.StyleAd, func() { v.Notify(msg) })
		}
		body.Blank()
	}
	if b.Linux.Heading != "" {
		body.Add(b.Linux.Heading, desktop.StyleSuccess)
		for _, p := range b.Linux.Points {
			body.Add("✓ "+p, desktop.StyleSuccess)
		}
	}
	return v.desk.OpenMany(func() *desktop.Window {
		return desktop.NewWindow("🌐 Microsoft Edge", body, true)
	})
}

func addTip(body *desktop.TextContent, tip string, width int) {
	if tip == "" {
		return
	}
	body.Blank()
	body.AddWrapped(tip, width, desktop.StyleSuccess)
}
