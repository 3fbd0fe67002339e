package vm

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

// Route is where activating an explorer entry leads.
type Route int

const (
	RouteFolder Route = iota
	RouteNotepad
	RouteImage
	RoutePDF
	RouteDocx
	RouteCorrupted
	RouteGeneric
)

func (r Route) String() string {
	switch r {
	case RouteFolder:
		return "folder"
	case RouteNotepad:
		return "notepad"
	case RouteImage:
		return "image"
	case RoutePDF:
		return "pdf"
	case RouteDocx:
		return "docx"
	case RouteCorrupted:
		return "corrupted"
	default:
		return "generic"
	}
}

// RouteFor picks the viewer of an entry from its folder target and file tag.
func RouteFor(e content.Entry) Route {
	if e.IsFolder() {
		return RouteFolder
	}
	switch e.Tag {
	case content.TagText:
		return RouteNotepad
	case content.TagImage:
		return RouteImage
	case content.TagPDF:
		return RoutePDF
	case content.TagDocx:
		return RouteDocx
	case content.TagCorrupted:
		return RouteCorrupted
	default:
		return RouteGeneric
	}
}

// Explorer is the navigation state of the file explorer: the current folder
// over the static folder table. Back always returns to the drive root.
type Explorer struct {
	files  content.Files
	folder string
}

// NewExplorer starts at the root.
func NewExplorer(files content.Files) *Explorer {
	return &Explorer{files: files, folder: content.RootFolder}
}

// Folder returns the current folder name.
func (e *Explorer) Folder() string { return e.folder }

// Open moves to the named folder. Unknown names land on the root.
func (e *Explorer) Open(name string) string {
	_, e.folder = e.files.Folder(name)
	return e.folder
}

// Back returns to the root, whatever the depth.
func (e *Explorer) Back() string {
	e.folder = content.RootFolder
	return e.folder
}

// AtRoot reports whether the current folder is the root.
func (e *Explorer) AtRoot() bool { return e.folder == content.RootFolder }

// Listing returns the current folder's listing.
func (e *Explorer) Listing() content.Folder {
	f, _ := e.files.Folder(e.folder)
	return f
}

// Entry finds a file or subfolder of the current folder by name.
func (e *Explorer) Entry(name string) (content.Entry, bool) {
	for _, entry := range e.Listing().Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return content.Entry{}, false
}

// OpenExplorer shows folder in the explorer window, replacing the open one.
func (v *VM) OpenExplorer(folder string) *desktop.Window {
	v.explorer.Open(folder)
	return v.desk.ReplaceSingleton(KindExplorer, v.buildExplorer)
}

// ExplorerBack goes back to the root folder.
func (v *VM) ExplorerBack() *desktop.Window {
	v.explorer.Back()
	return v.desk.ReplaceSingleton(KindExplorer, v.buildExplorer)
}

// ActivateFile opens the named entry of the current folder. Missing entries
// are logged and ignored.
func (v *VM) ActivateFile(name string) {
	entry, ok := v.explorer.Entry(name)
	if !ok {
		v.logger.Debug("explorer entry not found", "folder", v.explorer.Folder(), "name", name)
		return
	}
	v.activate(entry)
}

func (v *VM) activate(e content.Entry) {
	route := RouteFor(e)
	v.logger.Debug("explorer activate", "name", e.Name, "route", route)
	switch route {
	case RouteFolder:
		v.OpenExplorer(e.Folder)
	case RouteNotepad:
		v.OpenNotepad(e.Name)
	case RouteImage:
		v.OpenImage(e)
	case RoutePDF:
		v.OpenPDF(e.Name)
	case RouteDocx:
		v.OpenDocx(e.Name)
	case RouteCorrupted:
		v.Notify(fmt.Sprintf(v.content.Popups.Notice("corrupted_file"), e.Name))
	default:
		v.Notify(v.content.Popups.Notice("generic_file"))
	}
}

func (v *VM) buildExplorer() *desktop.Window {
	listing := v.explorer.Listing()
	body := &desktop.TextContent{MinWidth: 56}
	body.Add("📁 "+listing.Path, desktop.StyleHeading)
	if !v.explorer.AtRoot() {
		body.AddLink("← Retour", desktop.StyleLink, func() { v.ExplorerBack() })
	}
	body.Blank()

	if len(listing.Entries) == 0 {
		body.Add("Ce dossier est vide", desktop.StyleMuted)
	}
	for _, entry := range listing.Entries {
		entry := entry
		line := entry.Icon + " " + runewidth.FillRight(entry.Name, 18) + " " + entry.Describe()
		body.AddLink(line, desktop.StyleText, func() { v.activate(entry) })
	}

	if tip := v.content.Files.ExplorerTip; tip != "" {
		body.Blank()
		body.AddWrapped(tip, 56, desktop.StyleSuccess)
	}
	return desktop.NewWindow("📁 Explorateur de fichiers", body, true)
}
