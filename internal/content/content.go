// Package content holds the static tables of the fake OS: quiz questions,
// folder listings, settings sections, nag windows and browser ads.
package content

// FileTag selects the viewer used to open a file.
type FileTag string

const (
	TagNone      FileTag = ""
	TagText      FileTag = "txt"
	TagImage     FileTag = "image"
	TagPDF       FileTag = "pdf"
	TagDocx      FileTag = "docx"
	TagCorrupted FileTag = "corrupted"
)

// RootFolder is the name of the drive root listing.
const RootFolder = "root"

// Store is the full content set.
type Store struct {
	Quiz     Quiz
	Files    Files
	Settings Settings
	Popups   Popups
	Browser  Browser
}

// Quiz is the ordered question list.
type Quiz struct {
	Questions []Question `yaml:"questions"`
}

// Question is one quiz step.
type Question struct {
	Question string   `yaml:"question"`
	Options  []Option `yaml:"options"`
}

// Option is an answer with its explanation.
type Option struct {
	Text        string `yaml:"text"`
	Correct     bool   `yaml:"correct"`
	Explanation string `yaml:"explanation"`
}

// Files describes the fake drive.
type Files struct {
	Folders     map[string]Folder `yaml:"folders"`
	ExplorerTip string            `yaml:"explorer_tip"`
	Texts       map[string]string `yaml:"texts"`
	Images      map[string]string `yaml:"images"`
}

// Folder is a listing with its display path.
type Folder struct {
	Path    string  `yaml:"path"`
	Entries []Entry `yaml:"entries"`
}

// Entry is a file or subfolder in a listing.
type Entry struct {
	Icon   string  `yaml:"icon"`
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type"`
	Size   string  `yaml:"size"`
	Folder string  `yaml:"folder"` // target folder name for subfolders
	Tag    FileTag `yaml:"tag"`
	Image  string  `yaml:"image"`
}

// IsFolder reports whether the entry opens a folder.
func (e Entry) IsFolder() bool {
	return e.Folder != ""
}

// Describe returns the type label with the size when known.
func (e Entry) Describe() string {
	if e.Size == "" {
		return e.Type
	}
	return e.Type + " • " + e.Size
}

// Folder returns the listing for name. Unknown names resolve to the root.
func (f Files) Folder(name string) (Folder, string) {
	if folder, ok := f.Folders[name]; ok {
		return folder, name
	}
	return f.Folders[RootFolder], RootFolder
}

// Text returns the notepad body of a file, empty when none is defined.
func (f Files) Text(name string) string {
	return f.Texts[name]
}

// Settings lists the settings panel sections.
type Settings struct {
	Sections []Section `yaml:"sections"`
	Linux    Tip       `yaml:"linux"`
}

// Section is one page of the settings panel.
type Section struct {
	ID      string        `yaml:"id"`
	Label   string        `yaml:"label"`
	Heading string        `yaml:"heading"`
	Items   []SettingItem `yaml:"items"`
}

// SettingItem is a row of a settings page.
type SettingItem struct {
	Title   string `yaml:"title"`
	Detail  string `yaml:"detail"`
	Toggle  string `yaml:"toggle"`
	Warning string `yaml:"warning"`
	Button  string `yaml:"button"`
}

// Section returns the section with the given id.
func (s Settings) Section(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// First returns the id of the first section.
func (s Settings) First() string {
	if len(s.Sections) == 0 {
		return ""
	}
	return s.Sections[0].ID
}

// Tip is a heading with bullet points.
type Tip struct {
	Heading string   `yaml:"heading"`
	Points  []string `yaml:"points"`
}

// Popups holds the desktop copy: nags, notices, menus and viewers.
type Popups struct {
	Nags       []Nag             `yaml:"nags"`
	Notices    map[string]string `yaml:"notices"`
	Desktop    DesktopContent    `yaml:"desktop"`
	StartMenu  StartMenu         `yaml:"start_menu"`
	RecycleBin RecycleBin        `yaml:"recycle_bin"`
	Viewers    Viewers           `yaml:"viewers"`
	Snake      SnakeContent      `yaml:"snake"`
	Login      Login             `yaml:"login"`
}

// Nag is a scheduled annoyance window.
type Nag struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Lines   []string    `yaml:"lines"`
	Small   string      `yaml:"small"`
	Tip     string      `yaml:"tip"`
	Buttons []NagButton `yaml:"buttons"`
}

// NagButton is a button of a nag window. Close buttons dismiss it.
type NagButton struct {
	Label   string `yaml:"label"`
	Primary bool   `yaml:"primary"`
	Close   bool   `yaml:"close"`
}

// Nag returns the nag with the given id.
func (p Popups) Nag(id string) (Nag, bool) {
	for _, n := range p.Nags {
		if n.ID == id {
			return n, true
		}
	}
	return Nag{}, false
}

// Notice returns a notification text, or the key itself when missing.
func (p Popups) Notice(key string) string {
	if s, ok := p.Notices[key]; ok {
		return s
	}
	return key
}

// Shortcut is a labelled entry of a menu, icon row or tile grid.
type Shortcut struct {
	ID    string `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Label string `yaml:"label"`
}

// DesktopContent lists desktop icons and context menu entries.
type DesktopContent struct {
	Icons       []Shortcut `yaml:"icons"`
	ContextMenu []Shortcut `yaml:"context_menu"`
}

// StartMenu is the start menu layout.
type StartMenu struct {
	Sidebar    []Shortcut `yaml:"sidebar"`
	Heading    string     `yaml:"heading"`
	Tiles      []Shortcut `yaml:"tiles"`
	TipHeading string     `yaml:"tip_heading"`
	Tip        string     `yaml:"tip"`
}

// RecycleBin is the recycle bin window copy.
type RecycleBin struct {
	Heading string `yaml:"heading"`
	Detail  string `yaml:"detail"`
	Tip     string `yaml:"tip"`
}

// Viewers holds the mockup copy of each viewer.
type Viewers struct {
	Notepad Viewer `yaml:"notepad"`
	Image   Viewer `yaml:"image"`
	PDF     Viewer `yaml:"pdf"`
	Docx    Viewer `yaml:"docx"`
}

// Viewer is the chrome and body of a document mockup.
type Viewer struct {
	Menu    string   `yaml:"menu"`
	Toolbar string   `yaml:"toolbar"`
	Status  string   `yaml:"status"`
	Body    []string `yaml:"body"`
	Tip     string   `yaml:"tip"`
}

// SnakeContent is the Snake window copy.
type SnakeContent struct {
	Title    string `yaml:"title"`
	Controls string `yaml:"controls"`
}

// Login is the login screen copy.
type Login struct {
	User    string `yaml:"user"`
	Welcome string `yaml:"welcome"`
	Hint    string `yaml:"hint"`
}

// Browser is the Edge window content.
type Browser struct {
	URL    string `yaml:"url"`
	Logo   string `yaml:"logo"`
	Search string `yaml:"search"`
	Ads    []Ad   `yaml:"ads"`
	Linux  Tip    `yaml:"linux"`
}

// Ad is a clickable fake advertisement.
type Ad struct {
	Headline string `yaml:"headline"`
	Message  string `yaml:"message"`
}
