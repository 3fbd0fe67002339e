// Package vm is the fake operating system shell: login, clock, desktop
// icons, start menu, file explorer, settings, viewers, nag popups and the
// embedded Snake session.
//
// A VM owns its desktop surface and timer table. Collaborators (content,
// configuration, logger, score store) are injected through Deps so the shell
// runs in tests without a terminal; the platform layer only forwards pointer
// events, key actions and timer firings.
package vm

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

// Window kinds of the singleton windows.
const (
	KindSnake     desktop.Kind = "snake"
	KindExplorer  desktop.Kind = "explorer"
	KindSettings  desktop.Kind = "settings"
	KindStartMenu desktop.Kind = "start-menu"
)

// ScoreSaver persists finished Snake games.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Deps are the collaborators of a VM.
type Deps struct {
	Content *content.Store
	Config  config.Config
	Logger  *log.Logger
	Scores  ScoreSaver       // optional
	Now     func() time.Time // defaults to time.Now
	Seed    int64            // snake seed; 0 picks one from the clock
}

// VM is the state container of one fake OS session.
type VM struct {
	desk    *desktop.Desktop
	timers  *desktop.Timers
	sched   *desktop.Scheduler
	content *content.Store
	cfg     config.Config
	logger  *log.Logger
	scores  ScoreSaver
	now     func() time.Time
	seed    int64

	loggedIn   bool
	fullscreen bool
	clockTimer desktop.TimerID

	explorer *Explorer
	settings string
	snake    *SnakeSession
}

// New builds a logged-out VM whose desktop covers bounds.
func New(bounds core.Rect, deps Deps) *VM {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	store := deps.Content
	if store == nil {
		store = content.MustDefault()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	seed := deps.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}

	dc := deps.Config.Desktop
	opts := desktop.DefaultOptions()
	if dc.DragThreshold > 0 {
		opts.DragThreshold = dc.DragThreshold
	}
	if dc.ClampMargin > 0 {
		opts.ClampMargin = dc.ClampMargin
	}
	if dc.TaskbarHeight > 0 {
		opts.TaskbarHeight = dc.TaskbarHeight
	}

	timers := desktop.NewTimers()
	v := &VM{
		desk:     desktop.New(bounds, opts, logger),
		timers:   timers,
		sched:    desktop.NewScheduler(timers, logger),
		content:  store,
		cfg:      deps.Config,
		logger:   logger,
		scores:   deps.Scores,
		now:      now,
		seed:     seed,
		explorer: NewExplorer(store.Files),
		settings: store.Settings.First(),
	}
	v.installDesktop()
	return v
}

// installDesktop places the icons, the context menu entries and the start button.
func (v *VM) installDesktop() {
	for i, sc := range v.content.Popups.Desktop.Icons {
		id := sc.ID
		v.desk.AddIcon(desktop.NewIcon(id, sc.Glyph, sc.Label, core.Point{X: 0, Y: i}, func() {
			v.Launch(id)
		}))
	}

	var items []desktop.MenuItem
	for _, sc := range v.content.Popups.Desktop.ContextMenu {
		id := sc.ID
		items = append(items, desktop.MenuItem{Label: sc.Label, Action: func() { v.Launch(id) }})
	}
	v.desk.SetMenuItems(items...)

	v.desk.Taskbar().OnStart = v.ToggleStartMenu
}

// Desktop returns the surface.
func (v *VM) Desktop() *desktop.Desktop { return v.desk }

// Timers returns the timer table the host must drive.
func (v *VM) Timers() *desktop.Timers { return v.timers }

// Content returns the static content set.
func (v *VM) Content() *content.Store { return v.content }

// LoggedIn reports whether the login screen has been passed.
func (v *VM) LoggedIn() bool { return v.loggedIn }

// Fullscreen reports whether the VM hides its frame.
func (v *VM) Fullscreen() bool { return v.fullscreen }

// ToggleFullscreen flips the fullscreen flag and returns the new value.
func (v *VM) ToggleFullscreen() bool {
	v.fullscreen = !v.fullscreen
	return v.fullscreen
}

// Clock returns the taskbar clock text.
func (v *VM) Clock() string { return v.desk.Taskbar().Clock }

// Snake returns the running Snake session, or nil.
func (v *VM) Snake() *SnakeSession { return v.snake }

// Explorer returns the file explorer state.
func (v *VM) Explorer() *Explorer { return v.explorer }

// Login shows the desktop, starts the clock and schedules the nag popups.
// Logging in again reschedules both without leaving earlier timers armed.
func (v *VM) Login() {
	if v.loggedIn {
		v.logger.Debug("login while logged in, rescheduling")
	}
	v.loggedIn = true
	v.startClock()
	v.SchedulePopups()
	v.logger.Info("session started")
}

// Shutdown tears the session down: windows are closed (running their
// teardown), the clock and the popup jobs are canceled.
func (v *VM) Shutdown() {
	for _, w := range v.desk.Windows() {
		v.desk.Close(w)
	}
	v.sched.Cancel()
	v.timers.Cancel(v.clockTimer)
	v.loggedIn = false
	v.logger.Info("session stopped")
}

// Resize follows the terminal size.
func (v *VM) Resize(bounds core.Rect) {
	v.desk.Resize(bounds)
}

// Draw paints the desktop.
func (v *VM) Draw(dst *core.Screen) {
	v.desk.Draw(dst)
}

func (v *VM) startClock() {
	v.timers.Cancel(v.clockTimer)
	v.updateClock()

	every := v.cfg.Desktop.ClockRefresh.D()
	if every <= 0 {
		every = time.Second
	}
	var tick func()
	tick = func() {
		v.updateClock()
		v.clockTimer = v.timers.After(every, tick)
	}
	v.clockTimer = v.timers.After(every, tick)
}

func (v *VM) updateClock() {
	layout := v.cfg.Desktop.ClockFormat
	if layout == "" {
		layout = "15:04"
	}
	v.desk.Taskbar().Clock = v.now().Format(layout)
}

func (v *VM) nextSeed() int64 {
	v.seed++
	return v.seed
}

// Launch runs the shortcut with the given id, as used by icons, tiles and
// menus. Unknown ids are logged and ignored.
func (v *VM) Launch(id string) {
	switch id {
	case "snake":
		v.OpenSnake()
	case "pc", "explorer", "folder":
		v.OpenExplorer(content.RootFolder)
	case "documents":
		v.OpenExplorer("Documents")
	case "images":
		v.OpenExplorer("Images")
	case "recycle":
		v.OpenRecycleBin()
	case "edge":
		v.OpenBrowser()
	case "settings":
		v.OpenSettings(v.content.Settings.First())
	case "notes":
		v.Notify(v.content.Popups.Notice("notes"))
	case "shutdown":
		v.Notify(v.content.Popups.Notice("shutdown"))
	case "refresh":
		v.Notify(v.content.Popups.Notice("refresh"))
	case "document":
		v.Notify(v.content.Popups.Notice("new_document"))
	default:
		v.logger.Debug("unknown shortcut", "id", id)
	}
}
