package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
	"github.com/vovakirdan/tui-fenetres/internal/vm"
)

const (
	chromeTitle = "🖥  Machine virtuelle · Windows 11 Famille"
	// Rows taken by the VM frame outside fullscreen: title bar and help line.
	chromeTop    = 1
	chromeBottom = 1

	animFPS = 60
	// Rows the start menu starts below its resting place.
	startMenuRise = 8
)

var (
	chromeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("237"))
	chromeHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 3)
)

// animFrameMsg advances the start menu spring.
type animFrameMsg struct{}

func animFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

// VMModel renders one fake OS session: the login form, then the desktop.
type VMModel struct {
	vm       *vm.VM
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	width    int
	height   int

	form     *huh.Form
	password *string

	spring    harmonica.Spring
	lift      float64
	liftVel   float64
	animating bool
	menuOpen  bool

	quitting bool
}

// NewVMModel wraps a VM session sized for a width x height terminal.
func NewVMModel(machine *vm.VM, width, height int) VMModel {
	m := VMModel{
		vm:       machine,
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
		password: new(string),
		spring:   harmonica.NewSpring(harmonica.FPS(animFPS), 7.0, 0.85),
	}
	m.help.Width = width
	m.screen = core.NewScreen(m.desktopSize())
	m.vm.Resize(m.screen.Bounds())
	if !machine.LoggedIn() {
		m.form = m.loginForm()
	}
	return m
}

func (m VMModel) loginForm() *huh.Form {
	login := m.vm.Content().Popups.Login
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("👤 "+login.User).
				Description(login.Welcome),
			huh.NewInput().
				Title("Mot de passe").
				Description(login.Hint).
				EchoMode(huh.EchoModePassword).
				Value(m.password),
		),
	).WithShowHelp(false).WithWidth(36)
}

// VM returns the wrapped session.
func (m VMModel) VM() *vm.VM { return m.vm }

// Init starts the login form, or the desktop timers when already logged in.
func (m VMModel) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return timerCmds(m.vm.Timers())
}

// Update handles messages for the session.
func (m VMModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		if key.Matches(msg, m.keys.Fullscreen) {
			m.vm.ToggleFullscreen()
			m.resize()
			return m, nil
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		m.vm.Desktop().HandleKey(m.keys.Action(msg))
		return m.afterEvent()

	case tea.MouseMsg:
		if m.form != nil {
			return m, nil
		}
		m.routeMouse(msg)
		return m.afterEvent()

	case TimerMsg:
		m.vm.Timers().Fire(msg.ID)
		return m.afterEvent()

	case animFrameMsg:
		return m.stepAnimation()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m VMModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.form = nil
		*m.password = ""
		m.vm.Login()
		return m, timerCmds(m.vm.Timers())
	}
	return m, cmd
}

func (m VMModel) quit() (tea.Model, tea.Cmd) {
	m.vm.Shutdown()
	m.quitting = true
	return m, tea.Quit
}

// routeMouse translates terminal mouse events into desktop pointer events.
func (m VMModel) routeMouse(msg tea.MouseMsg) {
	p := core.Point{X: msg.X, Y: msg.Y - m.offsetY()}
	desk := m.vm.Desktop()
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			desk.PointerDown(p, desktop.MouseLeft)
		case tea.MouseButtonRight:
			desk.PointerDown(p, desktop.MouseRight)
		}
	case tea.MouseActionMotion:
		desk.PointerMove(p)
	case tea.MouseActionRelease:
		desk.PointerUp(p)
	}
}

// afterEvent schedules newly armed timers and starts the start menu
// slide-in when the menu just opened.
func (m VMModel) afterEvent() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{timerCmds(m.vm.Timers())}

	menu := m.vm.StartMenu()
	switch {
	case menu != nil && !m.menuOpen:
		m.menuOpen = true
		m.lift = startMenuRise
		m.liftVel = 0
		menu.Lift = startMenuRise
		if !m.animating {
			m.animating = true
			cmds = append(cmds, animFrameCmd())
		}
	case menu == nil && m.menuOpen:
		m.menuOpen = false
	}
	return m, tea.Batch(cmds...)
}

func (m VMModel) stepAnimation() (tea.Model, tea.Cmd) {
	menu := m.vm.StartMenu()
	if menu == nil {
		m.animating = false
		return m, nil
	}
	m.lift, m.liftVel = m.spring.Update(m.lift, m.liftVel, 0)
	if math.Abs(m.lift) < 0.05 && math.Abs(m.liftVel) < 0.05 {
		m.lift, m.liftVel = 0, 0
		menu.Lift = 0
		m.animating = false
		return m, nil
	}
	menu.Lift = int(math.Round(m.lift))
	return m, animFrameCmd()
}

func (m VMModel) offsetY() int {
	if m.vm.Fullscreen() {
		return 0
	}
	return chromeTop
}

func (m VMModel) desktopSize() (int, int) {
	if m.vm.Fullscreen() {
		return m.width, m.height
	}
	return m.width, max(0, m.height-chromeTop-chromeBottom)
}

func (m *VMModel) resize() {
	m.screen.Resize(m.desktopSize())
	m.vm.Resize(m.screen.Bounds())
}

// View renders the session.
func (m VMModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.loginView()
	}

	m.screen.Clear()
	m.vm.Draw(m.screen)
	body := m.renderer.Render(m.screen)
	if m.vm.Fullscreen() {
		return body
	}
	title := chromeStyle.Width(m.width).Render(core.Truncate(chromeTitle+"   F11 : plein écran", m.width))
	helpLine := chromeHelpStyle.Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, title, body, helpLine)
}

func (m VMModel) loginView() string {
	box := loginBoxStyle.Render(m.form.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(palette[core.ColorNavy]))
}
