package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/vm"
)

// Store is the persistence a session writes to.
type Store interface {
	vm.ScoreSaver
	SaveQuizResult(correct, total int) (int64, error)
}

// AppOptions configures one session.
type AppOptions struct {
	Content  *content.Store
	Config   config.Config
	Logger   *log.Logger
	Store    Store // optional
	SkipQuiz bool
	Seed     int64
	Width    int
	Height   int
}

// AppModel chains the quiz and the fake OS session.
type AppModel struct {
	opts   AppOptions
	quiz   *QuizModel
	vm     *VMModel
	width  int
	height int
}

// NewAppModel creates a session starting with the quiz unless SkipQuiz is set.
func NewAppModel(opts AppOptions) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Content == nil {
		opts.Content = content.MustDefault()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	m := AppModel{opts: opts, width: opts.Width, height: opts.Height}
	if opts.SkipQuiz {
		m.startVM()
	} else {
		q := NewQuizModel(opts.Content.Quiz.Questions, m.width, m.height)
		m.quiz = &q
	}
	return m
}

func (m *AppModel) startVM() {
	deps := vm.Deps{
		Content: m.opts.Content,
		Config:  m.opts.Config,
		Logger:  m.opts.Logger,
		Seed:    m.opts.Seed,
	}
	if m.opts.Store != nil {
		deps.Scores = m.opts.Store
	}
	machine := vm.New(core.NewRect(0, 0, m.width, m.height), deps)
	v := NewVMModel(machine, m.width, m.height)
	m.vm = &v
	m.quiz = nil
}

// InQuiz reports whether the quiz is on screen.
func (m AppModel) InQuiz() bool {
	return m.quiz != nil
}

// VM returns the desktop session, or nil during the quiz.
func (m AppModel) VM() *vm.VM {
	if m.vm == nil {
		return nil
	}
	return m.vm.VM()
}

// Init initializes the current stage.
func (m AppModel) Init() tea.Cmd {
	if m.quiz != nil {
		return m.quiz.Init()
	}
	return m.vm.Init()
}

// Update forwards messages to the current stage and switches to the VM
// once the quiz is done.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}

	if m.quiz != nil {
		next, cmd := m.quiz.Update(msg)
		q, ok := next.(QuizModel)
		if !ok {
			return m, cmd
		}
		m.quiz = &q
		if !q.Done() {
			return m, cmd
		}
		m.saveQuiz(q)
		m.startVM()
		return m, tea.Batch(cmd, m.vm.Init())
	}

	next, cmd := m.vm.Update(msg)
	if v, ok := next.(VMModel); ok {
		m.vm = &v
	}
	return m, cmd
}

func (m AppModel) saveQuiz(q QuizModel) {
	res := q.Result()
	m.opts.Logger.Info("quiz finished", "correct", res.Correct, "total", res.Total)
	if m.opts.Store == nil || res.Total == 0 {
		return
	}
	if _, err := m.opts.Store.SaveQuizResult(res.Correct, res.Total); err != nil {
		m.opts.Logger.Warn("save quiz result", "err", err)
	}
}

// View renders the current stage.
func (m AppModel) View() string {
	if m.quiz != nil {
		return m.quiz.View()
	}
	return m.vm.View()
}

// RunApp runs a local session.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
