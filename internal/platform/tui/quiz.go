package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/quiz"
)

const (
	quizTitle    = "Quiz : souveraineté numérique et écologie"
	quizMaxWidth = 70
)

var (
	quizTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	quizQuestionStyle = lipgloss.NewStyle().
				Bold(true)
	quizCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
	quizRightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	quizWrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	quizMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	quizExplainStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	quizButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("32")).
			Padding(0, 2)
)

// QuizModel asks the introductory questions.
type QuizModel struct {
	quiz     *quiz.Quiz
	cursor   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewQuizModel starts a quiz over the given questions.
func NewQuizModel(questions []content.Question, width, height int) QuizModel {
	h := help.New()
	h.Width = width
	return QuizModel{
		quiz:   quiz.New(questions),
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the quiz model.
func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the quiz.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.quiz.Done() {
		return m, nil
	}

	// Digits pick an option directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.choose(int(s[0] - '1'))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if !m.quiz.Answered() && m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if !m.quiz.Answered() && m.cursor < len(m.quiz.Current().Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if !m.quiz.Answered() {
			m.choose(m.cursor)
			return m, nil
		}
		if m.quiz.Next() && !m.quiz.Done() {
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *QuizModel) choose(option int) {
	if m.quiz.Select(option) {
		m.cursor = option
	}
}

// Done reports whether the last question was validated.
func (m QuizModel) Done() bool {
	return m.quiz.Done()
}

// Result returns the score of the run.
func (m QuizModel) Result() quiz.Result {
	return m.quiz.Result()
}

// View renders the quiz.
func (m QuizModel) View() string {
	if m.quitting {
		return ""
	}
	if m.quiz.Total() == 0 {
		return centerText(quizMutedStyle.Render("Aucune question."), m.width)
	}

	width := min(quizMaxWidth, max(20, m.width-4))
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(quizTitleStyle.Render(quizTitle), m.width))
	b.WriteString("\n\n")

	pos, total := m.quiz.Progress()
	b.WriteString(centerText(fmt.Sprintf("%s  %d/%d", renderDots(m.quiz.Dots()), pos, total), m.width))
	b.WriteString("\n\n")

	q := m.quiz.Current()
	b.WriteString(centerBlock(quizQuestionStyle.Width(width).Render(q.Question), m.width))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range q.Options {
		if i > 0 {
			opts.WriteString("\n")
		}
		opts.WriteString(m.renderOption(i, opt))
	}
	b.WriteString(centerBlock(lipgloss.NewStyle().Width(width).Render(opts.String()), m.width))
	b.WriteString("\n")

	if m.quiz.Answered() {
		b.WriteString("\n")
		verdict := quizWrongStyle.Render("✗ Pas tout à fait…")
		if m.quiz.SelectedCorrect() {
			verdict = quizRightStyle.Render("✓ Bonne réponse !")
		}
		explain := verdict + "\n" + m.quiz.Explanation()
		b.WriteString(centerBlock(quizExplainStyle.Width(width).Render(explain), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(quizButtonStyle.Render(m.quiz.NextLabel()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(quizMutedStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m QuizModel) renderOption(i int, opt content.Option) string {
	label := fmt.Sprintf("%d. %s", i+1, opt.Text)
	if !m.quiz.Answered() {
		if i == m.cursor {
			return quizCursorStyle.Render("> " + label)
		}
		return "  " + label
	}
	switch {
	case opt.Correct:
		return quizRightStyle.Render("✓ " + label)
	case i == m.quiz.Selected():
		return quizWrongStyle.Render("✗ " + label)
	default:
		return quizMutedStyle.Render("  " + label)
	}
}

func renderDots(dots []quiz.Dot) string {
	var b strings.Builder
	for i, d := range dots {
		if i > 0 {
			b.WriteString(" ")
		}
		switch d {
		case quiz.DotCompleted:
			b.WriteString(quizRightStyle.Render("●"))
		case quiz.DotActive:
			b.WriteString(quizCursorStyle.Render("◉"))
		default:
			b.WriteString(quizMutedStyle.Render("○"))
		}
	}
	return b.String()
}

// centerText centers a single line within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
