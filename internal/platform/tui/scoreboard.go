package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/registry"
	"github.com/vovakirdan/tui-fenetres/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 20  // Width of the tab sidebar
	maxScores          = 100 // Max rows to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "monter"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "descendre"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "tableau précédent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "tableau suivant"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tableau suivant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "tableau précédent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quitter"),
		),
	}
}

// board is one tab of the scoreboard: a game or the quiz.
type board struct {
	ID    string
	Title string
	Quiz  bool
}

const quizBoardID = "quiz"

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards      []board        // Available tabs
	boardCursor int            // Currently selected tab
	store       *storage.Store // Score storage
	rows        []table.Row
	summary     string
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show the tab list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
// initial selects the tab to open on (a game id or "quiz"); empty means the first.
func NewScoreboardModel(store *storage.Store, initial string, width, height int) ScoreboardModel {
	boards := listBoards(store)

	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		boards:      boards,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, b := range boards {
		if b.ID == initial {
			m.boardCursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	scoreTitle := "Score"
	if m.current().Quiz {
		scoreTitle = "Réponses"
	}
	columns := []table.Column{
		{Title: "Rang", Width: 6},
		{Title: scoreTitle, Width: 10},
		{Title: "Date", Width: 18},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Adjust column widths if we have more space
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(20, tableWidth-22)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, summary, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetRows(m.rows)

	return t
}

// listBoards returns the installed games, then ids that only exist in the
// database, then the quiz.
func listBoards(store *storage.Store) []board {
	var boards []board
	for _, g := range registry.List() {
		boards = append(boards, board{ID: g.ID, Title: g.Title})
	}
	if store != nil {
		// A failed listing only hides the retired games.
		ids, _ := store.GameIDs()
		for _, id := range ids {
			if !registry.Exists(id) {
				boards = append(boards, board{ID: id, Title: id})
			}
		}
	}
	return append(boards, board{ID: quizBoardID, Title: "Quiz", Quiz: true})
}

func (m ScoreboardModel) current() board {
	if len(m.boards) == 0 {
		return board{}
	}
	return m.boards[m.boardCursor]
}

// load reads the rows and the summary of the current tab.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.summary = ""
	if m.store != nil {
		b := m.current()
		var err error
		if b.Quiz {
			err = m.loadQuiz()
		} else {
			err = m.loadGame(b.ID)
		}
		if err != nil {
			m.rows = nil
			m.summary = "Erreur de lecture des scores."
		}
	}
	m.table = m.createTable()
	m.table.GotoTop()
}

func (m *ScoreboardModel) loadGame(gameID string) error {
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return err
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
	stats, err := m.store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		m.summary = fmt.Sprintf("%d parties · record %d · moyenne %.0f",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}

func (m *ScoreboardModel) loadQuiz() error {
	results, err := m.store.RecentQuizResults(maxScores)
	if err != nil {
		return err
	}
	for i, r := range results {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d/%d", r.Correct, r.Total),
			r.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
	stats, err := m.store.GetQuizStats()
	if err != nil {
		return err
	}
	if stats.Runs > 0 {
		m.summary = fmt.Sprintf("%d quiz · %d sans faute · moyenne %.1f bonnes réponses",
			stats.Runs, stats.Perfect, stats.AvgCorrect)
	}
	return nil
}

// Rows returns the rows of the current tab.
func (m ScoreboardModel) Rows() []table.Row {
	return m.rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.boards) > 0 {
				m.boardCursor = (m.boardCursor + 1) % len(m.boards)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.boards) > 0 {
				m.boardCursor = (m.boardCursor - 1 + len(m.boards)) % len(m.boards)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("MEILLEURS SCORES · %s", m.current().Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	if m.summary != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.summary, m.width))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar listing the tabs.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Tableaux\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, bd := range m.boards {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.boardCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + core.Truncate(bd.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the scoreboard with tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.boards))
	for i, bd := range m.boards {
		name := core.Truncate(bd.Title, 10)
		if i == m.boardCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.current().Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.current().Quiz {
			return emptyStyle.Render("Aucun quiz terminé pour l'instant.")
		}
		return emptyStyle.Render("Aucun score enregistré.\nJouez une partie pour établir un record !")
	}

	return m.table.View()
}

// RunScoreboard runs the scoreboard screen opened on the initial tab.
func RunScoreboard(store *storage.Store, initial string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, initial, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
