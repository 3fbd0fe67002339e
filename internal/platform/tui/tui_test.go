package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/vm"
)

const (
	testW = 140
	testH = 50
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyF11   = tea.KeyMsg{Type: tea.KeyF11}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fakeStore struct {
	scores []int
	quiz   [][2]int
}

func (f *fakeStore) SaveScore(_ string, score int) (int64, error) {
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func (f *fakeStore) SaveQuizResult(correct, total int) (int64, error) {
	f.quiz = append(f.quiz, [2]int{correct, total})
	return int64(len(f.quiz)), nil
}

func newLoggedInVM(t *testing.T) *vm.VM {
	t.Helper()
	machine := vm.New(core.NewRect(0, 0, testW, testH), vm.Deps{
		Content: content.MustDefault(),
		Config:  config.DefaultConfig(),
		Logger:  log.New(io.Discard),
		Seed:    7,
	})
	machine.Login()
	return machine
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{keyDown, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{keyEnter, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("r"), core.ActionRestart},
		{runes("p"), core.ActionPause},
		{keyCtrlC, core.ActionQuit},
		{runes("x"), core.ActionNone},
		{keyF11, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderKeepsTextAndSkipsWideTail(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawStyledText(0, 0, "ab", core.Style{Fg: core.ColorRed, Bold: true})
	s.DrawText(0, 1, "日x")

	out := NewRenderer().Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("line 0 = %q, want it to contain ab", lines[0])
	}
	if !strings.HasPrefix(lines[1], "日x") {
		t.Errorf("line 1 = %q, want 日x without a filler after the wide glyph", lines[1])
	}
}

func TestQuizModelWalksToTheEnd(t *testing.T) {
	questions := content.MustDefault().Quiz.Questions
	var m tea.Model = NewQuizModel(questions, testW, testH)

	for i := range questions {
		// Enter before answering selects the option under the cursor.
		m = update(t, m, keyDown)
		m = update(t, m, keyEnter)
		q := m.(QuizModel)
		if !q.quiz.Answered() {
			t.Fatalf("question %d: not answered after enter", i)
		}
		if q.quiz.Selected() != 1 {
			t.Errorf("question %d: selected %d, want 1", i, q.quiz.Selected())
		}
		if !strings.Contains(m.View(), q.quiz.NextLabel()) {
			t.Errorf("question %d: view lacks the next button", i)
		}
		// A second answer is ignored while the explanation shows.
		m = update(t, m, runes("1"))
		if m.(QuizModel).quiz.Selected() != 1 {
			t.Errorf("question %d: answer changed after explanation", i)
		}
		m = update(t, m, keyEnter)
	}

	q := m.(QuizModel)
	if !q.Done() {
		t.Fatal("quiz should be done")
	}
	if got := q.Result().Total; got != len(questions) {
		t.Errorf("Total = %d, want %d", got, len(questions))
	}
}

func TestAppSavesQuizThenStartsVM(t *testing.T) {
	store := &fakeStore{}
	questions := content.MustDefault().Quiz.Questions
	var m tea.Model = NewAppModel(AppOptions{
		Config: config.DefaultConfig(),
		Logger: log.New(io.Discard),
		Store:  store,
		Width:  testW,
		Height: testH,
	})

	for range questions {
		m = update(t, m, runes("1"))
		m = update(t, m, keyEnter)
	}

	app := m.(AppModel)
	if app.InQuiz() {
		t.Fatal("app should have left the quiz")
	}
	if app.VM() == nil || app.VM().LoggedIn() {
		t.Fatal("app should show the login screen of a fresh VM")
	}
	if len(store.quiz) != 1 || store.quiz[0][1] != len(questions) {
		t.Errorf("saved quiz results = %v, want one run of %d", store.quiz, len(questions))
	}
}

func TestAppSkipQuiz(t *testing.T) {
	app := NewAppModel(AppOptions{SkipQuiz: true, Logger: log.New(io.Discard)})
	if app.InQuiz() || app.VM() == nil {
		t.Error("SkipQuiz should start at the VM")
	}
}

func TestVMModelFiresTimers(t *testing.T) {
	machine := newLoggedInVM(t)
	var m tea.Model = NewVMModel(machine, testW, testH)

	ids := machine.Timers().PendingIDs()
	if len(ids) != 4 {
		t.Fatalf("pending timers = %d, want clock + 3 popups", len(ids))
	}
	for _, id := range ids {
		m = update(t, m, TimerMsg{ID: id})
	}
	if got := len(machine.Desktop().Windows()); got != 3 {
		t.Errorf("windows = %d, want 3 nags", got)
	}

	// Firing the same ids again is a no-op.
	for _, id := range ids {
		m = update(t, m, TimerMsg{ID: id})
	}
	if got := len(machine.Desktop().Windows()); got != 3 {
		t.Errorf("windows after stale firings = %d, want 3", got)
	}
}

func TestVMModelFullscreenAndQuit(t *testing.T) {
	machine := newLoggedInVM(t)
	var m tea.Model = NewVMModel(machine, testW, testH)

	if got := machine.Desktop().Bounds().H; got != testH-chromeTop-chromeBottom {
		t.Errorf("windowed desktop height = %d", got)
	}
	m = update(t, m, keyF11)
	if !machine.Fullscreen() {
		t.Fatal("F11 should enter fullscreen")
	}
	if got := machine.Desktop().Bounds().H; got != testH {
		t.Errorf("fullscreen desktop height = %d, want %d", got, testH)
	}
	if strings.Contains(m.View(), chromeTitle) {
		t.Error("fullscreen view should hide the frame title")
	}

	next, cmd := m.Update(keyCtrlC)
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if machine.LoggedIn() || machine.Timers().Pending() != 0 {
		t.Error("ctrl+c should shut the session down")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestVMModelStartMenuSlidesIn(t *testing.T) {
	machine := newLoggedInVM(t)
	var m tea.Model = NewVMModel(machine, testW, testH)

	// Start button sits at the left of the taskbar, the last desktop row.
	y := chromeTop + machine.Desktop().Bounds().H - 1
	m = update(t, m, tea.MouseMsg{X: 0, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 0, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	menu := machine.StartMenu()
	if menu == nil {
		t.Fatal("start menu should be open")
	}
	if menu.Lift != startMenuRise {
		t.Errorf("initial lift = %d, want %d", menu.Lift, startMenuRise)
	}

	for i := 0; i < 10*animFPS && m.(VMModel).animating; i++ {
		m = update(t, m, animFrameMsg{})
	}
	if m.(VMModel).animating {
		t.Fatal("animation did not settle")
	}
	if menu.Lift != 0 {
		t.Errorf("settled lift = %d, want 0", menu.Lift)
	}
}
