package vm

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/games/snake"
)

type recordingSaver struct {
	games  []string
	scores []int
}

func (r *recordingSaver) SaveScore(gameID string, score int) (int64, error) {
	r.games = append(r.games, gameID)
	r.scores = append(r.scores, score)
	return int64(len(r.scores)), nil
}

var arrowFor = map[snake.Direction]core.Action{
	snake.DirUp:    core.ActionUp,
	snake.DirDown:  core.ActionDown,
	snake.DirLeft:  core.ActionLeft,
	snake.DirRight: core.ActionRight,
}

// tickUntilOver fires the snake timer until the game ends.
func tickUntilOver(t *testing.T, v *VM, s *SnakeSession) {
	t.Helper()
	for i := 0; i < 100 && s.Game().Phase() != snake.PhaseGameOver; i++ {
		fireAll(v)
	}
	if s.Game().Phase() != snake.PhaseGameOver {
		t.Fatal("game did not end")
	}
}

func TestSnakeOpenArmsResources(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()

	if s.Window().Title != "🐍 Snake Game" || !s.Window().Wide {
		t.Errorf("window = %q wide=%v", s.Window().Title, s.Window().Wide)
	}
	if !s.Ticking() || !s.Listening() {
		t.Errorf("ticking=%v listening=%v, want both", s.Ticking(), s.Listening())
	}
	if s.Game().Phase() != snake.PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Game().Phase())
	}

	// idle ticks keep the loop alive without moving
	fireAll(v)
	if !s.Ticking() || s.Game().Segments()[0] != (snake.Point{X: 10, Y: 10}) {
		t.Error("idle tick should re-arm and not move the snake")
	}
}

func TestSnakeArrowStartsGame(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()

	if !v.Desktop().HandleKey(core.ActionUp) {
		t.Fatal("arrow should be consumed by the snake listener")
	}
	if s.Game().Phase() != snake.PhaseRunning || s.Game().Direction() != snake.DirUp {
		t.Errorf("phase=%v dir=%v, want running up", s.Game().Phase(), s.Game().Direction())
	}
	if v.Desktop().HandleKey(core.ActionPause) {
		t.Error("non-arrow keys should pass through")
	}
}

func TestSnakeEdgeCollisionTearsDown(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()
	v.Desktop().HandleKey(core.ActionRight)

	// from x=10 heading right, the head reaches x=19 and the next tick leaves the grid
	var before int
	for i := 0; i < 100 && s.Game().Phase() == snake.PhaseRunning; i++ {
		before = s.Game().Score()
		fireAll(v)
	}

	if s.Game().Phase() != snake.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", s.Game().Phase())
	}
	if s.Game().Score() != before {
		t.Errorf("score changed on the fatal tick: %d -> %d", before, s.Game().Score())
	}
	if s.Ticking() || v.Timers().Pending() != 0 {
		t.Errorf("tick timer should be canceled, pending = %d", v.Timers().Pending())
	}
	if s.Listening() || v.Desktop().Listeners() != 0 {
		t.Errorf("key listener should be removed, listeners = %d", v.Desktop().Listeners())
	}
	if !s.Window().Open() {
		t.Error("window stays open on game over")
	}
	if len(s.Window().Buttons) != 1 || s.Window().Buttons[0].Label != snake.ReplayLabel {
		t.Errorf("buttons = %+v, want Rejouer", s.Window().Buttons)
	}
}

func TestSnakeCloseTearsDownSynchronously(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()
	v.Desktop().HandleKey(core.ActionDown)

	s.Window().Close()

	if v.Timers().Pending() != 0 || v.Desktop().Listeners() != 0 {
		t.Errorf("pending=%d listeners=%d after close", v.Timers().Pending(), v.Desktop().Listeners())
	}
	if v.Snake() != nil {
		t.Error("VM should forget the closed session")
	}

	// a reopened game gets exactly one listener
	s2 := v.OpenSnake()
	if s2 == s {
		t.Error("reopen should build a new session")
	}
	if v.Desktop().Listeners() != 1 {
		t.Errorf("listeners = %d, want 1", v.Desktop().Listeners())
	}
}

func TestSnakeReplayRearms(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()
	v.Desktop().HandleKey(core.ActionLeft)
	tickUntilOver(t, v, s)

	// Enter presses the replay button
	v.Desktop().HandleKey(core.ActionConfirm)

	if s.Game().Phase() != snake.PhaseIdle {
		t.Errorf("phase = %v, want idle after replay", s.Game().Phase())
	}
	if !s.Ticking() || !s.Listening() {
		t.Error("replay should re-arm timer and listener")
	}
	if v.Desktop().Listeners() != 1 {
		t.Errorf("listeners = %d, want 1", v.Desktop().Listeners())
	}
	if len(s.Window().Buttons) != 0 {
		t.Error("replay button should go away")
	}

	// replay on a running game is ignored
	v.Desktop().HandleKey(core.ActionUp)
	s.Replay()
	if s.Game().Phase() != snake.PhaseRunning {
		t.Error("Replay() should not interrupt a running game")
	}
}

func TestSnakeOverlayClickReplays(t *testing.T) {
	v := newTestVM(t)
	s := v.OpenSnake()
	v.Desktop().HandleKey(core.ActionUp)
	tickUntilOver(t, v, s)

	view := s.Window().Body.(*snakeView)
	o := view.boardOrigin(core.Rect{W: view.contentWidth()})
	r := s.Game().ReplayRect()
	if !view.Click(core.Point{X: o.X + r.X, Y: o.Y + r.Y}) {
		t.Fatal("click on the replay control should be handled")
	}
	if s.Game().Phase() != snake.PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Game().Phase())
	}
}

// steer picks an arrow that brings the head closer to the food without
// reversing or leaving the grid.
func steer(g *snake.Game) core.Action {
	head := g.Segments()[0]
	food := g.Food()
	n := g.Options().GridSize
	var cands []snake.Direction
	switch {
	case food.X > head.X:
		cands = append(cands, snake.DirRight)
	case food.X < head.X:
		cands = append(cands, snake.DirLeft)
	}
	switch {
	case food.Y > head.Y:
		cands = append(cands, snake.DirDown)
	case food.Y < head.Y:
		cands = append(cands, snake.DirUp)
	}
	cands = append(cands, snake.DirUp, snake.DirDown, snake.DirLeft, snake.DirRight)

	opposite := map[snake.Direction]snake.Direction{
		snake.DirUp: snake.DirDown, snake.DirDown: snake.DirUp,
		snake.DirLeft: snake.DirRight, snake.DirRight: snake.DirLeft,
	}
	step := map[snake.Direction]snake.Point{
		snake.DirUp: {Y: -1}, snake.DirDown: {Y: 1},
		snake.DirLeft: {X: -1}, snake.DirRight: {X: 1},
	}
	for _, d := range cands {
		if g.Phase() == snake.PhaseRunning && opposite[d] == g.Direction() {
			continue
		}
		next := snake.Point{X: head.X + step[d].X, Y: head.Y + step[d].Y}
		if next.X >= 0 && next.X < n && next.Y >= 0 && next.Y < n {
			return arrowFor[d]
		}
	}
	return arrowFor[g.Direction()]
}

func TestSnakeScoreSavedOnce(t *testing.T) {
	saver := &recordingSaver{}
	cfg := config.DefaultConfig()
	cfg.Snake.GridSize = 5
	cfg.Snake.StartX, cfg.Snake.StartY = 2, 2
	cfg.Snake.RerollFood = true
	v := New(core.NewRect(0, 0, 140, 50), Deps{
		Content: content.MustDefault(),
		Config:  cfg,
		Logger:  log.New(io.Discard),
		Scores:  saver,
		Seed:    7,
	})
	s := v.OpenSnake()

	for i := 0; i < 50 && s.Game().Score() == 0; i++ {
		v.Desktop().HandleKey(steer(s.Game()))
		fireAll(v)
	}
	if s.Game().Score() == 0 {
		t.Fatal("snake never reached the food")
	}
	tickUntilOver(t, v, s)
	final := s.Game().Score()

	// extra firings after game over change nothing
	fireAll(v)

	if len(saver.scores) != 1 {
		t.Fatalf("SaveScore called %d times, want 1", len(saver.scores))
	}
	if saver.games[0] != "snake" || saver.scores[0] != final {
		t.Errorf("saved %s=%d, want snake=%d", saver.games[0], saver.scores[0], final)
	}
}

func TestSnakeZeroScoreNotSaved(t *testing.T) {
	saver := &recordingSaver{}
	v := New(core.NewRect(0, 0, 140, 50), Deps{
		Content: content.MustDefault(),
		Config:  config.DefaultConfig(),
		Logger:  log.New(io.Discard),
		Scores:  saver,
		Seed:    3,
	})
	s := v.OpenSnake()
	v.Desktop().HandleKey(core.ActionUp)
	for i := 0; i < 100 && s.Game().Phase() == snake.PhaseRunning && s.Game().Score() == 0; i++ {
		fireAll(v)
	}
	if s.Game().Score() != 0 {
		t.Skip("food happened to lie on the path")
	}
	if len(saver.scores) != 0 {
		t.Errorf("zero score saved: %v", saver.scores)
	}
}
