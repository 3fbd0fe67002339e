package vm

import (
	"time"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
	"github.com/vovakirdan/tui-fenetres/internal/games/snake"
)

// SnakeSession runs a Snake game inside a desktop window. It owns two
// resources: the repeating tick timer and the key subscription. Both are
// armed when a game starts and dropped when it ends or the window closes.
type SnakeSession struct {
	vm    *VM
	game  *snake.Game
	win   *desktop.Window
	every time.Duration

	timer      desktop.TimerID
	ticking    bool
	sub        desktop.Subscription
	subscribed bool
	saved      bool
}

// SnakeOptions turns the snake config section into engine rules.
func SnakeOptions(c config.SnakeConfig) snake.Options {
	return snake.Options{
		GridSize:      c.GridSize,
		PointsPerFood: c.PointsPerFood,
		RerollFood:    c.RerollFood,
		Start:         snake.Point{X: c.StartX, Y: c.StartY},
	}
}

// OpenSnake opens the Snake window, or leaves the open one as is.
func (v *VM) OpenSnake() *SnakeSession {
	var session *SnakeSession
	_, created := v.desk.OpenSingleton(KindSnake, func() *desktop.Window {
		session = v.newSnakeSession()
		return session.win
	})
	if !created {
		return v.snake
	}
	v.snake = session
	session.start()
	return session
}

func (v *VM) newSnakeSession() *SnakeSession {
	game := snake.NewWithOptions(SnakeOptions(v.cfg.Snake))
	game.Reset(core.RuntimeConfig{Seed: v.nextSeed()})

	every := v.cfg.Snake.Tick.D()
	if every <= 0 {
		every = 200 * time.Millisecond
	}
	s := &SnakeSession{vm: v, game: game, every: every}
	s.win = desktop.NewWindow(v.content.Popups.Snake.Title, &snakeView{s: s}, true).
		OnClose(s.closed)
	return s
}

// Game exposes the engine, mainly for inspection.
func (s *SnakeSession) Game() *snake.Game { return s.game }

// Window returns the session window.
func (s *SnakeSession) Window() *desktop.Window { return s.win }

// Ticking reports whether the tick timer is armed.
func (s *SnakeSession) Ticking() bool { return s.ticking }

// Listening reports whether the key listener is subscribed.
func (s *SnakeSession) Listening() bool { return s.subscribed }

func (s *SnakeSession) start() {
	s.saved = false
	if !s.subscribed {
		s.sub = s.vm.desk.Subscribe(s.onKey)
		s.subscribed = true
	}
	s.armTick()
	s.vm.logger.Debug("snake started", "tick", s.every)
}

func (s *SnakeSession) armTick() {
	s.vm.timers.Cancel(s.timer)
	s.timer = s.vm.timers.After(s.every, s.onTick)
	s.ticking = true
}

// teardown drops the timer and the key listener. Safe to call twice.
func (s *SnakeSession) teardown() {
	if s.ticking {
		s.vm.timers.Cancel(s.timer)
		s.ticking = false
	}
	if s.subscribed {
		s.vm.desk.Unsubscribe(s.sub)
		s.subscribed = false
	}
}

func (s *SnakeSession) closed() {
	s.teardown()
	if s.vm.snake == s {
		s.vm.snake = nil
	}
	s.vm.logger.Debug("snake closed", "score", s.game.Score())
}

func (s *SnakeSession) onKey(a core.Action) bool {
	d, ok := snake.DirectionFor(a)
	if !ok {
		return false
	}
	s.game.Steer(d)
	return true
}

func (s *SnakeSession) onTick() {
	s.ticking = false
	if !s.win.Open() {
		return
	}
	if s.game.Tick() == snake.EventDied {
		s.gameOver()
		return
	}
	s.armTick()
}

func (s *SnakeSession) gameOver() {
	s.teardown()
	s.saveScore()
	s.win.Buttons = nil
	s.win.Default = -1
	s.win.WithButtons(desktop.Button{Label: snake.ReplayLabel, Primary: true, OnPress: s.Replay})
	s.vm.logger.Debug("snake game over", "state", s.game.DebugState())
}

func (s *SnakeSession) saveScore() {
	if s.saved || s.game.Score() <= 0 || s.vm.scores == nil {
		return
	}
	s.saved = true
	if _, err := s.vm.scores.SaveScore(s.game.ID(), s.game.Score()); err != nil {
		s.vm.logger.Warn("cannot save snake score", "err", err)
	}
}

// Replay resets the game to Idle and re-arms the timer and the key listener.
// It only acts on a finished game whose window is still open.
func (s *SnakeSession) Replay() {
	if s.game.Phase() != snake.PhaseGameOver || !s.win.Open() {
		return
	}
	s.game.Replay()
	s.win.Buttons = nil
	s.win.Default = -1
	s.start()
}

// snakeView is the window body: a status line over the board.
type snakeView struct {
	s *SnakeSession
}

func (v *snakeView) Size() (int, int) {
	w, h := v.s.game.BoardSize()
	return w, h + 1
}

func (v *snakeView) boardOrigin(area core.Rect) core.Point {
	w, _ := v.s.game.BoardSize()
	return core.Point{X: area.X + max(0, (area.W-w)/2), Y: area.Y + 1}
}

func (v *snakeView) Draw(dst *core.Screen, area core.Rect) {
	g := v.s.game
	hint := g.Info()
	if g.Phase() == snake.PhaseRunning {
		hint += "  ·  " + v.s.vm.content.Popups.Snake.Controls
	}
	dst.DrawStyledText(area.X, area.Y, core.Truncate(hint, area.W), desktop.StyleHeading)

	o := v.boardOrigin(area)
	g.DrawBoard(dst, o.X, o.Y)
}

// Click replays when the overlay's replay control is hit.
func (v *snakeView) Click(p core.Point) bool {
	o := v.boardOrigin(core.Rect{W: v.contentWidth()})
	rel := core.Point{X: p.X - o.X, Y: p.Y - o.Y}
	if v.s.game.ReplayRect().ContainsPoint(rel) {
		v.s.Replay()
		return true
	}
	return false
}

// contentWidth is the content width of the wide window holding the board.
func (v *snakeView) contentWidth() int {
	w, _ := v.s.win.Size(v.s.vm.desk.Area())
	return w - 4
}
