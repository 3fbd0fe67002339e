package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Phase is the lifecycle stage of a game.
type Phase int

const (
	// PhaseIdle waits for the first arrow key.
	PhaseIdle Phase = iota
	// PhaseRunning advances on every tick.
	PhaseRunning
	// PhaseGameOver is terminal until Replay.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports what a tick did.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventDied
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Options tunes the rules.
type Options struct {
	GridSize      int
	PointsPerFood int
	// RerollFood places food only on free cells. Off by default: food is a
	// uniformly random cell and may land under the snake.
	RerollFood bool
	Start      Point
}

// DefaultOptions returns the standard 20x20 rules.
func DefaultOptions() Options {
	return Options{
		GridSize:      20,
		PointsPerFood: 10,
		Start:         Point{X: 10, Y: 10},
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.GridSize <= 0 {
		o.GridSize = def.GridSize
	}
	if o.PointsPerFood <= 0 {
		o.PointsPerFood = def.PointsPerFood
	}
	if o.Start.X < 0 || o.Start.X >= o.GridSize || o.Start.Y < 0 || o.Start.Y >= o.GridSize {
		o.Start = Point{X: o.GridSize / 2, Y: o.GridSize / 2}
	}
	return o
}

// Game implements the Snake game.
type Game struct {
	opts  Options
	rng   *rand.Rand
	tick  uint64
	score int
	phase Phase

	// Snake state
	snake     []Point   // Head at index 0
	direction Direction // Last direction applied by a tick
	nextDir   Direction // Buffered direction for next move
	food      Point

	paused  bool
	screenW int
	screenH int
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// New creates a Snake game with the default rules.
func New() *Game {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Snake game with custom rules.
func NewWithOptions(opts Options) *Game {
	g := &Game{opts: opts.normalized(), rng: rand.New(rand.NewSource(1))}
	g.Replay()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Options returns the rules in use.
func (g *Game) Options() Options {
	return g.opts
}

// Reset reseeds the game and returns it to Idle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.Replay()
}

// Replay restores the initial snake, food and score and goes back to Idle.
func (g *Game) Replay() {
	g.tick = 0
	g.score = 0
	g.paused = false
	g.phase = PhaseIdle
	g.snake = []Point{g.opts.Start}
	g.direction = DirRight
	g.nextDir = DirRight
	g.spawnFood()
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Segments returns a copy of the snake, head first.
func (g *Game) Segments() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food cell.
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the direction applied by the last tick.
func (g *Game) Direction() Direction {
	return g.direction
}

// Steer requests a direction change. From Idle any direction is accepted and
// starts the game. While running, a request opposite to the direction of the
// last tick is rejected; accepted requests take effect on the next tick.
func (g *Game) Steer(d Direction) bool {
	switch g.phase {
	case PhaseIdle:
		g.direction = d
		g.nextDir = d
		g.phase = PhaseRunning
		return true
	case PhaseRunning:
		if isOpposite(d, g.direction) {
			return false
		}
		g.nextDir = d
		return true
	default:
		return false
	}
}

// Tick advances a running game by one cell.
func (g *Game) Tick() Event {
	if g.phase != PhaseRunning || len(g.snake) == 0 {
		return EventNone
	}
	g.tick++

	// Apply buffered direction
	g.direction = g.nextDir

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	n := g.opts.GridSize
	if newHead.X < 0 || newHead.X >= n || newHead.Y < 0 || newHead.Y >= n {
		g.phase = PhaseGameOver
		return EventDied
	}
	// Every segment counts, tail included.
	if g.isSnakeAt(newHead) {
		g.phase = PhaseGameOver
		return EventDied
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score += g.opts.PointsPerFood
		g.spawnFood()
		return EventAte
	}
	g.snake = g.snake[:len(g.snake)-1]
	return EventMoved
}

// spawnFood picks a new food cell.
func (g *Game) spawnFood() {
	n := g.opts.GridSize
	if !g.opts.RerollFood {
		g.food = Point{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		return
	}

	// Collect all empty cells
	var emptyCells []Point
	for y := range n {
		for x := range n {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}
	if len(emptyCells) == 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// DirectionFor maps an arrow action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Step advances the game by one tick when run full-screen.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver && (input.Has(core.ActionRestart) || input.Has(core.ActionConfirm)) {
		g.Replay()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Process direction input (first arrow wins within a frame)
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if input.Has(a) {
			d, _ := DirectionFor(a)
			g.Steer(d)
			break
		}
	}

	g.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DebugState returns a one-line summary of the game state for logs.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d score=%d phase=%s len=%d dir=%s", g.tick, g.score, g.phase, len(g.snake), g.direction)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, " head=(%d,%d)", g.snake[0].X, g.snake[0].Y)
	}
	fmt.Fprintf(&b, " food=(%d,%d)", g.food.X, g.food.Y)
	return b.String()
}
