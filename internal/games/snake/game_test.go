package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionUp)
		case 4:
			input.Set(core.ActionLeft)
		case 9:
			input.Set(core.ActionDown)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInitialState(t *testing.T) {
	g := New()

	if g.Phase() != PhaseIdle {
		t.Errorf("Expected Idle, got %v", g.Phase())
	}
	segs := g.Segments()
	if len(segs) != 1 || segs[0] != (Point{X: 10, Y: 10}) {
		t.Errorf("Expected single segment at (10,10), got %v", segs)
	}
	if g.Direction() != DirRight {
		t.Errorf("Expected initial direction Right, got %v", g.Direction())
	}
	if g.Tick() != EventNone {
		t.Error("Idle game should not move on tick")
	}
}

func TestFirstArrowStartsGame(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		head Point
	}{
		{"up", DirUp, Point{X: 10, Y: 9}},
		{"down", DirDown, Point{X: 10, Y: 11}},
		{"left", DirLeft, Point{X: 9, Y: 10}},
		{"right", DirRight, Point{X: 11, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.food = Point{X: 0, Y: 0}

			if !g.Steer(tt.dir) {
				t.Fatal("first arrow should be accepted")
			}
			if g.Phase() != PhaseRunning {
				t.Fatalf("Expected Running, got %v", g.Phase())
			}
			if g.Direction() != tt.dir {
				t.Errorf("Expected direction %v, got %v", tt.dir, g.Direction())
			}

			g.Tick()
			if head := g.Segments()[0]; head != tt.head {
				t.Errorf("Expected head %v, got %v", tt.head, head)
			}
		})
	}
}

func TestNoImmediateReversal(t *testing.T) {
	tests := []struct {
		current Direction
		request Direction
		want    bool
	}{
		{DirRight, DirLeft, false},
		{DirLeft, DirRight, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirRight, DirRight, true},
		{DirRight, DirUp, true},
		{DirRight, DirDown, true},
		{DirUp, DirLeft, true},
		{DirUp, DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"_to_"+tt.request.String(), func(t *testing.T) {
			g := New()
			g.Steer(tt.current)

			if got := g.Steer(tt.request); got != tt.want {
				t.Errorf("Steer(%v) while heading %v = %v, want %v", tt.request, tt.current, got, tt.want)
			}
		})
	}
}

func TestReversalCheckedAgainstLastTick(t *testing.T) {
	g := New()
	g.food = Point{X: 0, Y: 0}
	g.Steer(DirRight)

	// Up is accepted, but Left is still opposite to the applied Right.
	if !g.Steer(DirUp) {
		t.Fatal("perpendicular request rejected")
	}
	if g.Steer(DirLeft) {
		t.Error("Left accepted before the Up turn was applied")
	}

	g.Tick()
	if g.Direction() != DirUp {
		t.Fatalf("Expected Up after tick, got %v", g.Direction())
	}
	if !g.Steer(DirLeft) {
		t.Error("Left should be accepted once heading Up")
	}
}

func TestCollisionWithEdge(t *testing.T) {
	g := New()
	g.Steer(DirRight)
	g.snake = []Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}
	g.food = Point{X: 0, Y: 0}

	if ev := g.Tick(); ev != EventDied {
		t.Errorf("Expected EventDied, got %v", ev)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected GameOver, got %v", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("Score should be unchanged, got %d", g.Score())
	}
	if g.Tick() != EventNone {
		t.Error("Game over should stop ticking")
	}
	if g.Steer(DirUp) {
		t.Error("Steer should be ignored after game over")
	}
}

func TestEdgesOfGrid(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  Direction
	}{
		{"top", Point{X: 4, Y: 0}, DirUp},
		{"bottom", Point{X: 4, Y: 19}, DirDown},
		{"left", Point{X: 0, Y: 4}, DirLeft},
		{"right", Point{X: 19, Y: 4}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Steer(tt.dir)
			g.snake = []Point{tt.head}
			if g.Tick() != EventDied {
				t.Errorf("Expected death leaving the grid at %v", tt.head)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := New()
	g.Steer(DirUp)
	g.food = Point{X: 0, Y: 0}

	// Head at (5,5) turning right hits (6,5), the tail.
	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.Steer(DirRight)

	if g.Tick() != EventDied {
		t.Error("Game should be over after hitting the tail")
	}
}

func TestSnakeGrowth(t *testing.T) {
	opts := DefaultOptions()
	opts.RerollFood = true
	g := NewWithOptions(opts)
	g.Steer(DirRight)
	g.food = Point{X: 11, Y: 10}

	if ev := g.Tick(); ev != EventAte {
		t.Fatalf("Expected EventAte, got %v", ev)
	}
	if g.Score() != 10 {
		t.Errorf("Score should be 10 after eating food, got %d", g.Score())
	}
	if len(g.Segments()) != 2 {
		t.Errorf("Snake should grow by 1, got length %d", len(g.Segments()))
	}
	if g.Food() == (Point{X: 11, Y: 10}) {
		t.Error("New food was not generated")
	}

	// Constant length on a plain move.
	g.food = Point{X: 0, Y: 0}
	g.Tick()
	if len(g.Segments()) != 2 {
		t.Errorf("Length should stay 2, got %d", len(g.Segments()))
	}
}

func TestRerollFoodAvoidsSnake(t *testing.T) {
	opts := DefaultOptions()
	opts.RerollFood = true
	g := NewWithOptions(opts)
	g.Reset(core.RuntimeConfig{Seed: 999})

	for y := range 20 {
		for x := range 10 {
			g.snake = append(g.snake, Point{X: x, Y: y})
		}
	}
	for range 100 {
		g.spawnFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestFoodWithinBounds(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 7})
	for range 200 {
		g.spawnFood()
		if g.food.X < 0 || g.food.X >= 20 || g.food.Y < 0 || g.food.Y >= 20 {
			t.Fatalf("Food spawned out of bounds at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestReplay(t *testing.T) {
	g := New()
	g.Steer(DirRight)
	g.score = 40
	g.snake = []Point{{X: 19, Y: 0}, {X: 18, Y: 0}}
	g.Tick()

	g.Replay()

	snap := g.Snapshot()
	if snap.Phase != PhaseIdle || snap.Score != 0 || snap.SnakeLen != 1 || snap.HeadX != 10 || snap.HeadY != 10 {
		t.Errorf("Replay did not restore the initial state: %+v", snap)
	}
}

func TestStepRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Steer(DirRight)
	g.snake = []Point{{X: 19, Y: 3}}
	g.Tick()

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.Phase() != PhaseIdle {
		t.Errorf("Expected Idle after restart, got %v", g.Phase())
	}
}

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" {
		t.Errorf("ID should be 'snake', got %s", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title should be 'Snake', got %s", g.Title())
	}
}

func TestOptionsNormalized(t *testing.T) {
	g := NewWithOptions(Options{GridSize: 8, Start: Point{X: 50, Y: 50}})
	if got := g.Segments()[0]; got != (Point{X: 4, Y: 4}) {
		t.Errorf("Out-of-grid start should fall back to the center, got %v", got)
	}
	if g.Options().PointsPerFood != 10 {
		t.Errorf("PointsPerFood = %d, want default 10", g.Options().PointsPerFood)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 444, ScreenW: 80, ScreenH: 26})

	screen := core.NewScreen(80, 26)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if !strings.Contains(content, InfoIdle) {
		t.Error("Idle info line missing")
	}
}

func TestDrawBoardGameOverOverlay(t *testing.T) {
	g := New()
	g.Steer(DirRight)
	g.score = 30
	g.snake = []Point{{X: 19, Y: 3}}
	g.Tick()

	screen := core.NewScreen(40, 20)
	g.DrawBoard(screen, 0, 0)

	content := screen.String()
	for _, want := range []string{InfoGameOver, "Score: 30", ReplayLabel} {
		if !strings.Contains(content, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestReplayRectPointsAtLabel(t *testing.T) {
	g := New()
	if r := g.ReplayRect(); r.W != 0 {
		t.Errorf("ReplayRect() before game over = %+v, want empty", r)
	}

	g.Steer(DirRight)
	g.snake = []Point{{X: 19, Y: 3}}
	g.Tick()

	w, h := g.BoardSize()
	screen := core.NewScreen(w, h)
	g.DrawBoard(screen, 0, 0)

	r := g.ReplayRect()
	row := screen.Row(r.Y)
	if !strings.Contains(row, "[ "+ReplayLabel+" ]") {
		t.Errorf("row %d = %q, want the replay label", r.Y, row)
	}
}
