package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// CellWidth is the number of columns used per grid cell, so cells look square.
const CellWidth = 2

// Messages shown around the board.
const (
	InfoIdle     = "Appuyez sur une flèche pour commencer"
	InfoGameOver = "Game Over!"
	ReplayLabel  = "Rejouer"
)

var (
	styleBoard = core.Style{Fg: core.ColorDarkGray, Bg: core.ColorSlate}
	styleHead  = core.Style{Fg: core.ColorBrightGreen, Bg: core.ColorSlate, Bold: true}
	styleBody  = core.Style{Fg: core.ColorGreen, Bg: core.ColorSlate}
	styleFood  = core.Style{Fg: core.ColorBrightRed, Bg: core.ColorSlate, Bold: true}
	styleHUD   = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorBlack, Bold: true}
	styleBox   = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorBlack}
)

// BoardSize returns the board size in screen cells.
func (g *Game) BoardSize() (int, int) {
	return g.opts.GridSize * CellWidth, g.opts.GridSize
}

// Info returns the status line under the board.
func (g *Game) Info() string {
	switch g.phase {
	case PhaseIdle:
		return InfoIdle
	case PhaseGameOver:
		return fmt.Sprintf("%s Score: %d", InfoGameOver, g.score)
	default:
		return fmt.Sprintf("Score: %d", g.score)
	}
}

// DrawBoard redraws the whole grid with its top-left corner at (x, y):
// background, snake body, a distinct head, and the food.
func (g *Game) DrawBoard(dst *core.Screen, x, y int) {
	w, h := g.BoardSize()
	dst.FillRect(core.NewRect(x, y, w, h), ' ', styleBoard)

	cell := func(p Point, text string, st core.Style) {
		dst.DrawStyledText(x+p.X*CellWidth, y+p.Y, text, st)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], "██", styleHead)
		} else {
			cell(g.snake[i], "▓▓", styleBody)
		}
	}
	if g.food.X >= 0 {
		cell(g.food, "()", styleFood)
	}

	if g.phase == PhaseGameOver {
		g.drawOverlay(dst, core.NewRect(x, y, w, h))
	}
}

func (g *Game) overlayLines() []string {
	return []string{InfoGameOver, fmt.Sprintf("Score: %d", g.score), "[ " + ReplayLabel + " ]"}
}

func (g *Game) overlayBox(board core.Rect) core.Rect {
	boxW := 0
	for _, l := range g.overlayLines() {
		boxW = max(boxW, core.TextWidth(l))
	}
	boxW += 4
	boxH := len(g.overlayLines()) + 2
	return core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)
}

// ReplayRect returns the replay control of the game over overlay, relative
// to the board origin. It is empty unless the game is over.
func (g *Game) ReplayRect() core.Rect {
	if g.phase != PhaseGameOver {
		return core.Rect{}
	}
	w, h := g.BoardSize()
	box := g.overlayBox(core.NewRect(0, 0, w, h))
	lines := g.overlayLines()
	label := lines[len(lines)-1]
	lw := core.TextWidth(label)
	return core.NewRect(box.X+(box.W-lw)/2, box.Y+len(lines), lw, 1)
}

// drawOverlay draws the game over box with the final score and replay control.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect) {
	box := g.overlayBox(board)
	dst.FillRect(box, ' ', styleBox)
	for i, l := range g.overlayLines() {
		lx := box.X + (box.W-core.TextWidth(l))/2
		dst.DrawStyledText(lx, box.Y+1+i, l, styleBox)
	}
}

// Render draws the game full-screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake - Score: %d", g.score)
	dst.FillRect(core.NewRect(0, 0, dst.Width(), 1), ' ', styleHUD)
	dst.DrawStyledText(0, 0, hud, styleHUD)

	w, h := g.BoardSize()
	if dst.Width() < w+2 || dst.Height() < h+4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	x := (dst.Width() - w) / 2
	y := 2
	dst.DrawBox(core.NewRect(x-1, y-1, w+2, h+2))
	g.DrawBoard(dst, x, y)

	info := g.Info()
	if g.paused {
		info = "Pause"
	}
	dst.DrawTextCentered(y+h+1, info)
}
