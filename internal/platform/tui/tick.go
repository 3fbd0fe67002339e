// Package tui provides the Bubble Tea integration for fenetres.
// It runs the quiz, the fake desktop and the full-screen games, maps keys
// and mouse events, and turns the desktop timer table into tea commands.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimerMsg reports that a desktop timer is due.
type TimerMsg struct {
	ID desktop.TimerID
}

// timerCmds schedules the drained requests of a timer table.
// Firing a canceled id is a no-op on the table side.
func timerCmds(timers *desktop.Timers) tea.Cmd {
	reqs := timers.Drain()
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		id := req.ID
		cmds = append(cmds, tea.Tick(req.Delay, func(time.Time) tea.Msg {
			return TimerMsg{ID: id}
		}))
	}
	return tea.Batch(cmds...)
}
