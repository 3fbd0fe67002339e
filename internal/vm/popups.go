package vm

import (
	"time"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/desktop"
)

// PendingPopups returns how many nag popups are still armed.
func (v *VM) PendingPopups() int { return v.sched.Pending() }

// SchedulePopups cancels the pending nag popups, then arms one job per nag
// at its configured delay.
func (v *VM) SchedulePopups() {
	delays := map[string]time.Duration{
		"update":     v.cfg.Popups.Update.D(),
		"activation": v.cfg.Popups.Activation.D(),
		"office":     v.cfg.Popups.Office.D(),
	}
	var jobs []desktop.Job
	for _, nag := range v.content.Popups.Nags {
		delay, ok := delays[nag.ID]
		if !ok || delay <= 0 {
			v.logger.Debug("nag without delay", "nag", nag.ID)
			continue
		}
		nag := nag
		jobs = append(jobs, desktop.Job{
			Name:  nag.ID,
			Delay: delay,
			Run:   func() { v.OpenNag(nag) },
		})
	}
	v.sched.Schedule(jobs...)
}

// OpenNag opens a nag window. Nags stack: each call adds one.
func (v *VM) OpenNag(n content.Nag) *desktop.Window {
	return v.desk.OpenMany(func() *desktop.Window {
		body := &desktop.TextContent{}
		for _, l := range n.Lines {
			body.AddWrapped(l, narrowText, desktop.StyleText)
		}
		if n.Small != "" {
			body.Blank().AddWrapped(n.Small, narrowText, desktop.StyleMuted)
		}
		if n.Tip != "" {
			body.Blank().AddWrapped(n.Tip, narrowText, desktop.StyleSuccess)
		}

		var w *desktop.Window
		w = desktop.NewWindow(n.Title, body, false)
		for _, b := range n.Buttons {
			if b.Close {
				w.WithButtons(closeButton(b.Label, b.Primary, &w))
				continue
			}
			w.WithButtons(desktop.Button{Label: b.Label, Primary: b.Primary})
		}
		return w
	})
}
