package desktop

import (
	"time"

	"github.com/charmbracelet/log"
)

// Job is a delayed action of a scheduler.
type Job struct {
	Name  string
	Delay time.Duration
	Run   func()
}

// Scheduler arms a batch of one-shot jobs on a timer table. Scheduling again
// cancels whatever the previous batch left pending, so repeated calls never
// leave orphaned timers.
type Scheduler struct {
	timers *Timers
	ids    []TimerID
	logger *log.Logger
}

// NewScheduler binds a scheduler to a timer table.
func NewScheduler(timers *Timers, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{timers: timers, logger: logger}
}

// Schedule cancels pending jobs, then arms the given ones.
func (s *Scheduler) Schedule(jobs ...Job) {
	s.Cancel()
	for _, j := range jobs {
		s.ids = append(s.ids, s.timers.After(j.Delay, j.Run))
		s.logger.Debug("job armed", "job", j.Name, "delay", j.Delay)
	}
}

// Cancel disarms every pending job of this scheduler.
func (s *Scheduler) Cancel() {
	n := 0
	for _, id := range s.ids {
		if s.timers.Cancel(id) {
			n++
		}
	}
	if n > 0 {
		s.logger.Debug("jobs canceled", "count", n)
	}
	s.ids = s.ids[:0]
}

// Pending returns how many of this scheduler's jobs have not fired yet.
func (s *Scheduler) Pending() int {
	n := 0
	for _, id := range s.ids {
		if s.timers.IsPending(id) {
			n++
		}
	}
	return n
}
