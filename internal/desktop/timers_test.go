package desktop

import (
	"testing"
	"time"
)

func TestTimersFireOnce(t *testing.T) {
	tm := NewTimers()
	fired := 0
	id := tm.After(time.Second, func() { fired++ })

	if tm.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", tm.Pending())
	}
	if !tm.Fire(id) {
		t.Error("first fire should run")
	}
	if tm.Fire(id) {
		t.Error("second fire should be ignored")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestTimersCancelIgnoresStaleFire(t *testing.T) {
	tm := NewTimers()
	fired := false
	id := tm.After(time.Second, func() { fired = true })

	if !tm.Cancel(id) {
		t.Error("cancel of a pending timer should report true")
	}
	if tm.Cancel(id) {
		t.Error("second cancel should report false")
	}
	if tm.Fire(id) || fired {
		t.Error("canceled timer fired")
	}
}

func TestTimersDrain(t *testing.T) {
	tm := NewTimers()
	a := tm.After(2*time.Second, nil)
	b := tm.After(5*time.Second, nil)
	tm.Cancel(a)

	reqs := tm.Drain()
	if len(reqs) != 1 || reqs[0].ID != b || reqs[0].Delay != 5*time.Second {
		t.Errorf("Drain = %+v, want only %d", reqs, b)
	}
	if again := tm.Drain(); len(again) != 0 {
		t.Errorf("second Drain = %+v, want empty", again)
	}
	if ids := tm.PendingIDs(); len(ids) != 1 || ids[0] != b {
		t.Errorf("PendingIDs = %v", ids)
	}
}

func TestSchedulerReschedule(t *testing.T) {
	tm := NewTimers()
	s := NewScheduler(tm, nil)
	jobs := func() []Job {
		return []Job{
			{Name: "update", Delay: 2 * time.Second},
			{Name: "activation", Delay: 5 * time.Second},
			{Name: "office", Delay: 8 * time.Second},
		}
	}

	s.Schedule(jobs()...)
	first := tm.PendingIDs()
	s.Schedule(jobs()...)

	if got := s.Pending(); got != 3 {
		t.Errorf("scheduler pending = %d, want 3", got)
	}
	if got := tm.Pending(); got != 3 {
		t.Errorf("table pending = %d, want 3", got)
	}
	for _, id := range first {
		if tm.IsPending(id) {
			t.Errorf("timer %d from the first batch survived", id)
		}
	}
}

func TestSchedulerPendingDropsAfterFire(t *testing.T) {
	tm := NewTimers()
	s := NewScheduler(tm, nil)
	ran := 0
	s.Schedule(Job{Name: "a", Delay: time.Second, Run: func() { ran++ }})

	for _, r := range tm.Drain() {
		tm.Fire(r.ID)
	}
	if ran != 1 || s.Pending() != 0 {
		t.Errorf("ran = %d pending = %d, want 1 and 0", ran, s.Pending())
	}
}
