package desktop

import (
	"sort"
	"time"
)

// TimerID identifies a one-shot timer. Ids are never reused.
type TimerID uint64

// TimerRequest asks the host to call Fire(ID) after Delay.
type TimerRequest struct {
	ID    TimerID
	Delay time.Duration
}

// Timers is a table of one-shot callbacks. It does not keep time itself: the
// host drains new requests, waits, and calls Fire. Firing an id that was
// canceled or already fired does nothing.
type Timers struct {
	next    TimerID
	pending map[TimerID]func()
	armed   []TimerRequest
}

// NewTimers returns an empty table.
func NewTimers() *Timers {
	return &Timers{pending: make(map[TimerID]func())}
}

// After arms fn to run once after d.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	t.next++
	id := t.next
	t.pending[id] = fn
	t.armed = append(t.armed, TimerRequest{ID: id, Delay: d})
	return id
}

// Cancel disarms id. It reports whether the timer was still pending.
func (t *Timers) Cancel(id TimerID) bool {
	if _, ok := t.pending[id]; !ok {
		return false
	}
	delete(t.pending, id)
	return true
}

// Fire runs the callback of id if it is still pending.
func (t *Timers) Fire(id TimerID) bool {
	fn, ok := t.pending[id]
	if !ok {
		return false
	}
	delete(t.pending, id)
	if fn != nil {
		fn()
	}
	return true
}

// IsPending reports whether id is armed.
func (t *Timers) IsPending(id TimerID) bool {
	_, ok := t.pending[id]
	return ok
}

// Pending returns the number of armed timers.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// PendingIDs returns the armed ids in creation order.
func (t *Timers) PendingIDs() []TimerID {
	ids := make([]TimerID, 0, len(t.pending))
	for id := range t.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Drain returns the requests armed since the last drain that are still pending.
func (t *Timers) Drain() []TimerRequest {
	if len(t.armed) == 0 {
		return nil
	}
	out := make([]TimerRequest, 0, len(t.armed))
	for _, r := range t.armed {
		if t.IsPending(r.ID) {
			out = append(out, r)
		}
	}
	t.armed = t.armed[:0]
	return out
}
