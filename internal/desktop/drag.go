package desktop

import (
	"math"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// DefaultDragThreshold is the pointer travel (Euclidean, in cells) above which
// a press becomes a drag instead of a click.
const DefaultDragThreshold = 5.0

// Policy constrains a drag offset.
type Policy interface {
	Constrain(off core.Point) core.Point
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(core.Point) core.Point

func (f PolicyFunc) Constrain(off core.Point) core.Point { return f(off) }

// Unclamped lets the target move anywhere. Desktop icons use it.
var Unclamped Policy = PolicyFunc(func(off core.Point) core.Point { return off })

// ClampCentered bounds the offset of a centered window so that it stays margin
// cells inside the surface. The max is applied last, so when the window is
// larger than the surface the lower bound wins.
func ClampCentered(off core.Point, surfaceW, surfaceH, winW, winH, margin int) core.Point {
	maxX := surfaceW/2 - winW/2 - margin
	maxY := surfaceH/2 - winH/2 - margin
	return core.Point{
		X: max(-maxX, min(maxX, off.X)),
		Y: max(-maxY, min(maxY, off.Y)),
	}
}

// Outcome classifies a finished press.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeClick
	OutcomeDrag
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClick:
		return "click"
	case OutcomeDrag:
		return "drag"
	default:
		return "none"
	}
}

type dragSession struct {
	origin       core.Point
	originOffset core.Point
	current      core.Point
	crossed      bool
}

// Draggable moves a target by a pointer held on its handle. A session lives
// only between Press and Release.
type Draggable struct {
	offset    core.Point
	policy    Policy
	threshold float64
	session   *dragSession

	// OnClick runs when a press is released without crossing the threshold.
	OnClick func()
}

// NewDraggable returns a controller with the given policy and threshold.
func NewDraggable(policy Policy, threshold float64) *Draggable {
	if policy == nil {
		policy = Unclamped
	}
	if threshold < 0 {
		threshold = 0
	}
	return &Draggable{policy: policy, threshold: threshold}
}

// Offset returns the resting offset.
func (d *Draggable) Offset() core.Point {
	if d.session != nil && d.session.crossed {
		return d.session.current
	}
	return d.offset
}

// SetThreshold changes the click/drag boundary for later presses.
func (d *Draggable) SetThreshold(t float64) {
	d.threshold = max(0, t)
}

// Active reports whether a press is in progress.
func (d *Draggable) Active() bool {
	return d.session != nil
}

// Dragging reports whether the current press has crossed the threshold.
func (d *Draggable) Dragging() bool {
	return d.session != nil && d.session.crossed
}

// Press starts a session at the pointer position.
func (d *Draggable) Press(p core.Point) {
	d.session = &dragSession{
		origin:       p,
		originOffset: d.offset,
		current:      d.offset,
	}
}

// Move updates the session. The offset only follows the pointer once the
// travel exceeds the threshold; it returns true when the offset changed.
func (d *Draggable) Move(p core.Point) bool {
	s := d.session
	if s == nil {
		return false
	}
	if !s.crossed {
		delta := p.Sub(s.origin)
		if math.Hypot(float64(delta.X), float64(delta.Y)) <= d.threshold {
			return false
		}
		s.crossed = true
	}
	next := d.policy.Constrain(s.originOffset.Add(p.Sub(s.origin)))
	if next == s.current {
		return false
	}
	s.current = next
	return true
}

// Release ends the session. A press that never crossed the threshold is a
// click and runs OnClick; otherwise the dragged offset becomes the resting one.
func (d *Draggable) Release(p core.Point) Outcome {
	s := d.session
	if s == nil {
		return OutcomeNone
	}
	d.Move(p)
	d.session = nil
	if s.crossed {
		d.offset = s.current
		return OutcomeDrag
	}
	if d.OnClick != nil {
		d.OnClick()
	}
	return OutcomeClick
}

// Cancel drops the session without click or move.
func (d *Draggable) Cancel() {
	d.session = nil
}

// Reset puts the target back at its anchor.
func (d *Draggable) Reset() {
	d.session = nil
	d.offset = core.Point{}
}
