package desktop

import (
	"testing"

	"github.com/vovakirdan/tui-fenetres/internal/core"
)

func TestDraggableClickWithinThreshold(t *testing.T) {
	tests := []struct {
		name string
		to   core.Point
	}{
		{"no movement", core.Point{X: 10, Y: 10}},
		{"small move", core.Point{X: 13, Y: 14}},     // distance 5
		{"back to origin", core.Point{X: 10, Y: 10}}, // wiggle below
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicks := 0
			d := NewDraggable(Unclamped, 5)
			d.OnClick = func() { clicks++ }

			d.Press(core.Point{X: 10, Y: 10})
			d.Move(core.Point{X: 12, Y: 11})
			got := d.Release(tt.to)

			if got != OutcomeClick {
				t.Errorf("outcome = %v, want click", got)
			}
			if clicks != 1 {
				t.Errorf("clicks = %d, want 1", clicks)
			}
			if d.Offset() != (core.Point{}) {
				t.Errorf("offset moved to %+v on a click", d.Offset())
			}
		})
	}
}

func TestDraggableDragBeyondThreshold(t *testing.T) {
	clicks := 0
	d := NewDraggable(Unclamped, 5)
	d.OnClick = func() { clicks++ }

	d.Press(core.Point{X: 0, Y: 0})
	if d.Move(core.Point{X: 3, Y: 0}) {
		t.Error("offset changed below threshold")
	}
	if !d.Move(core.Point{X: 6, Y: 0}) {
		t.Error("offset did not follow pointer past threshold")
	}
	if !d.Dragging() {
		t.Error("expected drag in progress")
	}
	if got := d.Release(core.Point{X: 8, Y: 2}); got != OutcomeDrag {
		t.Errorf("outcome = %v, want drag", got)
	}
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 after a drag", clicks)
	}
	if want := (core.Point{X: 8, Y: 2}); d.Offset() != want {
		t.Errorf("offset = %+v, want %+v", d.Offset(), want)
	}

	// A second drag starts from the resting offset.
	d.Press(core.Point{X: 20, Y: 20})
	d.Release(core.Point{X: 10, Y: 20})
	if want := (core.Point{X: -2, Y: 2}); d.Offset() != want {
		t.Errorf("offset after second drag = %+v, want %+v", d.Offset(), want)
	}
}

func TestDraggableEuclideanDistance(t *testing.T) {
	d := NewDraggable(Unclamped, 5)
	d.Press(core.Point{})
	// 4 by 4 is below 5 on each axis but 5.66 apart.
	if got := d.Release(core.Point{X: 4, Y: 4}); got != OutcomeDrag {
		t.Errorf("outcome = %v, want drag", got)
	}
}

func TestDraggableReleaseWithoutPress(t *testing.T) {
	d := NewDraggable(nil, 1)
	if got := d.Release(core.Point{X: 3}); got != OutcomeNone {
		t.Errorf("outcome = %v, want none", got)
	}
}

func TestClampCentered(t *testing.T) {
	tests := []struct {
		name string
		off  core.Point
		want core.Point
	}{
		{"inside", core.Point{X: 3, Y: -2}, core.Point{X: 3, Y: -2}},
		{"right edge", core.Point{X: 100, Y: 0}, core.Point{X: 19, Y: 0}},
		{"left edge", core.Point{X: -100, Y: 0}, core.Point{X: -19, Y: 0}},
		{"bottom edge", core.Point{X: 0, Y: 100}, core.Point{X: 0, Y: 4}},
		{"top edge", core.Point{X: 0, Y: -100}, core.Point{X: 0, Y: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// surface 80x20, window 40x10, margin 1
			got := ClampCentered(tt.off, 80, 20, 40, 10, 1)
			if got != tt.want {
				t.Errorf("ClampCentered(%+v) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestClampCenteredOversizedWindow(t *testing.T) {
	// Window wider than the surface: bounds invert and the lower one wins.
	got := ClampCentered(core.Point{X: 0}, 20, 20, 40, 10, 0)
	if got.X != 10 {
		t.Errorf("X = %d, want 10", got.X)
	}
}
