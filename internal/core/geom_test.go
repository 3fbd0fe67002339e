package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: -2}

	if got := p.Add(q); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add() = %+v, expected {4 2}", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub() = %+v, expected {2 6}", got)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(2, 3, 10, 6)

	moved := r.Translate(Point{X: -2, Y: 1})
	if moved.X != 0 || moved.Y != 4 || moved.W != 10 || moved.H != 6 {
		t.Errorf("Translate() = %+v", moved)
	}
}
