package main

import (
	"testing"
	"time"
)

func TestTickRate(t *testing.T) {
	tests := []struct {
		period time.Duration
		want   int
	}{
		{200 * time.Millisecond, 5},
		{300 * time.Millisecond, 3},
		{100 * time.Millisecond, 10},
		{0, 5},
		{5 * time.Second, 1},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := tickRate(tt.period); got != tt.want {
				t.Errorf("tickRate(%v) = %d, want %d", tt.period, got, tt.want)
			}
		})
	}
}
