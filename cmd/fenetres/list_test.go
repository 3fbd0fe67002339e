package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fenetres/internal/registry"
	"github.com/vovakirdan/tui-fenetres/internal/storage"
)

func TestWriteGameList(t *testing.T) {
	games := []registry.GameInfo{{ID: "snake", Title: "Snake"}}

	var buf bytes.Buffer
	if err := writeGameList(&buf, games, nil); err != nil {
		t.Fatalf("writeGameList: %v", err)
	}
	if !strings.Contains(buf.String(), "snake  Snake  -") {
		t.Errorf("without a store the record should be '-', got:\n%s", buf.String())
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, s := range []int{40, 90} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	buf.Reset()
	if err := writeGameList(&buf, games, store); err != nil {
		t.Fatalf("writeGameList: %v", err)
	}
	if !strings.Contains(buf.String(), "90 (2 played)") {
		t.Errorf("record line missing, got:\n%s", buf.String())
	}

	buf.Reset()
	if err := writeGameList(&buf, nil, store); err != nil {
		t.Fatalf("writeGameList: %v", err)
	}
	if !strings.Contains(buf.String(), "No games") {
		t.Errorf("empty list should say so, got %q", buf.String())
	}
}

func TestKnownGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SaveScore("snake-classic", 10); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	tests := []struct {
		id   string
		want bool
	}{
		{"snake", true},
		{"snake-classic", true},
		{"pong", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := knownGame(store, tt.id)
			if err != nil {
				t.Fatalf("knownGame: %v", err)
			}
			if got != tt.want {
				t.Errorf("knownGame(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
