package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()

	// A user or local config may exist on the machine; only check when absent.
	if _, err := os.Stat("configs/fenetres.yaml"); err == nil {
		t.Skip("local config present")
	}
	if p := UserPath("config.yaml"); p != "" {
		if _, err := os.Stat(p); err == nil {
			t.Skip("user config present")
		}
	}

	if cfg.Snake != def.Snake {
		t.Errorf("snake = %+v, want %+v", cfg.Snake, def.Snake)
	}
	if cfg.Popups != def.Popups {
		t.Errorf("popups = %+v, want %+v", cfg.Popups, def.Popups)
	}
	if cfg.Desktop != def.Desktop {
		t.Errorf("desktop = %+v, want %+v", cfg.Desktop, def.Desktop)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("snake:\n  tick: 150ms\n  reroll_food: true\npopups:\n  update: 1s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Snake.Tick.D() != 150*time.Millisecond {
		t.Errorf("tick = %v, want 150ms", cfg.Snake.Tick)
	}
	if !cfg.Snake.RerollFood {
		t.Error("reroll_food not applied")
	}
	if cfg.Popups.Update.D() != time.Second {
		t.Errorf("update delay = %v, want 1s", cfg.Popups.Update)
	}
	// Unset fields keep defaults.
	if cfg.Popups.Office.D() != 8*time.Second {
		t.Errorf("office delay = %v, want 8s", cfg.Popups.Office)
	}
	if cfg.Snake.GridSize != 20 {
		t.Errorf("grid size = %d, want 20", cfg.Snake.GridSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  tick: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snake.GridSize = 2
	cfg.Snake.Tick = Duration(time.Millisecond)
	cfg.Desktop.DragThreshold = -3
	cfg.Popups.Activation = 0
	cfg.SSH.Port = 70000

	fixed := cfg.Validate()

	def := DefaultConfig()
	if cfg.Snake.GridSize != def.Snake.GridSize {
		t.Errorf("grid size = %d", cfg.Snake.GridSize)
	}
	if cfg.Snake.Tick != def.Snake.Tick {
		t.Errorf("tick = %v", cfg.Snake.Tick)
	}
	if cfg.Desktop.DragThreshold != def.Desktop.DragThreshold {
		t.Errorf("drag threshold = %v", cfg.Desktop.DragThreshold)
	}
	if cfg.Popups.Activation != def.Popups.Activation {
		t.Errorf("activation = %v", cfg.Popups.Activation)
	}
	if cfg.SSH.Port != def.SSH.Port {
		t.Errorf("port = %d", cfg.SSH.Port)
	}
	if len(fixed) != 5 {
		t.Errorf("fixed = %v, want 5 entries", fixed)
	}
}

func TestSnakePresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   time.Duration
	}{
		{DifficultyEasy, 300 * time.Millisecond},
		{DifficultyNormal, 200 * time.Millisecond},
		{DifficultyHard, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig().Snake
			ApplySnakePreset(&cfg, tt.preset)
			if cfg.Tick.D() != tt.want {
				t.Errorf("tick = %v, want %v", cfg.Tick, tt.want)
			}
		})
	}

	if ParseDifficulty("nightmare") != DifficultyNormal {
		t.Error("unknown preset should map to normal")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Log.Level = tt.in
			if got := cfg.LogLevel(); got != tt.want {
				t.Errorf("LogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
