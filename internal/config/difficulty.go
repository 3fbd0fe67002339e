package config

import "time"

// DifficultyPreset represents a named speed level for full-screen Snake.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Unknown values are normal.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ApplySnakePreset scales the Snake tick. Normal keeps the configured tick.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tick = Duration(cfg.Tick.D() * 3 / 2)
	case DifficultyHard:
		cfg.Tick = Duration(max(cfg.Tick.D()/2, 50*time.Millisecond))
	}
}
