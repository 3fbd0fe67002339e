// Package config provides YAML-based configuration loading for fenetres:
// snake rules, desktop tuning, popup delays, storage and logging.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Snake   SnakeConfig   `yaml:"snake"`
	Desktop DesktopConfig `yaml:"desktop"`
	Popups  PopupsConfig  `yaml:"popups"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// SnakeConfig defines the Snake rules.
type SnakeConfig struct {
	GridSize      int      `yaml:"grid_size"`
	Tick          Duration `yaml:"tick"`
	PointsPerFood int      `yaml:"points_per_food"`
	RerollFood    bool     `yaml:"reroll_food"` // place food only on free cells
	StartX        int      `yaml:"start_x"`
	StartY        int      `yaml:"start_y"`
}

// DesktopConfig tunes the window system.
type DesktopConfig struct {
	DragThreshold float64  `yaml:"drag_threshold"` // cells
	ClampMargin   int      `yaml:"clamp_margin"`   // cells kept between a window and the surface edge
	TaskbarHeight int      `yaml:"taskbar_height"`
	ClockFormat   string   `yaml:"clock_format"` // Go time layout
	ClockRefresh  Duration `yaml:"clock_refresh"`
}

// PopupsConfig holds the delays of the nag windows after login.
type PopupsConfig struct {
	Update     Duration `yaml:"update"`
	Activation Duration `yaml:"activation"`
	Office     Duration `yaml:"office"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means ~/.fenetres/scores.db
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means ~/.fenetres/fenetres.log
}

// SSHConfig configures the remote server.
type SSHConfig struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	HostKeyDir string   `yaml:"host_key_dir"`
	MaxIdle    Duration `yaml:"max_idle"`
}

// Duration is a time.Duration written as a Go duration string in YAML.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML parses strings like "200ms" or "2s".
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
