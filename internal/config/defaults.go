package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fenetres.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Snake: SnakeConfig{
			GridSize:      20,
			Tick:          Duration(200 * time.Millisecond),
			PointsPerFood: 10,
			RerollFood:    false,
			StartX:        10,
			StartY:        10,
		},
		Desktop: DesktopConfig{
			DragThreshold: 1,
			ClampMargin:   1,
			TaskbarHeight: 1,
			ClockFormat:   "15:04",
			ClockRefresh:  Duration(time.Second),
		},
		Popups: PopupsConfig{
			Update:     Duration(2 * time.Second),
			Activation: Duration(5 * time.Second),
			Office:     Duration(8 * time.Second),
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Host:    "0.0.0.0",
			Port:    2222,
			MaxIdle: Duration(30 * time.Minute),
		},
	}
}

// Validate replaces out-of-range values with defaults and reports which
// fields were reset.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var fixed []string

	if c.Snake.GridSize < 5 || c.Snake.GridSize > 60 {
		c.Snake.GridSize = def.Snake.GridSize
		fixed = append(fixed, "snake.grid_size")
	}
	if c.Snake.Tick.D() < 20*time.Millisecond {
		c.Snake.Tick = def.Snake.Tick
		fixed = append(fixed, "snake.tick")
	}
	if c.Snake.PointsPerFood <= 0 {
		c.Snake.PointsPerFood = def.Snake.PointsPerFood
		fixed = append(fixed, "snake.points_per_food")
	}
	if c.Snake.StartX < 0 || c.Snake.StartX >= c.Snake.GridSize ||
		c.Snake.StartY < 0 || c.Snake.StartY >= c.Snake.GridSize {
		c.Snake.StartX = c.Snake.GridSize / 2
		c.Snake.StartY = c.Snake.GridSize / 2
		fixed = append(fixed, "snake.start")
	}

	if c.Desktop.DragThreshold < 0 {
		c.Desktop.DragThreshold = def.Desktop.DragThreshold
		fixed = append(fixed, "desktop.drag_threshold")
	}
	if c.Desktop.ClampMargin < 0 {
		c.Desktop.ClampMargin = def.Desktop.ClampMargin
		fixed = append(fixed, "desktop.clamp_margin")
	}
	if c.Desktop.TaskbarHeight <= 0 {
		c.Desktop.TaskbarHeight = def.Desktop.TaskbarHeight
		fixed = append(fixed, "desktop.taskbar_height")
	}
	if c.Desktop.ClockFormat == "" {
		c.Desktop.ClockFormat = def.Desktop.ClockFormat
		fixed = append(fixed, "desktop.clock_format")
	}
	if c.Desktop.ClockRefresh.D() <= 0 {
		c.Desktop.ClockRefresh = def.Desktop.ClockRefresh
		fixed = append(fixed, "desktop.clock_refresh")
	}

	for _, p := range []struct {
		name string
		d    *Duration
		def  Duration
	}{
		{"popups.update", &c.Popups.Update, def.Popups.Update},
		{"popups.activation", &c.Popups.Activation, def.Popups.Activation},
		{"popups.office", &c.Popups.Office, def.Popups.Office},
	} {
		if p.d.D() <= 0 {
			*p.d = p.def
			fixed = append(fixed, p.name)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.SSH.Port <= 0 || c.SSH.Port > 65535 {
		c.SSH.Port = def.SSH.Port
		fixed = append(fixed, "ssh.port")
	}
	if c.SSH.MaxIdle.D() <= 0 {
		c.SSH.MaxIdle = def.SSH.MaxIdle
	}
	return fixed
}
