package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fenetres/internal/config"
	"github.com/vovakirdan/tui-fenetres/internal/core"
	"github.com/vovakirdan/tui-fenetres/internal/games/snake"
	"github.com/vovakirdan/tui-fenetres/internal/platform/tui"
	"github.com/vovakirdan/tui-fenetres/internal/registry"
	"github.com/vovakirdan/tui-fenetres/internal/vm"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game full-screen",
	Long: `Start playing the specified game outside the desktop.

Controls:
  Arrows     - Steer
  P          - Pause
  R/Enter    - Replay (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower snake
  normal - Configured speed (200ms per move by default)
  hard   - Twice as fast

Examples:
  fenetres play snake
  fenetres play snake --difficulty hard
  fenetres play snake --config ./my-config.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'fenetres list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile := newFileLogger(cfg)
	defer logFile.Close()

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: core.DefaultConfig().TickRate,
		Seed:     flagSeed,
	}

	var game registry.Game
	switch gameID {
	case "snake":
		config.ApplySnakePreset(&cfg.Snake, config.ParseDifficulty(flagDifficulty))
		rc.TickRate = tickRate(cfg.Snake.Tick.D())
		game = snake.NewWithOptions(vm.SnakeOptions(cfg.Snake))
	default:
		if game, err = registry.Create(gameID); err != nil {
			return err
		}
	}

	store := openStore(cfg, logger)
	defer closeStore(store, logger)

	var saver vm.ScoreSaver
	if store != nil {
		saver = store
	}

	logger.Info("game started", "game", gameID, "tick_rate", rc.TickRate)
	if err := tui.Run(game, saver, logger, rc); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// tickRate converts a move period to ticks per second.
func tickRate(period time.Duration) int {
	if period <= 0 {
		return core.DefaultConfig().TickRate
	}
	return max(1, int(math.Round(float64(time.Second)/float64(period))))
}
