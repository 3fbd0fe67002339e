package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/platform/tui"
)

var flagSkipQuiz bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Take the quiz, then explore the fake desktop",
	Long: `Start a local session: the quiz, then the login screen of the fake desktop.

Controls:
  Mouse        - Click, drag windows and icons, right-click for the menu
  Enter        - Validate / default button of the focused window
  Esc          - Close the focused window or menu
  Arrows       - Steer the snake
  F11          - Toggle fullscreen
  Ctrl+C       - Quit

Examples:
  fenetres run
  fenetres run --skip-quiz
  fenetres run --config ./configs/fenetres.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	runCmd.Flags().BoolVar(&flagSkipQuiz, "skip-quiz", false, "Go straight to the login screen")
}

func runSession(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile := newFileLogger(cfg)
	defer logFile.Close()

	store, err := content.Load("")
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	scores := openStore(cfg, logger)
	defer closeStore(scores, logger)

	width, height := terminalSize()
	opts := tui.AppOptions{
		Content:  store,
		Config:   cfg,
		Logger:   logger,
		SkipQuiz: flagSkipQuiz,
		Seed:     flagSeed,
		Width:    width,
		Height:   height,
	}
	if scores != nil {
		opts.Store = scores
	}

	logger.Info("session started", "skip_quiz", flagSkipQuiz)
	if err := tui.RunApp(opts); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	logger.Info("session ended")
	return nil
}
