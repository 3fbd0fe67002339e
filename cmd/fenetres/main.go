// fenetres is a terminal tour of a proprietary desktop: a short quiz about
// digital sovereignty, then a fake Windows session ending in a game of Snake.
//
// Usage:
//
//	fenetres                 - Quiz, then the fake desktop
//	fenetres run --skip-quiz - Straight to the login screen
//	fenetres play snake      - Snake full-screen, outside the desktop
//	fenetres scores [game]   - Show high scores (--interactive for a table)
//	fenetres serve           - Start SSH server for remote sessions
//	fenetres list            - List available games
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.fenetres/config.yaml, ./configs/fenetres.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.fenetres/scores.db)
//	--log-file <path>   - Log file (default: ~/.fenetres/fenetres.log)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-fenetres/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fenetres",
	Short: "Fenêtres - a fake Windows desktop in your terminal",
	Long: `Fenêtres starts with a short quiz about digital sovereignty and
ecology, then drops you into a simulated proprietary desktop: login screen,
nagging popups, file explorer, an ad-ridden browser, settings and Snake.

Available commands:
  run      - Quiz, then the desktop (default)
  play     - Play a game full-screen
  scores   - View high scores and quiz results
  serve    - Start SSH server for remote sessions
  list     - Show all available games

Examples:
  fenetres
  fenetres run --skip-quiz
  fenetres play snake --difficulty hard
  fenetres serve
  fenetres scores snake --interactive`,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.fenetres/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default ~/.fenetres/fenetres.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagSkipQuiz, "skip-quiz", false, "Go straight to the login screen")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}
