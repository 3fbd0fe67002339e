package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fenetres/internal/platform/tui"
	"github.com/vovakirdan/tui-fenetres/internal/registry"
	"github.com/vovakirdan/tui-fenetres/internal/storage"
)

var (
	flagInteractive bool
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and quiz results",
	Long: `Display the top 10 high scores for a game (snake by default) and
a summary of the completed quizzes. Scores kept under an id that is no
longer installed can still be listed or cleared.

Examples:
  fenetres scores
  fenetres scores snake --all
  fenetres scores snake --clear
  fenetres scores --interactive`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded scores of the game")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "all", "clear")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Storage.Enabled {
		return errors.New("storage is disabled in the configuration")
	}
	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	known, err := knownGame(store, gameID)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("unknown game %q, run 'fenetres list' to see available games", gameID)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Printf("Scores of %s cleared.\n", gameID)
		return nil
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, width, height)
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fenetres play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
		if best, err := store.HighScore(gameID); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
	}

	stats, err := store.GetQuizStats()
	if err != nil {
		return fmt.Errorf("retrieve quiz stats: %w", err)
	}
	if stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Quiz: %d runs, %d perfect, %.1f correct answers on average\n",
			stats.Runs, stats.Perfect, stats.AvgCorrect)
	}
	return nil
}

// knownGame accepts installed games and ids that still have stored scores.
func knownGame(store *storage.Store, gameID string) (bool, error) {
	if registry.Exists(gameID) {
		return true, nil
	}
	ids, err := store.GameIDs()
	if err != nil {
		return false, fmt.Errorf("list stored games: %w", err)
	}
	return slices.Contains(ids, gameID), nil
}
