package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fenetres/internal/registry"
	"github.com/vovakirdan/tui-fenetres/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games installed on the desktop",
	Long: `Shows the games found on the fake desktop, with the record and the
number of games played when the score database is available.

Each game opens in a window from the desktop ('fenetres run') or
full-screen with 'fenetres play <id>'.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := log.New(io.Discard)
	store := openStore(cfg, logger)
	defer closeStore(store, logger)

	return writeGameList(os.Stdout, registry.List(), store)
}

// writeGameList prints one line per game. store may be nil.
func writeGameList(w io.Writer, games []registry.GameInfo, store *storage.Store) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games on the desktop.")
		return err
	}

	idW, titleW := runewidth.StringWidth("ID"), runewidth.StringWidth("Title")
	for _, g := range games {
		idW = max(idW, runewidth.StringWidth(g.ID))
		titleW = max(titleW, runewidth.StringWidth(g.Title))
	}

	fmt.Fprintln(w, "Games on the desktop:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %s  %s\n", runewidth.FillRight("ID", idW), runewidth.FillRight("Title", titleW), "Record")
	for _, g := range games {
		record := "-"
		if store != nil {
			stats, err := store.GetGameStats(g.ID)
			if err != nil {
				return fmt.Errorf("read stats for %s: %w", g.ID, err)
			}
			if stats.GamesCount > 0 {
				record = fmt.Sprintf("%d (%d played)", stats.HighScore, stats.GamesCount)
			}
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", runewidth.FillRight(g.ID, idW), runewidth.FillRight(g.Title, titleW), record)
	}

	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, "Run 'fenetres' to boot the desktop, or 'fenetres play <id>' for full-screen.")
	return err
}
