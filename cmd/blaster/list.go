package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blaster/internal/registry"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in this build with how often each was played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	writeGameTable(os.Stdout, games, loadStats(), maxIDLen)
	fmt.Println()
	fmt.Println("Run 'blaster play' to start.")
}

// writeGameTable prints one row per game with its play count and best score.
func writeGameTable(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats, idWidth int) {
	fmt.Fprintf(w, "  %-*s  %-10s  %6s  %6s\n", idWidth, "ID", "Title", "Played", "Best")
	fmt.Fprintf(w, "  %-*s  %-10s  %6s  %6s\n", idWidth, "--", "-----", "------", "----")
	for _, g := range games {
		played, best := 0, 0
		if st, ok := stats[g.ID]; ok {
			played, best = st.GamesCount, st.HighScore
		}
		fmt.Fprintf(w, "  %-*s  %-10s  %6d  %6d\n", idWidth, g.ID, g.Title, played, best)
	}
}

// loadStats returns per-game stats, or nil when the database is unavailable.
func loadStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return nil
	}
	return stats
}
