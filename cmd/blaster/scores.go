package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blaster/internal/platform/tui"
	"github.com/vovakirdan/tui-blaster/internal/registry"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

// plainScoreLimit is how many entries the non-interactive listing prints.
const plainScoreLimit = 10

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the high scores for a game (default: blaster).

In a terminal the scores open in a scrollable table. When the output is
redirected, the top 10 are printed as plain text (--all prints every run).

Examples:
  blaster scores
  blaster scores --db ./scores.db
  blaster scores --all | less
  blaster scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Print every recorded run instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "blaster"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blaster list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := clearScores(os.Stdout, store, gameID, title); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) && !flagAllScores {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, gameID, title, flagAllScores); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// clearScores deletes every run of gameID and reports how many were removed.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d %s scores.\n", stats.GamesCount, title)
	return nil
}

// printScores writes the top entries (or every run when all is set) and
// aggregate stats as plain text.
func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, plainScoreLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'blaster play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-14s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %-14s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %-14s  %s\n",
			i+1, entry.Score, entry.Level, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	highScore, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", highScore)
	fmt.Fprintf(w, "Games: %d  Max level: %d  Average: %.0f\n",
		stats.GamesCount, stats.MaxLevel, stats.AvgScore)
	return nil
}
