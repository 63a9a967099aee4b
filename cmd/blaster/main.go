// blaster is a side-view arcade shooter that runs in the terminal.
//
// Usage:
//
//	blaster play             - Play locally
//	blaster serve            - Start SSH server for remote play
//	blaster scores [game]    - Show high scores
//	blaster list             - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blaster/internal/games/blaster"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blaster",
	Short: "Blaster - a terminal arcade shooter",
	Long: `Blaster is a side-view arcade shooter for the terminal.

Fly along the left edge, shoot the drifting obstacles, and grab
speed and health power-ups before they vanish.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games

Examples:
  blaster play
  blaster play --difficulty hard --audio
  blaster serve --ssh :2222
  blaster scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
