package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blaster/internal/audio"
	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/games/blaster"
	"github.com/vovakirdan/tui-blaster/internal/platform/tui"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAudio      bool
	flagVolume     float64
	flagLogFile    string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Blaster",
	Long: `Start a game of Blaster in this terminal.

Controls:
  Up/W       - Move up
  Down/S     - Move down
  Space      - Fire
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Power-ups appear more often and last longer
  normal - Default tuning
  hard   - Power-ups are rare and short-lived

Examples:
  blaster play
  blaster play --difficulty easy
  blaster play --audio --volume -1
  blaster play --config ./my-blaster.yaml
  blaster play --log-file blaster.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagAudio, "audio", false, "Play background music")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Music volume in halvings (-1 is half, -10 mutes)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug events (power-ups, level changes)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}

	// Fail before the alt screen takes over if the custom config is broken
	if flagConfig != "" {
		if _, err := config.LoadBlaster(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	blaster.SetConfigPath(flagConfig)
	blaster.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := newPlayLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := blaster.New()

	// Without Open the music only tracks its state
	music := audio.NewMusic(flagVolume)
	if flagAudio {
		if err := music.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			logger.Warn("audio disabled", "error", err)
		}
	}
	defer music.Close()
	game.AttachAudio(music)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newPlayLogger writes to path when set and discards otherwise.
func newPlayLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blaster",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
