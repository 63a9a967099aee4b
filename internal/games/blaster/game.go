// Package blaster implements a side-view arcade shooter.
// The player moves vertically along the left edge and fires bullets at
// obstacles that drift back and forth across the playfield. Speed and
// health power-ups appear at random and expire after a fixed lifetime.
package blaster

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// Game adapts a Session to the platform's frame-driven game interface.
// It owns the simulated clock: every Step advances it by one frame.
type Game struct {
	session *Session
	cfg     config.BlasterConfig
	runtime core.RuntimeConfig
	tick    int64

	// fixed is set when the config was supplied directly and must not be reloaded
	fixed bool

	audio  Audio
	logger *log.Logger
}

// New creates a game that loads its tuning on every Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BlasterConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// AttachAudio sets the music collaborator used by sessions created on Reset.
func (g *Game) AttachAudio(a Audio) {
	g.audio = a
}

// AttachLogger sets the logger used by sessions created on Reset.
func (g *Game) AttachLogger(l *log.Logger) {
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blaster"
}

// Reset builds a fresh session and rewinds the clock to zero.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0

	if !g.fixed {
		cfg, err := config.LoadBlaster(configPath)
		if err != nil {
			cfg = config.DefaultBlasterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyBlasterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.session = NewSession(g.cfg, NewRand(runtime.Seed), WithAudio(g.audio), WithLogger(g.logger))
	g.session.Start()
}

// Now returns the session clock in milliseconds.
func (g *Game) Now() int64 {
	return int64(float64(g.tick) * g.runtime.FrameMillis())
}

// Step applies the frame's commands in order (restart, movement, fire)
// and then advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.Now()

	if in.Has(core.ActionRestart) {
		g.session.Restart()
	}
	if in.Has(core.ActionUp) {
		g.session.MoveUp()
	}
	if in.Has(core.ActionDown) {
		g.session.MoveDown()
	}
	if in.Has(core.ActionFire) {
		g.session.Fire(now)
	}

	g.session.Step(now)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Health:   g.session.Player().Health,
		GameOver: g.session.GameOver(),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register("blaster", func() registry.Game {
		return New()
	})
}
