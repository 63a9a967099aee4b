package blaster

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . Audio

// Audio is the background music collaborator.
// Calls are fire-and-forget signals; the session never waits on them.
type Audio interface {
	Play()
	Pause()
	Rewind()
}

// nopAudio is used when no audio collaborator is attached.
type nopAudio struct{}

func (nopAudio) Play()   {}
func (nopAudio) Pause()  {}
func (nopAudio) Rewind() {}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseActive   Phase = iota // Simulation advancing
	PhaseGameOver              // Health exhausted, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "active"
}

// Session owns all mutable state of one game: the player, every entity
// collection, score, level, and flags. It is driven by a single goroutine;
// input commands and Step must not be called concurrently.
type Session struct {
	cfg     config.BlasterConfig
	spawner *Spawner
	audio   Audio
	logger  *log.Logger

	player    Player
	bullets   []Bullet
	obstacles []Obstacle
	powerUps  []PowerUp

	score         int
	level         int
	bulletSpeed   float64
	gameOver      bool
	cooldownUntil int64 // Fire is allowed once now >= cooldownUntil
}

// SessionOption configures optional collaborators.
type SessionOption func(*Session)

// WithAudio attaches the background music collaborator.
func WithAudio(a Audio) SessionOption {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger attaches a logger for gameplay events (debug level).
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session. Call Start to enter the active phase.
func NewSession(cfg config.BlasterConfig, rng RandSource, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg,
		audio:  nopAudio{},
		logger: log.New(io.Discard),
	}
	s.spawner = NewSpawner(rng, &s.cfg)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resets every piece of session state, spawns the first obstacle
// batch and starts the music. The fire cooldown is left untouched.
func (s *Session) Start() {
	s.resetPlayer()
	s.player.Health = s.cfg.Player.StartHealth

	s.bullets = nil
	s.powerUps = nil
	s.score = 0
	s.level = 1
	s.bulletSpeed = s.cfg.Bullets.InitialSpeed
	s.gameOver = false
	s.obstacles = s.spawner.SpawnObstacles(s.level)

	s.audio.Play()
	s.logger.Debug("session started", "obstacles", len(s.obstacles))
}

// Restart begins a new game from the game-over phase.
// Returns false (and does nothing) while the game is still active.
func (s *Session) Restart() bool {
	if !s.gameOver {
		return false
	}
	s.audio.Rewind()
	s.Start()
	return true
}

// resetPlayer puts the player back at the spawn point.
func (s *Session) resetPlayer() {
	s.player.X = s.cfg.Player.X
	s.player.W = s.cfg.Player.Width
	s.player.H = s.cfg.Player.Height
	s.player.Speed = s.cfg.Player.Speed
	s.player.Y = core.ClampF(s.cfg.Playfield.Height/2-s.cfg.Player.SpawnOffset, 0, s.maxPlayerY())
}

// MoveUp moves the player up by one step, stopping at the top edge.
func (s *Session) MoveUp() {
	s.player.Y = core.ClampF(s.player.Y-s.player.Speed, 0, s.maxPlayerY())
}

// MoveDown moves the player down by one step, stopping at the bottom edge.
func (s *Session) MoveDown() {
	s.player.Y = core.ClampF(s.player.Y+s.player.Speed, 0, s.maxPlayerY())
}

// maxPlayerY is the lowest row the player's top edge may reach.
func (s *Session) maxPlayerY() float64 {
	return s.cfg.Playfield.Height - s.player.H
}

// CanFire reports whether Fire would succeed at time now.
func (s *Session) CanFire(now int64) bool {
	return !s.gameOver && now >= s.cooldownUntil
}

// Fire launches a bullet from the player's right edge and starts the cooldown.
// It is a no-op during the cooldown or after game over.
func (s *Session) Fire(now int64) bool {
	if !s.CanFire(now) {
		return false
	}

	h := s.cfg.Bullets.Height
	s.bullets = append(s.bullets, Bullet{
		X: s.player.X + s.player.W,
		Y: s.player.Y + s.player.H/2 - math.Floor(h/2),
		W: s.cfg.Bullets.Width,
		H: h,
	})
	s.cooldownUntil = now + s.cfg.Bullets.CooldownMs
	return true
}

// Step advances the simulation one tick. now is the session clock in
// milliseconds and must not decrease between calls. Phases run in a fixed
// order because later ones read what earlier ones changed.
func (s *Session) Step(now int64) {
	if s.gameOver {
		return
	}

	s.moveObstacles()
	s.moveBullets()
	s.resolveBulletHits()

	if s.resolvePlayerHit() {
		return
	}

	// Clearing the field advances the level, even if a player hit
	// already advanced it this tick.
	if len(s.obstacles) == 0 {
		s.nextLevel("cleared")
	}

	s.collectPowerUps()
	s.expirePowerUps(now)

	if p, ok := s.spawner.MaybeSpawnPowerUp(len(s.powerUps), now); ok {
		s.powerUps = append(s.powerUps, p)
	}
}

// moveObstacles drifts obstacles and flips direction at the edges.
// Positions are not clamped, so an obstacle can overshoot for one tick.
func (s *Session) moveObstacles() {
	w := s.cfg.Playfield.Width
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X += o.DX
		if o.X <= 0 || o.X+o.W >= w {
			o.DX = -o.DX
		}
	}
}

// moveBullets advances every bullet by the current shared speed.
func (s *Session) moveBullets() {
	for i := range s.bullets {
		s.bullets[i].X += s.bulletSpeed
	}
}

// resolveBulletHits removes each bullet that touches an obstacle together
// with every obstacle it touches, and drops bullets past the right edge.
func (s *Session) resolveBulletHits() {
	w := s.cfg.Playfield.Width
	points := s.cfg.Scoring.ObstaclePoints

	liveBullets := s.bullets[:0]
	for _, b := range s.bullets {
		box := b.Box()
		hit := false

		remaining := s.obstacles[:0]
		for _, o := range s.obstacles {
			if box.Overlaps(o.Box()) {
				hit = true
				s.score += points
				continue
			}
			remaining = append(remaining, o)
		}
		s.obstacles = remaining

		if hit || b.X > w {
			continue
		}
		liveBullets = append(liveBullets, b)
	}
	s.bullets = liveBullets
}

// resolvePlayerHit costs one health if the player touches any obstacle.
// Returns true when that ends the game.
func (s *Session) resolvePlayerHit() bool {
	pbox := s.player.Box()
	hit := false
	for _, o := range s.obstacles {
		if pbox.Overlaps(o.Box()) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	s.player.Health = max(0, s.player.Health-1)
	if s.player.Health == 0 {
		s.gameOver = true
		s.audio.Pause()
		s.logger.Info("game over", "score", s.score, "level", s.level)
		return true
	}

	s.logger.Debug("player hit", "health", s.player.Health)
	s.resetPlayer()
	s.nextLevel("survived collision")
	return false
}

// nextLevel increments the level and replaces the field with a fresh batch.
func (s *Session) nextLevel(reason string) {
	s.level++
	s.obstacles = s.spawner.SpawnObstacles(s.level)
	s.logger.Debug("level up", "level", s.level, "reason", reason, "obstacles", len(s.obstacles))
}

// collectPowerUps applies and removes every power-up the player touches.
func (s *Session) collectPowerUps() {
	pbox := s.player.Box()

	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if pbox.Overlaps(p.Box()) {
			s.applyPowerUp(p.Type)
			continue
		}
		kept = append(kept, p)
	}
	s.powerUps = kept
}

// applyPowerUp applies a pickup effect, capped at the configured maximums.
func (s *Session) applyPowerUp(t PowerUpType) {
	switch t {
	case PowerUpSpeed:
		s.bulletSpeed = math.Min(s.bulletSpeed+s.cfg.PowerUps.SpeedBoost, s.cfg.Bullets.MaxSpeed)
		s.logger.Debug("speed power-up collected", "bullet_speed", s.bulletSpeed)
	case PowerUpHealth:
		s.player.Health = min(s.player.Health+s.cfg.PowerUps.HealthBoost, s.cfg.Player.MaxHealth)
		s.logger.Debug("health power-up collected", "health", s.player.Health)
	}
}

// expirePowerUps drops power-ups that reached their lifetime.
func (s *Session) expirePowerUps(now int64) {
	lifetime := s.cfg.PowerUps.LifetimeMs

	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Age(now) < lifetime {
			kept = append(kept, p)
		}
	}
	s.powerUps = kept
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	if s.gameOver {
		return PhaseGameOver
	}
	return PhaseActive
}

// GameOver reports whether health is exhausted.
func (s *Session) GameOver() bool { return s.gameOver }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level (1-based).
func (s *Session) Level() int { return s.level }

// BulletSpeed returns the speed shared by all live bullets.
func (s *Session) BulletSpeed() float64 { return s.bulletSpeed }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Bullets returns the live bullets in firing order. Callers must not modify it.
func (s *Session) Bullets() []Bullet { return s.bullets }

// Obstacles returns the live obstacles. Callers must not modify it.
func (s *Session) Obstacles() []Obstacle { return s.obstacles }

// PowerUps returns the live power-ups. Callers must not modify it.
func (s *Session) PowerUps() []PowerUp { return s.powerUps }

// Config returns the tuning the session runs with.
func (s *Session) Config() config.BlasterConfig { return s.cfg }
