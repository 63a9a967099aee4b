package blaster

import (
	"math/rand"

	"github.com/vovakirdan/tui-blaster/internal/config"
)

// RandSource supplies uniform draws in [0, 1).
// *rand.Rand satisfies it; tests substitute scripted sequences.
type RandSource interface {
	Float64() float64
}

// NewRand returns a seeded source for deterministic gameplay.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Spawner creates obstacle batches and power-ups inside the playfield.
type Spawner struct {
	rng RandSource
	cfg *config.BlasterConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandSource, cfg *config.BlasterConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// BatchSize returns how many obstacles a batch for level contains.
func (s *Spawner) BatchSize(level int) int {
	return level + s.cfg.Obstacles.ExtraPerBatch
}

// SpawnObstacles produces a batch for level at random positions.
// Every obstacle starts moving right at BaseSpeed+level.
func (s *Spawner) SpawnObstacles(level int) []Obstacle {
	size := s.cfg.Obstacles.Size
	n := s.BatchSize(level)
	if n <= 0 {
		return nil
	}

	batch := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		x := s.rng.Float64() * (s.cfg.Playfield.Width - size)
		y := s.rng.Float64() * (s.cfg.Playfield.Height - size)
		batch = append(batch, Obstacle{
			X:  x,
			Y:  y,
			W:  size,
			H:  size,
			DX: s.cfg.Obstacles.BaseSpeed + float64(level),
		})
	}
	return batch
}

// MaybeSpawnPowerUp rolls once per tick for a new power-up.
// No draw is consumed when count is already at the cap.
func (s *Spawner) MaybeSpawnPowerUp(count int, now int64) (PowerUp, bool) {
	if count >= s.cfg.PowerUps.MaxActive {
		return PowerUp{}, false
	}
	if s.rng.Float64() >= s.cfg.PowerUps.SpawnChance {
		return PowerUp{}, false
	}

	size := s.cfg.PowerUps.Size
	x := s.rng.Float64() * (s.cfg.Playfield.Width - size)
	y := s.rng.Float64() * (s.cfg.Playfield.Height - size)

	kind := PowerUpHealth
	if s.rng.Float64() < 0.5 {
		kind = PowerUpSpeed
	}

	return PowerUp{
		X:         x,
		Y:         y,
		W:         size,
		H:         size,
		Type:      kind,
		SpawnTime: now,
	}, true
}
