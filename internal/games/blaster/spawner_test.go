package blaster

import (
	"testing"

	"github.com/vovakirdan/tui-blaster/internal/config"
)

func TestSpawnObstacles(t *testing.T) {
	cfg := config.DefaultBlasterConfig()

	tests := []struct {
		level   int
		count   int
		speed   float64
		draws   []float64
		firstXY [2]float64
	}{
		{level: 1, count: 4, speed: 3, draws: []float64{0, 0}, firstXY: [2]float64{0, 0}},
		{level: 2, count: 5, speed: 4, draws: []float64{0.5, 0.5}, firstXY: [2]float64{375, 275}},
		{level: 7, count: 10, speed: 9, draws: []float64{1, 1}, firstXY: [2]float64{750, 550}},
	}

	for _, tc := range tests {
		rng := &scriptedRand{vals: tc.draws}
		sp := NewSpawner(rng, &cfg)

		batch := sp.SpawnObstacles(tc.level)
		if len(batch) != tc.count {
			t.Errorf("level %d: %d obstacles, expected %d", tc.level, len(batch), tc.count)
			continue
		}
		if rng.calls != 2*tc.count {
			t.Errorf("level %d: %d draws, expected %d", tc.level, rng.calls, 2*tc.count)
		}

		first := batch[0]
		if first.X != tc.firstXY[0] || first.Y != tc.firstXY[1] {
			t.Errorf("level %d: first at (%v,%v), expected %v", tc.level, first.X, first.Y, tc.firstXY)
		}
		for _, o := range batch {
			if o.DX != tc.speed {
				t.Errorf("level %d: dx = %v, expected %v", tc.level, o.DX, tc.speed)
			}
			if o.W != 50 || o.H != 50 {
				t.Errorf("level %d: size %vx%v, expected 50x50", tc.level, o.W, o.H)
			}
		}
	}
}

func TestSpawnObstaclesWithinBounds(t *testing.T) {
	cfg := config.DefaultBlasterConfig()
	sp := NewSpawner(NewRand(999), &cfg)

	for level := 1; level <= 20; level++ {
		for _, o := range sp.SpawnObstacles(level) {
			if o.X < 0 || o.X+o.W > cfg.Playfield.Width || o.Y < 0 || o.Y+o.H > cfg.Playfield.Height {
				t.Fatalf("level %d: obstacle outside playfield at (%v,%v)", level, o.X, o.Y)
			}
		}
	}
}

func TestSpawnObstaclesEmptyBatch(t *testing.T) {
	cfg := config.DefaultBlasterConfig()
	cfg.Obstacles.ExtraPerBatch = -5
	rng := &scriptedRand{}
	sp := NewSpawner(rng, &cfg)

	if batch := sp.SpawnObstacles(1); len(batch) != 0 {
		t.Errorf("got %d obstacles, expected none", len(batch))
	}
	if rng.calls != 0 {
		t.Errorf("empty batch consumed %d draws", rng.calls)
	}
}

func TestMaybeSpawnPowerUp(t *testing.T) {
	cfg := config.DefaultBlasterConfig()

	tests := []struct {
		name     string
		count    int
		draws    []float64
		spawned  bool
		kind     PowerUpType
		calls    int
		position [2]float64
	}{
		{
			name:    "at cap consumes no draws",
			count:   3,
			draws:   []float64{0},
			spawned: false,
			calls:   0,
		},
		{
			name:    "roll misses",
			count:   0,
			draws:   []float64{0.01},
			spawned: false,
			calls:   1,
		},
		{
			name:     "speed",
			count:    2,
			draws:    []float64{0.005, 0.5, 0.25, 0.3},
			spawned:  true,
			kind:     PowerUpSpeed,
			calls:    4,
			position: [2]float64{390, 145},
		},
		{
			name:     "health",
			count:    0,
			draws:    []float64{0, 0, 1, 0.5},
			spawned:  true,
			kind:     PowerUpHealth,
			calls:    4,
			position: [2]float64{0, 580},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRand{vals: tc.draws}
			sp := NewSpawner(rng, &cfg)

			p, ok := sp.MaybeSpawnPowerUp(tc.count, 1234)
			if ok != tc.spawned {
				t.Fatalf("spawned = %v, expected %v", ok, tc.spawned)
			}
			if rng.calls != tc.calls {
				t.Errorf("draws = %d, expected %d", rng.calls, tc.calls)
			}
			if !ok {
				return
			}
			if p.Type != tc.kind {
				t.Errorf("type = %v, expected %v", p.Type, tc.kind)
			}
			if p.X != tc.position[0] || p.Y != tc.position[1] {
				t.Errorf("position (%v,%v), expected %v", p.X, p.Y, tc.position)
			}
			if p.SpawnTime != 1234 {
				t.Errorf("spawn time = %d, expected 1234", p.SpawnTime)
			}
			if p.W != 20 || p.H != 20 {
				t.Errorf("size %vx%v, expected 20x20", p.W, p.H)
			}
		})
	}
}

func TestPowerUpTypeString(t *testing.T) {
	if PowerUpSpeed.String() != "speed" || PowerUpHealth.String() != "health" {
		t.Errorf("unexpected names %q %q", PowerUpSpeed, PowerUpHealth)
	}
	if PowerUpType(9).String() != "unknown" {
		t.Errorf("unexpected name for invalid type")
	}
}
