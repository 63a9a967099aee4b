package blaster

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

var allActions = []core.Action{
	core.ActionNone,
	core.ActionUp,
	core.ActionDown,
	core.ActionFire,
	core.ActionRestart,
}

// checkInvariants fails t if any session bound is broken.
func checkInvariants(t *rapid.T, s *Session, tick int) {
	cfg := s.Config()
	p := s.Player()

	if p.Health < 0 || p.Health > cfg.Player.MaxHealth {
		t.Fatalf("tick %d: health %d out of [0,%d]", tick, p.Health, cfg.Player.MaxHealth)
	}
	if s.BulletSpeed() < cfg.Bullets.InitialSpeed || s.BulletSpeed() > cfg.Bullets.MaxSpeed {
		t.Fatalf("tick %d: bullet speed %v out of range", tick, s.BulletSpeed())
	}
	if len(s.PowerUps()) > cfg.PowerUps.MaxActive {
		t.Fatalf("tick %d: %d power-ups above cap", tick, len(s.PowerUps()))
	}
	if p.Y < 0 || p.Y+p.H > cfg.Playfield.Height {
		t.Fatalf("tick %d: player y %v outside playfield", tick, p.Y)
	}
	if s.Level() < 1 || s.Score() < 0 || s.Score()%cfg.Scoring.ObstaclePoints != 0 {
		t.Fatalf("tick %d: level=%d score=%d", tick, s.Level(), s.Score())
	}
	if s.GameOver() != (p.Health == 0) {
		t.Fatalf("tick %d: game over %v with health %d", tick, s.GameOver(), p.Health)
	}
}

func TestSessionInvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultBlasterConfig()
		// Busy fields exercise pickups and collisions more often
		cfg.PowerUps.SpawnChance = rapid.Float64Range(0, 1).Draw(t, "spawnChance")
		cfg.Obstacles.ExtraPerBatch = rapid.IntRange(1, 12).Draw(t, "extra")

		seed := rapid.Int64().Draw(t, "seed")
		actions := rapid.SliceOfN(rapid.SampledFrom(allActions), 1, 600).Draw(t, "actions")

		s := NewSession(cfg, NewRand(seed))
		s.Start()
		checkInvariants(t, s, 0)

		for i, a := range actions {
			now := int64(i) * 16
			switch a {
			case core.ActionUp:
				s.MoveUp()
			case core.ActionDown:
				s.MoveDown()
			case core.ActionFire:
				s.Fire(now)
			case core.ActionRestart:
				s.Restart()
			}
			s.Step(now)
			checkInvariants(t, s, i+1)
		}
	})
}

func TestScoreTracksDestroyedObstacles(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultBlasterConfig()
		s := NewSession(cfg, NewRand(rapid.Int64().Draw(t, "seed")))
		s.Start()

		// A bullet placed on an obstacle removes at least that obstacle
		target := s.Obstacles()[rapid.IntRange(0, len(s.Obstacles())-1).Draw(t, "target")]
		s.bullets = append(s.bullets, Bullet{
			X: target.X + target.DX - s.BulletSpeed(),
			Y: target.Y,
			W: cfg.Bullets.Width,
			H: cfg.Bullets.Height,
		})
		before := len(s.Obstacles())
		levelBefore := s.Level()

		s.Step(16)
		if s.Level() != levelBefore {
			// Field cleared or player struck; counts no longer comparable
			return
		}

		removed := before - len(s.Obstacles())
		if removed < 1 {
			t.Fatalf("no obstacle removed")
		}
		if s.Score() != removed*cfg.Scoring.ObstaclePoints {
			t.Fatalf("score %d for %d removed obstacles", s.Score(), removed)
		}
		if len(s.Bullets()) != 0 {
			t.Fatalf("bullet survived its hit")
		}
	})
}

func TestRestartAlwaysResets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.DefaultBlasterConfig()
		s := NewSession(cfg, NewRand(rapid.Int64().Draw(t, "seed")))
		s.Start()

		s.score = rapid.IntRange(0, 1000).Draw(t, "score") * cfg.Scoring.ObstaclePoints
		s.level = rapid.IntRange(1, 40).Draw(t, "level")
		s.bulletSpeed = rapid.Float64Range(cfg.Bullets.InitialSpeed, cfg.Bullets.MaxSpeed).Draw(t, "speed")
		s.player.Health = 0
		s.gameOver = true

		if !s.Restart() {
			t.Fatalf("restart refused from game over")
		}
		if s.Score() != 0 || s.Level() != 1 || s.BulletSpeed() != cfg.Bullets.InitialSpeed {
			t.Fatalf("score=%d level=%d speed=%v after restart", s.Score(), s.Level(), s.BulletSpeed())
		}
		if s.Player().Health != cfg.Player.StartHealth {
			t.Fatalf("health=%d after restart", s.Player().Health)
		}
		if len(s.Obstacles()) != 1+cfg.Obstacles.ExtraPerBatch {
			t.Fatalf("obstacles=%d after restart", len(s.Obstacles()))
		}
	})
}
