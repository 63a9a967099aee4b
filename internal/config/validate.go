package config

import (
	"errors"
	"fmt"
)

// Validation errors returned (wrapped) by BlasterConfig.Validate.
var (
	ErrNonPositive       = errors.New("value must be positive")
	ErrPlayfieldTooSmall = errors.New("playfield smaller than an entity")
	ErrChanceRange       = errors.New("spawn chance must be within [0, 1]")
	ErrSpeedCeiling      = errors.New("max bullet speed below initial speed")
	ErrHealthRange       = errors.New("start health must be within [1, max_health]")
	ErrNegative          = errors.New("value must not be negative")
	ErrEmptyBatch        = errors.New("first obstacle batch would be empty")
)

// Validate checks that the configuration can drive a simulation.
func (c BlasterConfig) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bullets.width", c.Bullets.Width},
		{"bullets.height", c.Bullets.Height},
		{"bullets.initial_speed", c.Bullets.InitialSpeed},
		{"obstacles.size", c.Obstacles.Size},
		{"powerups.size", c.PowerUps.Size},
		{"powerups.lifetime_ms", float64(c.PowerUps.LifetimeMs)},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("%s: %w", p.name, ErrNonPositive)
		}
	}

	nonNegatives := []struct {
		name string
		val  float64
	}{
		{"player.spawn_offset", c.Player.SpawnOffset},
		{"bullets.cooldown_ms", float64(c.Bullets.CooldownMs)},
		{"obstacles.base_speed", c.Obstacles.BaseSpeed},
		{"powerups.max_active", float64(c.PowerUps.MaxActive)},
		{"powerups.speed_boost", c.PowerUps.SpeedBoost},
		{"powerups.health_boost", float64(c.PowerUps.HealthBoost)},
		{"scoring.obstacle_points", float64(c.Scoring.ObstaclePoints)},
	}
	for _, n := range nonNegatives {
		if n.val < 0 {
			return fmt.Errorf("%s %g: %w", n.name, n.val, ErrNegative)
		}
	}

	// Levels start at 1, so a batch holds at least 1+extra_per_batch obstacles
	if 1+c.Obstacles.ExtraPerBatch < 1 {
		return fmt.Errorf("obstacles.extra_per_batch %d: %w", c.Obstacles.ExtraPerBatch, ErrEmptyBatch)
	}

	largest := max(c.Obstacles.Size, c.PowerUps.Size, c.Player.Height)
	if c.Playfield.Width < largest || c.Playfield.Height < largest {
		return fmt.Errorf("playfield %gx%g: %w", c.Playfield.Width, c.Playfield.Height, ErrPlayfieldTooSmall)
	}

	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		return fmt.Errorf("powerups.spawn_chance %g: %w", c.PowerUps.SpawnChance, ErrChanceRange)
	}

	if c.Bullets.MaxSpeed < c.Bullets.InitialSpeed {
		return fmt.Errorf("bullets.max_speed %g: %w", c.Bullets.MaxSpeed, ErrSpeedCeiling)
	}

	if c.Player.StartHealth < 1 || c.Player.StartHealth > c.Player.MaxHealth {
		return fmt.Errorf("player.start_health %d: %w", c.Player.StartHealth, ErrHealthRange)
	}

	return nil
}
