package config

import (
	_ "embed"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the built-in Blaster configuration.
// It matches defaults/blaster.yaml and is used if the embedded file fails to parse.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Playfield: BlasterPlayfield{
			Width:  800,
			Height: 600,
		},
		Player: BlasterPlayer{
			X:           50,
			SpawnOffset: 20,
			Width:       20,
			Height:      20,
			Speed:       5,
			StartHealth: 3,
			MaxHealth:   5,
		},
		Bullets: BlasterBullets{
			Width:        10,
			Height:       5,
			InitialSpeed: 5,
			MaxSpeed:     10,
			CooldownMs:   500,
		},
		Obstacles: BlasterObstacles{
			Size:          50,
			ExtraPerBatch: 3,
			BaseSpeed:     2,
		},
		PowerUps: BlasterPowerUps{
			Size:        20,
			SpawnChance: 0.01,
			MaxActive:   3,
			LifetimeMs:  10000,
			SpeedBoost:  2,
			HealthBoost: 1,
		},
		Scoring: BlasterScoring{
			ObstaclePoints: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blaster":
		return defaultBlasterYAML
	default:
		return nil
	}
}
