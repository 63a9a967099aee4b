// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// BlasterConfig contains all tuning for the Blaster shooter.
// Distances are playfield pixels, speeds are pixels per tick, times are milliseconds.
type BlasterConfig struct {
	Playfield BlasterPlayfield `yaml:"playfield"`
	Player    BlasterPlayer    `yaml:"player"`
	Bullets   BlasterBullets   `yaml:"bullets"`
	Obstacles BlasterObstacles `yaml:"obstacles"`
	PowerUps  BlasterPowerUps  `yaml:"powerups"`
	Scoring   BlasterScoring   `yaml:"scoring"`
}

// BlasterPlayfield defines the simulated area. Rendering scales it to the terminal.
type BlasterPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BlasterPlayer defines the player ship.
type BlasterPlayer struct {
	X           float64 `yaml:"x"`            // Spawn column
	SpawnOffset float64 `yaml:"spawn_offset"` // Spawn row is height/2 - SpawnOffset
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	StartHealth int     `yaml:"start_health"`
	MaxHealth   int     `yaml:"max_health"`
}

// BlasterBullets defines projectile parameters.
type BlasterBullets struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	InitialSpeed float64 `yaml:"initial_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	CooldownMs   int64   `yaml:"cooldown_ms"`
}

// BlasterObstacles defines the drifting obstacles.
// A batch holds level+ExtraPerBatch obstacles moving at BaseSpeed+level.
type BlasterObstacles struct {
	Size          float64 `yaml:"size"`
	ExtraPerBatch int     `yaml:"extra_per_batch"`
	BaseSpeed     float64 `yaml:"base_speed"`
}

// BlasterPowerUps defines power-up spawning and effects.
type BlasterPowerUps struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per tick
	MaxActive   int     `yaml:"max_active"`
	LifetimeMs  int64   `yaml:"lifetime_ms"`
	SpeedBoost  float64 `yaml:"speed_boost"`
	HealthBoost int     `yaml:"health_boost"`
}

// BlasterScoring defines score awards.
type BlasterScoring struct {
	ObstaclePoints int `yaml:"obstacle_points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI string to a preset.
// Unknown or empty values yield "" (no preset).
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
