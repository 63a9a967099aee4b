package blaster

import "github.com/vovakirdan/tui-blaster/internal/core"

// Player is the ship on the left edge of the playfield.
type Player struct {
	X, Y   float64
	W, H   float64
	Speed  float64 // Pixels per move command
	Health int
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Bullet travels right at the session's shared bullet speed.
type Bullet struct {
	X, Y float64
	W, H float64
}

// Box returns the bullet's collision box.
func (b Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Obstacle drifts horizontally and reverses on the playfield edges.
type Obstacle struct {
	X, Y float64
	W, H float64
	DX   float64 // Horizontal velocity, sign is direction
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// PowerUpType selects the effect applied on pickup.
type PowerUpType int

const (
	PowerUpSpeed  PowerUpType = iota // Raises bullet speed
	PowerUpHealth                    // Restores one health
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpHealth:
		return "health"
	default:
		return "unknown"
	}
}

// PowerUp is a stationary pickup that expires after a fixed lifetime.
type PowerUp struct {
	X, Y      float64
	W, H      float64
	Type      PowerUpType
	SpawnTime int64 // Milliseconds on the session clock
}

// Box returns the power-up's collision box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Age returns how long the power-up has existed at time now.
func (p PowerUp) Age(now int64) int64 {
	return now - p.SpawnTime
}
