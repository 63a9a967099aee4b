package blaster

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick        int64
	Now         int64
	Phase       Phase
	Score       int
	Level       int
	Health      int
	PlayerY     float64
	BulletSpeed float64
	Bullets     int
	Obstacles   int
	PowerUps    int
	// Sum of obstacle X positions, so drift differences show up
	ObstacleXSum float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}

	s := g.session
	var xs float64
	for _, o := range s.Obstacles() {
		xs += o.X
	}

	return Snapshot{
		Tick:         g.tick,
		Now:          g.Now(),
		Phase:        s.Phase(),
		Score:        s.Score(),
		Level:        s.Level(),
		Health:       s.Player().Health,
		PlayerY:      s.Player().Y,
		BulletSpeed:  s.BulletSpeed(),
		Bullets:      len(s.Bullets()),
		Obstacles:    len(s.Obstacles()),
		PowerUps:     len(s.PowerUps()),
		ObstacleXSum: xs,
	}
}
