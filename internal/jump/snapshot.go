package jump

import "github.com/vovakirdan/name-jumper/internal/config"

// Snapshot is the read-only per-tick view handed to renderers.
type Snapshot struct {
	Tick      int
	Outcome   Outcome
	World     config.World
	Player    Player
	Obstacles []Obstacle
}

// Snapshot returns the current state. The obstacle slice is a fresh copy.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Outcome:   s.outcome,
		World:     s.cfg.World,
		Player:    s.player,
		Obstacles: s.field.All(),
	}
}

// Remaining returns how many obstacles have not yet reached the left edge.
func (snap Snapshot) Remaining() int {
	n := 0
	for _, o := range snap.Obstacles {
		if o.Position.X >= 0 {
			n++
		}
	}
	return n
}
