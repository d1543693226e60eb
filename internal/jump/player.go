package jump

import (
	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

// MotionState is the player's vertical motion state.
type MotionState int

const (
	// StateUnset exists only between construction and state resolution.
	StateUnset MotionState = iota
	// StateGrounded means resting on the floor line and able to jump.
	StateGrounded
	// StateAirborne covers both halves of the arc; the sign of the velocity
	// says whether the player is rising or falling.
	StateAirborne
)

// String returns a human-readable name for the state.
func (s MotionState) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Player is the avatar. Box always equals BoxAt(Position, Width, Height).
type Player struct {
	Position core.Vector2
	Width    float64
	Height   float64
	Box      core.BoundingBox
	Velocity float64 // Positive = downward
	State    MotionState
}

// newPlayer places the player at the configured start and resolves its state.
// A start below the floor line is lifted onto it.
func newPlayer(cfg config.JumpConfig) Player {
	floor := cfg.FloorY()
	pos := core.Vec(cfg.Player.X, min(cfg.Player.Y, floor))

	p := Player{
		Position: pos,
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
		Box:      core.BoxAt(pos, cfg.Player.Width, cfg.Player.Height),
		State:    StateUnset,
	}
	p.resolveState(floor)
	return p
}

// resolveState settles StateUnset from the current height.
func (p *Player) resolveState(floor float64) {
	if p.State != StateUnset {
		return
	}
	if p.Position.Y >= floor {
		p.State = StateGrounded
	} else {
		p.State = StateAirborne
	}
}

// moveY shifts the player and its box together.
func (p *Player) moveY(dy float64) {
	p.Position.Y += dy
	p.Box.Translate(0, dy)
}

// jump starts a jump if the player is grounded. Reports whether it did.
func (p *Player) jump(impulse float64) bool {
	if p.State != StateGrounded {
		return false
	}
	p.State = StateAirborne
	p.Velocity = impulse
	return true
}

// update runs one tick of the motion state machine.
func (p *Player) update(jumpRequested bool, phys config.Physics, floor float64) {
	if jumpRequested {
		p.jump(phys.JumpImpulse)
	}

	switch p.State {
	case StateAirborne:
		p.Velocity += phys.Gravity
		if phys.MaxFallSpeed > 0 && p.Velocity > phys.MaxFallSpeed {
			p.Velocity = phys.MaxFallSpeed
		}

		if next := p.Position.Y + p.Velocity; next >= floor {
			p.moveY(floor - p.Position.Y)
			p.Velocity = 0
			p.State = StateGrounded
		} else {
			p.moveY(p.Velocity)
		}

	case StateGrounded:
		if p.Position.Y != floor {
			p.moveY(floor - p.Position.Y)
		}
	}
}
