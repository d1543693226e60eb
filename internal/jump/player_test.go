package jump

import (
	"testing"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

// arcConfig is the 1000x300 world with a 50x50 player at (100, 250),
// gravity 1 and a -20 impulse.
func arcConfig() config.JumpConfig {
	return config.DefaultJumpConfig()
}

func TestNewPlayerGrounded(t *testing.T) {
	p := newPlayer(arcConfig())

	if p.State != StateGrounded {
		t.Errorf("player starting on the floor should be grounded, got %v", p.State)
	}
	if p.Position != core.Vec(100, 250) {
		t.Errorf("Position = %+v, expected (100, 250)", p.Position)
	}
	if p.Box != core.BoxAt(p.Position, 50, 50) {
		t.Errorf("Box = %+v, expected box at position", p.Box)
	}
}

func TestNewPlayerAirborneStart(t *testing.T) {
	cfg := arcConfig()
	cfg.Player.Y = 100

	p := newPlayer(cfg)
	if p.State != StateAirborne {
		t.Fatalf("player above the floor should start airborne, got %v", p.State)
	}

	floor := cfg.FloorY()
	for i := 0; i < 100 && p.State == StateAirborne; i++ {
		p.update(false, cfg.Physics, floor)
	}
	if p.State != StateGrounded || p.Position.Y != floor {
		t.Errorf("player should fall onto the floor, got state %v at y=%v", p.State, p.Position.Y)
	}
}

func TestNewPlayerBelowFloorIsLifted(t *testing.T) {
	cfg := arcConfig()
	cfg.Player.Y = 290

	p := newPlayer(cfg)
	if p.Position.Y != cfg.FloorY() {
		t.Errorf("Position.Y = %v, expected floor %v", p.Position.Y, cfg.FloorY())
	}
	if p.State != StateGrounded {
		t.Errorf("State = %v, expected grounded", p.State)
	}
}

func TestPlayerJumpTransition(t *testing.T) {
	p := newPlayer(arcConfig())

	if !p.jump(-20) {
		t.Fatal("grounded player should be able to jump")
	}
	if p.State != StateAirborne {
		t.Errorf("State = %v, expected airborne", p.State)
	}
	if p.Velocity != -20 {
		t.Errorf("Velocity = %v, expected -20", p.Velocity)
	}

	// No double jump
	p.Velocity = -5
	if p.jump(-20) {
		t.Error("airborne player should not be able to jump again")
	}
	if p.Velocity != -5 {
		t.Errorf("ignored jump changed velocity to %v", p.Velocity)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	cfg := arcConfig()
	floor := cfg.FloorY()
	p := newPlayer(cfg)

	p.update(true, cfg.Physics, floor)
	if p.State != StateAirborne {
		t.Fatalf("State after jump tick = %v, expected airborne", p.State)
	}
	// Impulse -20 then one tick of gravity
	if p.Velocity != -19 || p.Position.Y != 231 {
		t.Errorf("after jump tick: velocity=%v y=%v, expected -19 and 231", p.Velocity, p.Position.Y)
	}

	ticks := 1
	sawRising, sawFalling := p.Velocity < 0, false
	for p.State == StateAirborne {
		p.update(false, cfg.Physics, floor)
		ticks++

		if p.Velocity > 0 {
			sawFalling = true
		}
		if p.Position.Y > floor {
			t.Fatalf("tick %d: y=%v is below the floor %v", ticks, p.Position.Y, floor)
		}
		if p.Box != core.BoxAt(p.Position, p.Width, p.Height) {
			t.Fatalf("tick %d: box out of sync with position", ticks)
		}
		if ticks > 100 {
			t.Fatal("player never landed")
		}
	}

	if !sawRising || !sawFalling {
		t.Error("arc should have both a rising and a falling half")
	}
	if p.Position.Y != floor || p.Velocity != 0 {
		t.Errorf("after landing: y=%v velocity=%v, expected %v and 0", p.Position.Y, p.Velocity, floor)
	}
	// Displacement -20n + n(n+1)/2 returns to zero at n = 39
	if ticks != 39 {
		t.Errorf("landed after %d ticks, expected 39", ticks)
	}
}

func TestPlayerGroundedStaysOnFloor(t *testing.T) {
	cfg := arcConfig()
	p := newPlayer(cfg)

	for i := 0; i < 10; i++ {
		p.update(false, cfg.Physics, cfg.FloorY())
	}
	if p.Position.Y != 250 || p.State != StateGrounded || p.Velocity != 0 {
		t.Errorf("grounded player moved: %+v", p)
	}
}

func TestPlayerMaxFallSpeed(t *testing.T) {
	cfg := arcConfig()
	cfg.Player.Y = 0
	cfg.Physics.MaxFallSpeed = 3
	p := newPlayer(cfg)

	for i := 0; i < 10; i++ {
		p.update(false, cfg.Physics, cfg.FloorY())
		if p.Velocity > 3 {
			t.Fatalf("tick %d: velocity %v exceeds clamp", i, p.Velocity)
		}
	}
}

func TestMotionStateString(t *testing.T) {
	tests := map[MotionState]string{
		StateUnset:     "unset",
		StateGrounded:  "grounded",
		StateAirborne:  "airborne",
		MotionState(9): "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("MotionState(%d).String() = %q, expected %q", s, got, want)
		}
	}
}
