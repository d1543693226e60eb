package jump

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

func newTestSession(t *testing.T, name string) *Session {
	t.Helper()
	s, err := NewSession(name, config.DefaultJumpConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// runUntilDone steps the session, requesting a jump on the listed ticks,
// and returns the tick on which an event fired.
func runUntilDone(t *testing.T, s *Session, jumpTicks ...int) (int, Event) {
	t.Helper()
	jumps := make(map[int]bool, len(jumpTicks))
	for _, tick := range jumpTicks {
		jumps[tick] = true
	}

	var in core.InputLatch
	for tick := 1; tick <= 10000; tick++ {
		if jumps[tick] {
			in.Request()
		}
		res := s.Step(&in)
		if res.Event != EventNone {
			return tick, res.Event
		}
	}
	t.Fatal("session never ended")
	return 0, EventNone
}

func TestSessionSpawnLayout(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	cfg.Obstacles.Spacing = 500
	cfg.World.Width = 1000

	s, err := NewSession("AB", cfg, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(snap.Obstacles))
	}
	if snap.Obstacles[0].Position.X != 1000 || snap.Obstacles[1].Position.X != 1500 {
		t.Errorf("obstacle x = %v, %v, expected 1000, 1500",
			snap.Obstacles[0].Position.X, snap.Obstacles[1].Position.X)
	}
	if snap.Tick != 0 || snap.Outcome != OutcomeOngoing {
		t.Errorf("fresh session: tick=%d outcome=%v", snap.Tick, snap.Outcome)
	}
	if snap.Remaining() != 2 {
		t.Errorf("Remaining() = %d, expected 2", snap.Remaining())
	}
}

func TestSessionEmptyNameWinsImmediately(t *testing.T) {
	for _, name := range []string{"", "   "} {
		s := newTestSession(t, name)

		res := s.Step(&core.InputLatch{})
		if res.Event != EventWon || s.Outcome() != OutcomeWon {
			t.Errorf("name %q: first tick gave event=%v outcome=%v, expected won", name, res.Event, s.Outcome())
		}
		if s.Tick() != 1 {
			t.Errorf("name %q: Tick() = %d, expected 1", name, s.Tick())
		}

		if res := s.Step(&core.InputLatch{}); res.Event != EventNone {
			t.Errorf("name %q: won notification fired twice", name)
		}
	}
}

func TestSessionLoss(t *testing.T) {
	s := newTestSession(t, "A")

	// The glyph starts at x=1000 and scrolls 5 per tick; it touches the
	// player's right edge (x=150) on tick 170.
	tick, event := runUntilDone(t, s)

	if event != EventLost {
		t.Fatalf("event = %v, expected lost", event)
	}
	if tick != 170 {
		t.Errorf("lost on tick %d, expected 170", tick)
	}
	if s.Tick() != 170 || s.Outcome() != OutcomeLost {
		t.Errorf("Tick()=%d Outcome()=%v, expected 170 lost", s.Tick(), s.Outcome())
	}
}

func TestSessionTerminalIsFrozen(t *testing.T) {
	s := newTestSession(t, "A")
	runUntilDone(t, s)

	before := s.Snapshot()
	in := &core.InputLatch{}
	in.Request()

	for i := 0; i < 20; i++ {
		res := s.Step(in)
		if res.Event != EventNone {
			t.Fatalf("terminal session emitted %v", res.Event)
		}
		if !reflect.DeepEqual(res.Snapshot, before) {
			t.Fatalf("terminal step changed state:\nbefore %+v\nafter  %+v", before, res.Snapshot)
		}
	}
	if !in.Pending() {
		t.Error("terminal step should leave the input port untouched")
	}
}

func TestSessionWinByJumping(t *testing.T) {
	s := newTestSession(t, "A")

	// Jumping on tick 160 keeps the player above the glyph for ticks 170-190,
	// the only ticks where they overlap horizontally.
	tick, event := runUntilDone(t, s, 160)

	if event != EventWon {
		t.Fatalf("event = %v on tick %d, expected won", event, tick)
	}
	// Origin goes negative once 1000 - 5*tick < 0
	if tick != 201 {
		t.Errorf("won on tick %d, expected 201", tick)
	}
	if p := s.Player(); p.State != StateGrounded {
		t.Errorf("player should have landed, state = %v", p.State)
	}
}

func TestSessionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.DefaultJumpConfig()

	for run := 0; run < 20; run++ {
		s, err := NewSession("Grace Hopper", cfg, nil)
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}

		var in core.InputLatch
		for !s.Outcome().Terminal() {
			before := s.Obstacles().All()
			if rng.Intn(25) == 0 {
				in.Request()
			}
			res := s.Step(&in)

			if y := res.Snapshot.Player.Position.Y; y > cfg.FloorY() {
				t.Fatalf("run %d tick %d: y=%v exceeds floor", run, s.Tick(), y)
			}
			if in.Pending() {
				t.Fatalf("run %d tick %d: jump request was not consumed", run, s.Tick())
			}
			for i, o := range res.Snapshot.Obstacles {
				if o.Position.X != before[i].Position.X-cfg.Physics.ScrollSpeed {
					t.Fatalf("run %d tick %d: obstacle %d moved %v, expected %v",
						run, s.Tick(), i, o.Position.X-before[i].Position.X, -cfg.Physics.ScrollSpeed)
				}
			}
			if s.Tick() > 10000 {
				t.Fatal("session never ended")
			}
		}
	}
}

func TestSessionJumpIgnoredWhileAirborne(t *testing.T) {
	s := newTestSession(t, "A")
	var in core.InputLatch

	in.Request()
	s.Step(&in)
	v := s.Player().Velocity

	in.Request()
	s.Step(&in)
	if got := s.Player().Velocity; got != v+1 {
		t.Errorf("velocity = %v, expected %v (gravity only, no second impulse)", got, v+1)
	}
	if in.Pending() {
		t.Error("ignored request should still be consumed")
	}
}

func TestSessionNilInput(t *testing.T) {
	s := newTestSession(t, "A")
	res := s.Step(nil)

	if res.Snapshot.Player.State != StateGrounded {
		t.Errorf("nil input should not jump, state = %v", res.Snapshot.Player.State)
	}
}

func TestSessionEventsFireOnce(t *testing.T) {
	s := newTestSession(t, "XYZ")
	var in core.InputLatch

	counts := map[Event]int{}
	for i := 0; i < 3000; i++ {
		counts[s.Step(&in).Event]++
	}
	if counts[EventLost]+counts[EventWon] != 1 {
		t.Errorf("expected exactly one terminal notification, got %v", counts)
	}
}

func TestSessionInvalidConfig(t *testing.T) {
	cfg := config.DefaultJumpConfig()
	cfg.Physics.Gravity = 0

	_, err := NewSession("A", cfg, nil)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewSession() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestSessionOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	id := uuid.MustParse("6f1c7c1e-3b8a-4d57-9d1a-0c7c2d9f5e11")

	s, err := NewSession("A", config.DefaultJumpConfig(), nil, WithLogger(logger), WithID(id))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.ID() != id {
		t.Errorf("ID() = %v, expected %v", s.ID(), id)
	}
	if s.Name() != "A" {
		t.Errorf("Name() = %q, expected A", s.Name())
	}

	runUntilDone(t, s)

	out := buf.String()
	if !strings.Contains(out, "collision") || !strings.Contains(out, "label=A") {
		t.Errorf("expected collision debug log, got %q", out)
	}
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t, "A")
	snap := s.Snapshot()
	snap.Obstacles[0].Position.X = 0
	snap.Player.Position.Y = 0

	if s.Obstacles().At(0).Position.X == 0 || s.Player().Position.Y == 0 {
		t.Error("mutating a snapshot should not affect the session")
	}
}

func TestOutcomeAndEventStrings(t *testing.T) {
	if OutcomeOngoing.String() != "ongoing" || OutcomeWon.String() != "won" || OutcomeLost.String() != "lost" {
		t.Error("unexpected Outcome strings")
	}
	if OutcomeOngoing.Terminal() || !OutcomeWon.Terminal() || !OutcomeLost.Terminal() {
		t.Error("unexpected Terminal() results")
	}
	if EventNone.String() != "none" || EventWon.String() != "won" || EventLost.String() != "lost" {
		t.Error("unexpected Event strings")
	}
}
