// Package jump implements the name-jumper simulation: the player must jump
// over a row of glyphs spelling a name as they scroll in from the right.
// The package is pure logic; the host drives ticks and draws snapshots.
package jump

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
)

// Outcome is the session-level result.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Event is a one-shot notification attached to the tick that produced it.
type Event int

const (
	EventNone Event = iota
	EventWon
	EventLost
)

// String returns the notification name.
func (e Event) String() string {
	switch e {
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "none"
	}
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Snapshot Snapshot
	Event    Event // Non-none only on the tick the session ended
}

// Session owns the player and obstacle field for one play-through.
type Session struct {
	id      uuid.UUID
	name    string
	cfg     config.JumpConfig
	player  Player
	field   ObstacleField
	outcome Outcome
	tick    int
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger enables debug logging of collisions and outcomes.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithID overrides the random session ID.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession validates cfg and spawns the player and one obstacle per
// non-space rune of name. A nil metrics uses the configured glyph size.
func NewSession(name string, cfg config.JumpConfig, metrics GlyphMetrics, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jump: cannot start session: %w", err)
	}
	if metrics == nil {
		metrics = MetricsFromConfig(cfg.Obstacles)
	}

	s := &Session{
		id:     uuid.New(),
		name:   name,
		cfg:    cfg,
		player: newPlayer(cfg),
		field:  NewObstacleField(Labels(name), cfg, metrics),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Step advances the session by one tick. The jump request is taken from in
// and cleared. Once the outcome is terminal, Step changes nothing.
func (s *Session) Step(in *core.InputLatch) StepResult {
	if s.outcome.Terminal() {
		return StepResult{Snapshot: s.Snapshot()}
	}

	jumpRequested := in.Take()
	s.tick++

	s.player.update(jumpRequested, s.cfg.Physics, s.cfg.FloorY())
	s.field.scroll(-s.cfg.Physics.ScrollSpeed)

	event := EventNone
	if i := s.field.firstHit(s.player.Box); i >= 0 {
		s.outcome = OutcomeLost
		event = EventLost
		if s.logger != nil {
			o := s.field.At(i)
			s.logger.Debug("collision",
				"session", s.id,
				"tick", s.tick,
				"label", string(o.Label),
				"obstacle", o.Box,
				"player", s.player.Box,
			)
		}
	} else if s.field.passed() {
		s.outcome = OutcomeWon
		event = EventWon
	}

	if event != EventNone && s.logger != nil {
		s.logger.Debug("session ended", "session", s.id, "outcome", s.outcome, "tick", s.tick)
	}

	return StepResult{Snapshot: s.Snapshot(), Event: event}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Name returns the submitted name, spaces included.
func (s *Session) Name() string {
	return s.name
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.JumpConfig {
	return s.cfg
}

// Tick returns the number of ticks simulated so far.
func (s *Session) Tick() int {
	return s.tick
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the obstacle field. The field is a value; callers
// cannot move the session's obstacles through it.
func (s *Session) Obstacles() ObstacleField {
	return ObstacleField{obstacles: s.field.All()}
}
