package brickbreaker

import (
	"github.com/devpulse/arcade/internal/core"
)

// PowerUpType identifies a power-up kind.
type PowerUpType int

const (
	PowerUpNone PowerUpType = iota
	PowerUpMultiball
	PowerUpExtend
	PowerUpLaser
	PowerUpSlowmo
	PowerUpCatch
	PowerUpLife
)

// String returns a human-readable name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpMultiball:
		return "multiball"
	case PowerUpExtend:
		return "extend"
	case PowerUpLaser:
		return "laser"
	case PowerUpSlowmo:
		return "slowmo"
	case PowerUpCatch:
		return "catch"
	case PowerUpLife:
		return "life"
	default:
		return "none"
	}
}

// Glyph returns the single rune drawn for a falling pickup.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpMultiball:
		return 'M'
	case PowerUpExtend:
		return 'E'
	case PowerUpLaser:
		return 'L'
	case PowerUpSlowmo:
		return 'S'
	case PowerUpCatch:
		return 'C'
	case PowerUpLife:
		return '+'
	default:
		return '?'
	}
}

// Timed reports whether the type installs a timed effect. Multiball and
// life apply instantly and never appear in the effect table.
func (t PowerUpType) Timed() bool {
	switch t {
	case PowerUpExtend, PowerUpLaser, PowerUpSlowmo, PowerUpCatch:
		return true
	default:
		return false
	}
}

// PowerUp is a falling pickup released by a destroyed brick.
type PowerUp struct {
	Pos  core.Vec
	Type PowerUpType
}

// Effect is an active timed effect. UntilTick is the simulation tick at
// which it expires and its reversion runs.
type Effect struct {
	Type      PowerUpType
	UntilTick int
}

// pickupHalfSize is the collision half-extent of a falling pickup.
const pickupHalfSize = 8.0

// powerUpState owns the falling pickups and the timed effect table. All
// mutation happens at fixed phases of the tick, driven by the game loop,
// so expirations can never race with collection.
type powerUpState struct {
	pickups []PowerUp
	effects []Effect
}

// Spawn releases a pickup at the given position.
func (s *powerUpState) Spawn(pos core.Vec, typ PowerUpType) {
	s.pickups = append(s.pickups, PowerUp{Pos: pos, Type: typ})
}

// Advance moves all pickups down by fallSpeed and drops the ones that
// left the world.
func (s *powerUpState) Advance(fallSpeed, worldH float64) {
	alive := s.pickups[:0]
	for _, p := range s.pickups {
		p.Pos.Y += fallSpeed
		if p.Pos.Y-pickupHalfSize <= worldH {
			alive = append(alive, p)
		}
	}
	s.pickups = alive
}

// Collect removes and returns pickups overlapping the paddle, in stored
// order.
func (s *powerUpState) Collect(paddle core.Rect) []PowerUpType {
	var collected []PowerUpType
	alive := s.pickups[:0]
	for _, p := range s.pickups {
		box := core.NewRect(p.Pos.X-pickupHalfSize, p.Pos.Y-pickupHalfSize, 2*pickupHalfSize, 2*pickupHalfSize)
		if box.Overlaps(paddle) {
			collected = append(collected, p.Type)
			continue
		}
		alive = append(alive, p)
	}
	s.pickups = alive
	return collected
}

// Arm installs or re-arms a timed effect. Collecting a type that is
// already active replaces its expiry rather than stacking a second
// instance, so at most one effect per type exists at a time.
// Returns true if the effect was newly activated.
func (s *powerUpState) Arm(typ PowerUpType, untilTick int) bool {
	for i := range s.effects {
		if s.effects[i].Type == typ {
			s.effects[i].UntilTick = untilTick
			return false
		}
	}
	s.effects = append(s.effects, Effect{Type: typ, UntilTick: untilTick})
	return true
}

// Active reports whether an effect of the given type is installed.
func (s *powerUpState) Active(typ PowerUpType) bool {
	for _, e := range s.effects {
		if e.Type == typ {
			return true
		}
	}
	return false
}

// Expire removes effects whose time is up and returns them in stored
// order so reversions run deterministically.
func (s *powerUpState) Expire(tick int) []PowerUpType {
	var expired []PowerUpType
	kept := s.effects[:0]
	for _, e := range s.effects {
		if tick >= e.UntilTick {
			expired = append(expired, e.Type)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
	return expired
}

// Clear drops all pickups and effects without running reversions. Used
// on life loss and level transitions, where the owning game restores
// base state itself.
func (s *powerUpState) Clear() {
	s.pickups = s.pickups[:0]
	s.effects = s.effects[:0]
}
