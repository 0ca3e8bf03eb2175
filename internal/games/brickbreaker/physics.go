package brickbreaker

import (
	"math"

	"github.com/devpulse/arcade/internal/core"
)

// Ball is a single ball in play. Radius never changes after creation.
// A caught ball is pinned to the paddle and skips integration until it
// is released by the player or by the catch effect expiring.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Caught bool

	// fatal marks a ball whose state became non-finite; the lifecycle
	// phase removes it with normal life-loss accounting.
	fatal bool
}

// Bounds returns the ball's axis-aligned bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Paddle is the player's paddle. Width is mutable (extend effect) but
// always clamped to [baseWidth, maxWidth]; X is clamped so the paddle
// stays fully inside the world. The input controller only proposes a
// delta; the integrator owns the clamping.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge (fixed)
	Width  float64
	Height float64
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Bounds returns the paddle's collision band.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// MovePaddle applies a directional intent to the paddle and clamps it to
// the world. dir is -1, 0, or +1.
func MovePaddle(p *Paddle, dir int, speed, worldW float64) {
	p.X += float64(dir) * speed
	p.X = core.ClampF(p.X, 0, worldW-p.Width)
}

// PinToPaddle centers a caught ball on the paddle's top edge.
func PinToPaddle(b *Ball, p *Paddle) {
	b.Pos.X = p.CenterX()
	b.Pos.Y = p.Y - b.Radius
}

// Integrate advances a ball by one fixed tick and reflects it off the
// side and top boundaries. The step is intentionally per-tick rather
// than delta-time scaled: simulation speed is coupled to the tick rate
// to preserve the original game feel.
//
// Balls past the bottom boundary are not reflected here; the lifecycle
// phase removes them. Returns the events produced by any reflections.
func Integrate(b *Ball, worldW, worldH float64) []core.Event {
	if b.Caught {
		return nil
	}

	b.Pos = b.Pos.Add(b.Vel)

	// A non-finite position or velocity is fatal to the ball, never
	// propagated into the snapshot.
	if !b.Pos.Finite() || !b.Vel.Finite() {
		b.fatal = true
		return nil
	}

	var events []core.Event

	if b.Pos.X < b.Radius {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
		events = append(events, core.EventWallBounce)
	} else if b.Pos.X > worldW-b.Radius {
		b.Pos.X = worldW - b.Radius
		b.Vel.X = -b.Vel.X
		events = append(events, core.EventWallBounce)
	}

	if b.Pos.Y < b.Radius {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
		events = append(events, core.EventWallBounce)
	}

	return events
}

// OutOfBounds reports whether the ball has fallen past the bottom
// boundary or was marked fatal.
func OutOfBounds(b *Ball, worldH float64) bool {
	return b.fatal || b.Pos.Y-b.Radius > worldH
}

// LaunchVelocity returns the standard launch vector for the given base
// speed: a fixed shallow angle off vertical, moving up.
func LaunchVelocity(speed float64) core.Vec {
	return core.Vec{
		X: speed * math.Sin(launchAngleRad),
		Y: -speed * math.Cos(launchAngleRad),
	}
}

// launchAngleRad is the fixed launch angle from vertical (~20 degrees).
const launchAngleRad = 0.35
