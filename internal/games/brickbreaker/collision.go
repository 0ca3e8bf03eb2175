package brickbreaker

import (
	"math"

	"github.com/devpulse/arcade/internal/core"
)

// resolvePaddle tests a downward-moving ball against the paddle band and
// applies the offset-angle rebound: the rebound direction depends only on
// where the ball struck relative to the paddle center, clamped to
// maxBounceAngle from vertical, with speed magnitude preserved. With the
// catch effect active the ball is pinned instead of rebounding.
//
// Returns (hit, caught).
func resolvePaddle(b *Ball, p *Paddle, maxBounceAngleRad float64, catchActive bool) (bool, bool) {
	if b.Vel.Y <= 0 {
		return false, false
	}
	if b.Pos.Y+b.Radius < p.Y || b.Pos.Y-b.Radius > p.Y+p.Height {
		return false, false
	}
	if b.Pos.X+b.Radius < p.X || b.Pos.X-b.Radius > p.Right() {
		return false, false
	}

	// Rest on top of the paddle so the ball never tunnels into it.
	b.Pos.Y = p.Y - b.Radius

	if catchActive {
		b.Caught = true
		b.Vel = core.Vec{}
		PinToPaddle(b, p)
		return true, true
	}

	offset := (b.Pos.X - p.CenterX()) / (p.Width / 2)
	offset = core.ClampF(offset, -1, 1)
	angle := offset * maxBounceAngleRad
	speed := b.Vel.Len()

	b.Vel.X = speed * math.Sin(angle)
	b.Vel.Y = -speed * math.Cos(angle)
	return true, false
}

// resolveBricks tests a ball against the brick set in stored order and
// resolves at most one contact per tick. The rebound axis is chosen by
// the smaller penetration depth; ties reflect vertically. Returns the
// index of the struck brick, or -1.
//
// The caller owns hit-count decrement, scoring, and removal.
func resolveBricks(b *Ball, bricks []Brick) int {
	bounds := b.Bounds()
	for i := range bricks {
		r := bricks[i].Rect
		if !bounds.Overlaps(r) {
			continue
		}

		penX := core.Min64(bounds.Right()-r.X, r.Right()-bounds.X)
		penY := core.Min64(bounds.Bottom()-r.Y, r.Bottom()-bounds.Y)

		if penX < penY {
			b.Vel.X = -b.Vel.X
			if b.Pos.X < r.Center().X {
				b.Pos.X -= penX
			} else {
				b.Pos.X += penX
			}
		} else {
			b.Vel.Y = -b.Vel.Y
			if b.Pos.Y < r.Center().Y {
				b.Pos.Y -= penY
			} else {
				b.Pos.Y += penY
			}
		}
		return i
	}
	return -1
}
