package brickbreaker

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot is a read-only copy of the full simulation state, taken
// between ticks. Mutating a snapshot never affects the game.
type Snapshot struct {
	Tick  int
	Phase string
	Score int
	Lives int
	Level int
	Combo int

	Paddle PaddleSnapshot
	Balls  []BallSnapshot
	Bricks []BrickSnapshot
	Drops  []DropSnapshot
	Active []EffectSnapshot
}

// PaddleSnapshot captures paddle geometry.
type PaddleSnapshot struct {
	X, Y, Width, Height float64
}

// BallSnapshot captures one ball.
type BallSnapshot struct {
	X, Y, DX, DY, Radius float64
	Caught               bool
}

// BrickSnapshot captures one live brick.
type BrickSnapshot struct {
	X, Y, W, H    float64
	Hits, MaxHits int
	PowerUp       PowerUpType
}

// DropSnapshot captures one falling pickup.
type DropSnapshot struct {
	X, Y float64
	Type PowerUpType
}

// EffectSnapshot captures one active timed effect.
type EffectSnapshot struct {
	Type           PowerUpType
	RemainingTicks int
}

// Snapshot copies the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Phase: g.phase.String(),
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
		Combo: g.combo,
		Paddle: PaddleSnapshot{
			X: g.paddle.X, Y: g.paddle.Y,
			Width: g.paddle.Width, Height: g.paddle.Height,
		},
	}
	for _, b := range g.balls {
		s.Balls = append(s.Balls, BallSnapshot{
			X: b.Pos.X, Y: b.Pos.Y,
			DX: b.Vel.X, DY: b.Vel.Y,
			Radius: b.Radius, Caught: b.Caught,
		})
	}
	for _, br := range g.bricks {
		s.Bricks = append(s.Bricks, BrickSnapshot{
			X: br.Rect.X, Y: br.Rect.Y, W: br.Rect.W, H: br.Rect.H,
			Hits: br.Hits, MaxHits: br.MaxHits, PowerUp: br.PowerUp,
		})
	}
	for _, d := range g.powerups.pickups {
		s.Drops = append(s.Drops, DropSnapshot{X: d.Pos.X, Y: d.Pos.Y, Type: d.Type})
	}
	for _, e := range g.powerups.effects {
		s.Active = append(s.Active, EffectSnapshot{Type: e.Type, RemainingTicks: e.UntilTick - g.tick})
	}
	return s
}

// Hash folds the snapshot into a 64-bit digest. Two simulations with the
// same seed and input sequence produce identical hashes tick for tick.
// Floats are folded bit-exact so no two distinct states ever collide by
// rounding.
func (s Snapshot) Hash() uint64 {
	fb := math.Float64bits
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%d|%d|%d|%d|", s.Tick, s.Phase, s.Score, s.Lives, s.Level, s.Combo)
	fmt.Fprintf(h, "p%x,%x|", fb(s.Paddle.X), fb(s.Paddle.Width))
	for _, b := range s.Balls {
		fmt.Fprintf(h, "b%x,%x,%x,%x,%t|", fb(b.X), fb(b.Y), fb(b.DX), fb(b.DY), b.Caught)
	}
	for _, br := range s.Bricks {
		fmt.Fprintf(h, "k%x,%x,%d,%d|", fb(br.X), fb(br.Y), br.Hits, int(br.PowerUp))
	}
	for _, d := range s.Drops {
		fmt.Fprintf(h, "d%x,%x,%d|", fb(d.X), fb(d.Y), int(d.Type))
	}
	for _, e := range s.Active {
		fmt.Fprintf(h, "e%d,%d|", int(e.Type), e.RemainingTicks)
	}
	return h.Sum64()
}
