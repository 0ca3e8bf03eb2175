package brickbreaker

import (
	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
)

// Brick is a destructible grid cell. Hits counts down on contact; the
// lifecycle phase removes bricks at zero. MaxHits is kept for rendering
// (color tier) and scoring.
type Brick struct {
	Rect    core.Rect
	Hits    int
	MaxHits int
	PowerUp PowerUpType // PowerUpNone if the brick carries no pickup
}

// BuildGrid generates the brick grid for a level. All randomness
// (durability, gaps, power-up tags) is drawn from the game's seeded
// source, so identical seeds produce identical levels.
//
// Level 1 is always a full single-hit grid; later levels introduce
// gaps and multi-hit bricks, with the durability ceiling rising one
// per level up to the configured maximum.
func BuildGrid(cfg *config.BrickBreakerConfig, level int, rng *core.RNG) []Brick {
	layout := cfg.Bricks
	gridW := float64(layout.Cols) * layout.Width
	left := (cfg.World.Width - gridW) / 2

	ceiling := core.Min(level, layout.MaxHits)
	if ceiling < 1 {
		ceiling = 1
	}

	bricks := make([]Brick, 0, layout.Rows*layout.Cols)
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			if level > 1 && rng.Chance(layout.GapChance) {
				continue
			}
			hits := 1
			if ceiling > 1 {
				hits = 1 + rng.Intn(ceiling)
			}
			powerUp := PowerUpNone
			if rng.Chance(cfg.PowerUps.DropChance) {
				powerUp = rollPowerUpType(&cfg.PowerUps, rng)
			}
			bricks = append(bricks, Brick{
				Rect: core.NewRect(
					left+float64(col)*layout.Width,
					layout.Top+float64(row)*layout.Height,
					layout.Width,
					layout.Height,
				),
				Hits:    hits,
				MaxHits: hits,
				PowerUp: powerUp,
			})
		}
	}
	return bricks
}

// rollPowerUpType picks a power-up type by configured weight.
func rollPowerUpType(cfg *config.BrickPowerUps, rng *core.RNG) PowerUpType {
	weights := []struct {
		typ    PowerUpType
		weight int
	}{
		{PowerUpMultiball, cfg.WeightMultiball},
		{PowerUpExtend, cfg.WeightExtend},
		{PowerUpLaser, cfg.WeightLaser},
		{PowerUpSlowmo, cfg.WeightSlowmo},
		{PowerUpCatch, cfg.WeightCatch},
		{PowerUpLife, cfg.WeightLife},
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}
	if total <= 0 {
		return PowerUpExtend
	}

	roll := rng.Intn(total)
	for _, w := range weights {
		roll -= w.weight
		if roll < 0 {
			return w.typ
		}
	}
	return weights[len(weights)-1].typ
}
