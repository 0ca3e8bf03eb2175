// Package brickbreaker implements the brick breaker simulation: a
// fixed-tick world with one paddle, one or more balls, a destructible
// brick grid, falling power-ups, and combo scoring. The simulation is
// fully deterministic for a given seed and input sequence.
package brickbreaker

import (
	"math"

	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/registry"
)

func init() {
	registry.Register("brickbreaker", func() registry.Game {
		return New()
	})
}

// Laser shot tuning. Shots are only available while the laser effect is
// active. They are purely cosmetic: an input and rendering concern with
// no effect on bricks, score, or combo.
const (
	laserSpeed         = 8.0
	laserCooldownTicks = 12
	maxLives           = 9
)

// laserShot is an upward projectile fired from a paddle edge.
type laserShot struct {
	Pos core.Vec
}

// Game is the brick breaker simulation. All state mutation happens
// inside Step in a fixed phase order: effect expiry, input, serve timer,
// ball integration, laser advance, collision resolution (paddle before
// bricks), entity lifecycle, power-up fall and collection, combo decay.
type Game struct {
	cfg     config.BrickBreakerConfig
	runtime core.RuntimeConfig
	rng     *core.RNG

	phase core.Phase
	tick  int

	score int
	lives int
	level int

	combo         int
	comboDeadline int // Tick at which an idle combo resets

	paddle   Paddle
	balls    []*Ball
	bricks   []Brick
	lasers   []laserShot
	powerups powerUpState

	serveDelay   int // Ticks until a respawned ball auto-launches
	lastShotTick int

	events []core.Event

	// Run stats attached to the score submission.
	bricksDestroyed   int
	powerupsCollected int
	ballsLost         int
	maxCombo          int
}

// New creates a brick breaker game with configuration loaded from the
// standard search path.
func New() *Game {
	cfg, _ := config.LoadBrickBreaker("")
	return NewWithConfig(cfg)
}

// NewWithConfig creates a brick breaker game with an explicit config.
func NewWithConfig(cfg config.BrickBreakerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "brickbreaker" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Brick Breaker" }

// Configure reloads the config from a custom path and applies a
// difficulty preset. Called by the platform before Reset.
func (g *Game) Configure(customPath, difficulty string) error {
	cfg, err := config.LoadBrickBreaker(customPath)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplyBrickBreakerPreset(&cfg, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset implements registry.Game. It rebuilds the full simulation from
// the seed; two games reset with the same seed are identical.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = core.NewRNG(rc.Seed)

	g.phase = core.PhaseNotStarted
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.combo = 0
	g.comboDeadline = 0

	g.paddle = Paddle{
		X:      (g.cfg.World.Width - g.cfg.Paddle.BaseWidth) / 2,
		Y:      g.cfg.World.Height - 40,
		Width:  g.cfg.Paddle.BaseWidth,
		Height: g.cfg.Paddle.Height,
	}

	g.bricks = BuildGrid(&g.cfg, g.level, g.rng)
	g.lasers = nil
	g.powerups.Clear()
	g.serveDelay = 0
	g.lastShotTick = -laserCooldownTicks

	g.balls = g.balls[:0]
	g.spawnServeBall()

	g.events = nil
	g.bricksDestroyed = 0
	g.powerupsCollected = 0
	g.ballsLost = 0
	g.maxCombo = 0
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Level: g.level, Phase: g.phase}
}

// Metadata implements registry.Metadata.
func (g *Game) Metadata() map[string]any {
	return map[string]any{
		"level":            g.level,
		"bricks_destroyed": g.bricksDestroyed,
		"powerups":         g.powerupsCollected,
		"balls_lost":       g.ballsLost,
		"max_combo":        g.maxCombo,
	}
}

// Step implements registry.Game.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	case core.PhaseNotStarted:
		g.movePaddle(in)
		g.pinCaughtBalls()
		if in.Has(core.ActionFire) {
			g.phase = core.PhaseRunning
			g.releaseCaughtBalls()
		}
		return g.result()
	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhaseRunning
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.phase = core.PhasePaused
		return g.result()
	}

	g.tick++

	// Timed effects expire at this fixed point of the tick, before any
	// entity moves, so reversion order never depends on collision order.
	for _, typ := range g.powerups.Expire(g.tick) {
		g.revertEffect(typ)
		g.emit(core.EventPowerUpExpired)
	}

	g.movePaddle(in)

	if in.Has(core.ActionFire) {
		if g.anyCaught() {
			g.releaseCaughtBalls()
		} else if g.powerups.Active(PowerUpLaser) {
			g.fireLasers()
		}
	}

	if g.serveDelay > 0 {
		g.serveDelay--
		if g.serveDelay == 0 {
			g.releaseCaughtBalls()
		}
	}

	// Physics: integrate free balls, pin caught ones to the paddle.
	for _, b := range g.balls {
		if b.Caught {
			PinToPaddle(b, &g.paddle)
			continue
		}
		g.events = append(g.events, Integrate(b, g.cfg.World.Width, g.cfg.World.Height)...)
	}

	g.advanceLasers()

	// Collision: paddle before bricks for every ball, at most one brick
	// contact per ball per tick.
	maxAngle := g.cfg.Physics.MaxBounceAngleDeg * math.Pi / 180
	for _, b := range g.balls {
		if b.Caught || b.fatal {
			continue
		}
		hit, caught := resolvePaddle(b, &g.paddle, maxAngle, g.powerups.Active(PowerUpCatch))
		if hit {
			if caught {
				g.emit(core.EventBallCaught)
			} else {
				g.emit(core.EventPaddleBounce)
			}
			continue
		}
		if idx := resolveBricks(b, g.bricks); idx >= 0 {
			g.damageBrick(idx)
		}
	}

	// Lifecycle: drop lost balls, then check for level clear.
	g.reapBalls()
	if g.phase == core.PhaseRunning && len(g.bricks) == 0 {
		g.nextLevel()
	}

	// Power-ups fall and are collected after collisions, so a pickup
	// spawned this tick starts falling next tick.
	g.powerups.Advance(g.cfg.PowerUps.FallSpeed, g.cfg.World.Height)
	for _, typ := range g.powerups.Collect(g.paddle.Bounds()) {
		g.applyPowerUp(typ)
	}

	if g.combo > 0 && g.tick >= g.comboDeadline {
		g.combo = 0
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) movePaddle(in core.InputFrame) {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		MovePaddle(&g.paddle, dir, g.cfg.Physics.PaddleSpeed, g.cfg.World.Width)
	}
}

// ballSpeed returns the ball launch speed for the current level.
func (g *Game) ballSpeed() float64 {
	speed := g.cfg.Physics.BallSpeed + g.cfg.Physics.BallSpeedPerLevel*float64(g.level-1)
	return core.Min64(speed, g.cfg.Physics.MaxBallSpeed)
}

// speedFactor is 0.5 while slowmo is active, 1.0 otherwise. Launches
// scale by it so slowmo expiry restores exactly the base velocity.
func (g *Game) speedFactor() float64 {
	if g.powerups.Active(PowerUpSlowmo) {
		return 0.5
	}
	return 1.0
}

func (g *Game) spawnServeBall() {
	b := &Ball{
		Radius: g.cfg.Ball.Radius,
		Caught: true,
	}
	PinToPaddle(b, &g.paddle)
	g.balls = append(g.balls, b)
}

func (g *Game) anyCaught() bool {
	for _, b := range g.balls {
		if b.Caught {
			return true
		}
	}
	return false
}

func (g *Game) pinCaughtBalls() {
	for _, b := range g.balls {
		if b.Caught {
			PinToPaddle(b, &g.paddle)
		}
	}
}

// releaseCaughtBalls launches every caught ball at the standard launch
// velocity for the current level, scaled by the slowmo factor.
func (g *Game) releaseCaughtBalls() {
	vel := LaunchVelocity(g.ballSpeed()).Scale(g.speedFactor())
	for _, b := range g.balls {
		if !b.Caught {
			continue
		}
		b.Caught = false
		b.Vel = vel
		g.emit(core.EventBallLaunched)
	}
}

// damageBrick decrements a brick's hit count and, at zero, awards score,
// advances the combo, releases any power-up tag, and removes the brick.
// Score per destroy is base value times the current level times the
// combo multiplier (combo+1, counted before this destroy).
func (g *Game) damageBrick(idx int) {
	brick := &g.bricks[idx]
	brick.Hits--
	if brick.Hits > 0 {
		g.emit(core.EventBrickHit)
		return
	}

	g.score += g.cfg.Bricks.BaseValue * g.level * (g.combo + 1)
	g.combo++
	if g.combo > g.maxCombo {
		g.maxCombo = g.combo
	}
	g.comboDeadline = g.tick + g.cfg.Gameplay.ComboIdleTicks
	g.bricksDestroyed++
	g.emit(core.EventBrickDestroyed)

	if brick.PowerUp != PowerUpNone {
		g.powerups.Spawn(brick.Rect.Center(), brick.PowerUp)
		g.emit(core.EventPowerUpSpawned)
	}

	g.bricks = append(g.bricks[:idx], g.bricks[idx+1:]...)
}

// reapBalls removes balls that left the world or went non-finite. Losing
// the last ball costs a life.
func (g *Game) reapBalls() {
	alive := g.balls[:0]
	for _, b := range g.balls {
		if OutOfBounds(b, g.cfg.World.Height) {
			g.ballsLost++
			continue
		}
		alive = append(alive, b)
	}
	g.balls = alive

	if len(g.balls) > 0 {
		return
	}

	g.lives--
	g.combo = 0
	g.emit(core.EventLifeLost)
	g.clearFieldEffects()

	if g.lives <= 0 {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver)
		return
	}

	g.spawnServeBall()
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
}

// nextLevel advances to the next level: fresh grid, serve ball, field
// effects cleared. Score, lives, and run stats carry over.
func (g *Game) nextLevel() {
	g.level++
	g.combo = 0
	g.emit(core.EventLevelClear)
	g.clearFieldEffects()

	g.bricks = BuildGrid(&g.cfg, g.level, g.rng)
	g.balls = g.balls[:0]
	g.spawnServeBall()
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
}

// clearFieldEffects drops pickups, lasers, and all timed effects without
// running reversions, then restores base paddle width. Pending
// expirations must never fire against the respawned state.
func (g *Game) clearFieldEffects() {
	g.powerups.Clear()
	g.lasers = nil
	g.paddle.Width = g.cfg.Paddle.BaseWidth
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.World.Width-g.paddle.Width)
}

// applyPowerUp activates a collected power-up. Timed types install or
// re-arm an effect; multiball and life apply instantly.
func (g *Game) applyPowerUp(typ PowerUpType) {
	g.powerupsCollected++
	g.emit(core.EventPowerUpCollected)

	switch typ {
	case PowerUpMultiball:
		g.splitBalls()
	case PowerUpLife:
		if g.lives < maxLives {
			g.lives++
		}
	case PowerUpExtend:
		g.powerups.Arm(typ, g.tick+g.cfg.PowerUps.DurationExtend)
		g.paddle.Width = core.Min64(g.cfg.Paddle.BaseWidth+g.cfg.PowerUps.ExtendAmount, g.cfg.Paddle.MaxWidth)
		g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.World.Width-g.paddle.Width)
	case PowerUpLaser:
		g.powerups.Arm(typ, g.tick+g.cfg.PowerUps.DurationLaser)
	case PowerUpSlowmo:
		// Halve only on fresh activation; re-collection re-arms the
		// timer without compounding the slowdown.
		if g.powerups.Arm(typ, g.tick+g.cfg.PowerUps.DurationSlowmo) {
			for _, b := range g.balls {
				b.Vel = b.Vel.Scale(0.5)
			}
		}
	case PowerUpCatch:
		g.powerups.Arm(typ, g.tick+g.cfg.PowerUps.DurationCatch)
	}
}

// revertEffect undoes a timed effect when it expires.
func (g *Game) revertEffect(typ PowerUpType) {
	switch typ {
	case PowerUpExtend:
		g.paddle.Width = g.cfg.Paddle.BaseWidth
		g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.World.Width-g.paddle.Width)
	case PowerUpSlowmo:
		for _, b := range g.balls {
			b.Vel = b.Vel.Scale(2)
		}
	case PowerUpCatch:
		// Caught balls do not stay pinned without the effect.
		g.releaseCaughtBalls()
	case PowerUpLaser:
		// Shots already in flight keep flying.
	}
}

// splitBalls clones every active ball into two extras rotated off the
// original heading, capped at the configured population limit.
func (g *Game) splitBalls() {
	launch := LaunchVelocity(g.ballSpeed()).Scale(g.speedFactor())
	src := make([]*Ball, len(g.balls))
	copy(src, g.balls)

	for _, b := range src {
		vel := b.Vel
		if b.Caught {
			vel = launch
		}
		for _, angle := range [2]float64{0.5, -0.5} {
			if len(g.balls) >= g.cfg.PowerUps.MaxBalls {
				return
			}
			g.balls = append(g.balls, &Ball{
				Pos:    b.Pos,
				Vel:    rotate(vel, angle),
				Radius: b.Radius,
			})
		}
	}
}

// rotate returns v rotated by angle radians, preserving magnitude.
func rotate(v core.Vec, angle float64) core.Vec {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return core.Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// fireLasers spawns a shot from each paddle edge, rate-limited by the
// cooldown.
func (g *Game) fireLasers() {
	if g.tick-g.lastShotTick < laserCooldownTicks {
		return
	}
	g.lastShotTick = g.tick
	g.lasers = append(g.lasers,
		laserShot{Pos: core.Vec{X: g.paddle.X + 2, Y: g.paddle.Y}},
		laserShot{Pos: core.Vec{X: g.paddle.Right() - 2, Y: g.paddle.Y}},
	)
	g.emit(core.EventShotFired)
}

// advanceLasers moves shots up, culling any that leave the field or
// splash against a brick face. Shots never damage bricks or touch the
// score; only the shot entities themselves change.
func (g *Game) advanceLasers() {
	alive := g.lasers[:0]
	for _, shot := range g.lasers {
		shot.Pos.Y -= laserSpeed
		if shot.Pos.Y < 0 {
			continue
		}
		blocked := false
		for i := range g.bricks {
			if g.bricks[i].Rect.ContainsPoint(shot.Pos.X, shot.Pos.Y) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		alive = append(alive, shot)
	}
	g.lasers = alive
}
