// Package snake implements the snake simulation on a bordered cell
// grid. The snake moves one cell every few ticks, speeding up as it
// eats; direction changes are buffered so fast key taps between moves
// are not lost.
package snake

import (
	"fmt"

	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/registry"
)

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// point is a cell coordinate on the play grid.
type point struct {
	X, Y int
}

type direction int

const (
	dirRight direction = iota
	dirLeft
	dirUp
	dirDown
)

// opposite reports whether two directions would reverse the snake onto
// itself.
func (d direction) opposite(other direction) bool {
	switch d {
	case dirRight:
		return other == dirLeft
	case dirLeft:
		return other == dirRight
	case dirUp:
		return other == dirDown
	default:
		return other == dirUp
	}
}

func (d direction) delta() point {
	switch d {
	case dirRight:
		return point{1, 0}
	case dirLeft:
		return point{-1, 0}
	case dirUp:
		return point{0, -1}
	default:
		return point{0, 1}
	}
}

// Game is the snake simulation. The grid adapts to the screen handed to
// Reset; everything else is config-driven.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *core.RNG

	phase core.Phase
	tick  int
	score int

	gridW, gridH int

	body    []point // Head first
	dir     direction
	pending direction
	hasPend bool

	food point

	moveEvery int // Ticks per cell at the current speed tier
	moveTimer int
	foodEaten int

	events []core.Event
}

// New creates a snake game with configuration loaded from the standard
// search path.
func New() *Game {
	cfg, _ := config.LoadSnake("")
	return NewWithConfig(cfg)
}

// NewWithConfig creates a snake game with an explicit config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "snake" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Snake" }

// Configure reloads the config from a custom path and applies a
// difficulty preset.
func (g *Game) Configure(customPath, difficulty string) error {
	cfg, err := config.LoadSnake(customPath)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplySnakePreset(&cfg, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset implements registry.Game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = core.NewRNG(rc.Seed)

	// One row of HUD, one cell of wall on each side.
	g.gridW = core.Max(rc.ScreenW-2, 10)
	g.gridH = core.Max(rc.ScreenH-3, 8)

	g.phase = core.PhaseNotStarted
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.moveEvery = g.cfg.MoveEveryTicks
	g.moveTimer = g.moveEvery
	g.dir = dirRight
	g.hasPend = false
	g.events = nil

	g.body = g.body[:0]
	head := point{g.gridW / 2, g.gridH / 2}
	for i := 0; i < g.cfg.StartLength; i++ {
		g.body = append(g.body, point{head.X - i, head.Y})
	}

	g.spawnFood()
}

// spawnFood places food on a seeded random free cell.
func (g *Game) spawnFood() {
	for {
		p := point{g.rng.Intn(g.gridW), g.rng.Intn(g.gridH)}
		if !g.onBody(p) {
			g.food = p
			return
		}
	}
}

func (g *Game) onBody(p point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}
	return false
}

// State implements registry.Game. Level reports the speed tier.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Level: g.tier(), Phase: g.phase}
}

// Metadata implements registry.Metadata.
func (g *Game) Metadata() map[string]any {
	return map[string]any{
		"length":     len(g.body),
		"food_eaten": g.foodEaten,
		"speed_tier": g.tier(),
	}
}

// tier is the 1-based speed tier, rising every SpeedupEvery foods.
func (g *Game) tier() int {
	if g.cfg.SpeedupEvery <= 0 {
		return 1
	}
	return 1 + g.foodEaten/g.cfg.SpeedupEvery
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
		if in.Has(core.ActionFire) || g.directionInput(in) {
			g.phase = core.PhaseRunning
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
	g.directionInput(in)

	g.moveTimer--
	if g.moveTimer > 0 {
		return g.result()
	}
	g.moveTimer = g.moveEvery
	g.move()

	return g.result()
}

// directionInput buffers the latest direction intent. Reversals onto the
// current travel direction are dropped; the buffer is applied at the
// next move, so two quick taps between moves cannot fold the snake.
func (g *Game) directionInput(in core.InputFrame) bool {
	var want direction
	switch {
	case in.Has(core.ActionLeft):
		want = dirLeft
	case in.Has(core.ActionRight):
		want = dirRight
	case in.Has(core.ActionUp):
		want = dirUp
	case in.Has(core.ActionDown):
		want = dirDown
	default:
		return false
	}
	if g.dir.opposite(want) {
		return false
	}
	g.pending = want
	g.hasPend = true
	return true
}

// move advances the snake one cell: apply the buffered direction, check
// walls and self, then either grow on food or drag the tail.
func (g *Game) move() {
	if g.hasPend && !g.dir.opposite(g.pending) {
		g.dir = g.pending
	}
	g.hasPend = false

	d := g.dir.delta()
	head := point{g.body[0].X + d.X, g.body[0].Y + d.Y}

	if head.X < 0 || head.X >= g.gridW || head.Y < 0 || head.Y >= g.gridH {
		g.gameOver()
		return
	}
	// Tail cell is vacated this move unless we grow; hitting it is only
	// fatal when the head lands on any other body cell.
	for _, b := range g.body[:len(g.body)-1] {
		if b == head {
			g.gameOver()
			return
		}
	}

	grow := head == g.food
	g.body = append([]point{head}, g.body...)
	if grow {
		g.foodEaten++
		g.score += g.cfg.FoodValue * g.tier()
		g.emit(core.EventFoodEaten)
		g.speedup()
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

// speedup tightens the move interval at each new tier, floored at the
// configured minimum.
func (g *Game) speedup() {
	interval := g.cfg.MoveEveryTicks - (g.tier() - 1)
	g.moveEvery = core.Max(interval, g.cfg.MinMoveTicks)
}

func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.emit(core.EventGameOver)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Render implements registry.Game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 12 || h < 10 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	hud := fmt.Sprintf(" score %d  len %d  speed %d", g.score, len(g.body), g.tier())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	dst.DrawBox(0, 1, g.gridW+2, g.gridH+2)

	dst.SetColored(g.food.X+1, g.food.Y+2, '●', core.ColorBrightRed)

	for i, b := range g.body {
		r := '█'
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		dst.SetColored(b.X+1, b.Y+2, r, c)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawTextCentered(h/2, "SNAKE - any direction to start")
	case core.PhasePaused:
		dst.DrawTextCentered(h/2, "PAUSED")
	case core.PhaseGameOver:
		dst.DrawTextCentered(h/2, fmt.Sprintf("GAME OVER - score %d - r to restart", g.score))
	}
}
