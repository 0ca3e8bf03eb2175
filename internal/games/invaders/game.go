// Package invaders implements the space invaders simulation: a marching
// alien fleet, a player cannon with cooldown-limited shots, and seeded
// bomb drops. Deterministic for a given seed and input sequence.
package invaders

import (
	"fmt"

	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/registry"
)

func init() {
	registry.Register("spaceinvaders", func() registry.Game {
		return New()
	})
}

// World geometry, in world units. The fleet marches across a fixed
// logical field; the renderer scales to the screen.
const (
	worldW = 500.0
	worldH = 650.0

	cannonY      = worldH - 30
	cannonWidth  = 30.0
	cannonHeight = 14.0

	alienW    = 26.0
	alienH    = 16.0
	alienGapX = 40.0
	alienGapY = 30.0
	fleetTop  = 60.0

	marchStep = 10.0 // Horizontal fleet movement per march tick

	respawnDelayTicks = 45
	minMarchInterval  = 8
)

// alien is one fleet member. Aliens never move individually; the fleet
// origin moves and each alien derives its position from its grid slot.
type alien struct {
	Row, Col int
	Alive    bool
}

// shot is a player projectile moving up.
type shot struct {
	Pos core.Vec
}

// bomb is an alien projectile moving down.
type bomb struct {
	Pos core.Vec
}

// Game is the space invaders simulation.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     *core.RNG

	phase core.Phase
	tick  int

	score int
	lives int
	wave  int

	cannonX  float64
	cooldown int

	fleet      []alien
	fleetX     float64 // Fleet origin (top-left alien slot)
	fleetY     float64
	fleetDir   float64 // +1 marching right, -1 left
	marchEvery int     // Ticks between march steps this wave
	marchTimer int

	shots []shot
	bombs []bomb

	respawnDelay int

	events []core.Event

	aliensKilled int
	shotsFired   int
}

// New creates an invaders game with configuration loaded from the
// standard search path.
func New() *Game {
	cfg, _ := config.LoadInvaders("")
	return NewWithConfig(cfg)
}

// NewWithConfig creates an invaders game with an explicit config.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "spaceinvaders" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Space Invaders" }

// Configure reloads the config from a custom path and applies a
// difficulty preset.
func (g *Game) Configure(customPath, difficulty string) error {
	cfg, err := config.LoadInvaders(customPath)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplyInvadersPreset(&cfg, preset)
	}
	g.cfg = cfg
	return nil
}

// Reset implements registry.Game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = core.NewRNG(rc.Seed)

	g.phase = core.PhaseNotStarted
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1

	g.cannonX = worldW / 2
	g.cooldown = 0
	g.shots = nil
	g.bombs = nil
	g.respawnDelay = 0
	g.events = nil
	g.aliensKilled = 0
	g.shotsFired = 0

	g.spawnFleet()
}

// spawnFleet builds a fresh alien grid for the current wave. March speed
// rises with the wave number.
func (g *Game) spawnFleet() {
	g.fleet = g.fleet[:0]
	for row := 0; row < g.cfg.Fleet.Rows; row++ {
		for col := 0; col < g.cfg.Fleet.Cols; col++ {
			g.fleet = append(g.fleet, alien{Row: row, Col: col, Alive: true})
		}
	}
	fleetW := float64(g.cfg.Fleet.Cols-1)*alienGapX + alienW
	g.fleetX = (worldW - fleetW) / 2
	g.fleetY = fleetTop
	g.fleetDir = 1

	g.marchEvery = core.Max(g.cfg.Fleet.MarchInterval-2*(g.wave-1), minMarchInterval)
	g.marchTimer = g.marchEvery
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Level: g.wave, Phase: g.phase}
}

// Metadata implements registry.Metadata.
func (g *Game) Metadata() map[string]any {
	accuracy := 0.0
	if g.shotsFired > 0 {
		accuracy = float64(g.aliensKilled) / float64(g.shotsFired)
	}
	return map[string]any{
		"wave":          g.wave,
		"aliens_killed": g.aliensKilled,
		"shots_fired":   g.shotsFired,
		"accuracy":      accuracy,
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
		if in.Has(core.ActionFire) {
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

	if g.cooldown > 0 {
		g.cooldown--
	}

	if g.respawnDelay > 0 {
		// Cannon is respawning: it cannot move or shoot, bombs keep
		// falling but cannot hit it.
		g.respawnDelay--
	} else {
		g.moveCannon(in)
		if in.Has(core.ActionFire) && g.cooldown == 0 {
			g.fire()
		}
	}

	g.march()
	g.advanceShots()
	g.advanceBombs()

	if g.phase == core.PhaseRunning && g.fleetCleared() {
		g.nextWave()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) moveCannon(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.cannonX -= g.cfg.Cannon.Speed
	}
	if in.Has(core.ActionRight) {
		g.cannonX += g.cfg.Cannon.Speed
	}
	g.cannonX = core.ClampF(g.cannonX, cannonWidth/2, worldW-cannonWidth/2)
}

func (g *Game) fire() {
	g.shots = append(g.shots, shot{Pos: core.Vec{X: g.cannonX, Y: cannonY}})
	g.cooldown = g.cfg.Cannon.CooldownTicks
	g.shotsFired++
	g.emit(core.EventShotFired)
}

// alienRect returns the world-space box of a fleet slot.
func (g *Game) alienRect(a alien) core.Rect {
	return core.NewRect(
		g.fleetX+float64(a.Col)*alienGapX,
		g.fleetY+float64(a.Row)*alienGapY,
		alienW, alienH,
	)
}

// march advances the fleet one step when its timer elapses: sideways
// until an edge, then reverse and step down. Each step may drop a bomb
// from a random living alien.
func (g *Game) march() {
	g.marchTimer--
	if g.marchTimer > 0 {
		return
	}
	g.marchTimer = g.currentMarchInterval()

	minX, maxX := g.fleetBoundsX()
	next := g.fleetX + g.fleetDir*marchStep
	if next+minX < 0 || next+maxX > worldW {
		g.fleetDir = -g.fleetDir
		g.fleetY += g.cfg.Fleet.StepDown
	} else {
		g.fleetX = next
	}

	// Fleet reaching the cannon row ends the game regardless of lives.
	for _, a := range g.fleet {
		if a.Alive && g.alienRect(a).Bottom() >= cannonY {
			g.gameOver()
			return
		}
	}

	if g.rng.Chance(g.cfg.Fleet.BombChance) {
		g.dropBomb()
	}
}

// currentMarchInterval scales the wave's base interval by the fraction
// of the fleet still alive, so a thinning fleet marches faster.
func (g *Game) currentMarchInterval() int {
	alive := 0
	for _, a := range g.fleet {
		if a.Alive {
			alive++
		}
	}
	if alive == 0 || len(g.fleet) == 0 {
		return g.marchEvery
	}
	return core.Max(g.marchEvery*alive/len(g.fleet), minMarchInterval)
}

// fleetBoundsX returns the horizontal extent of living aliens relative
// to the fleet origin.
func (g *Game) fleetBoundsX() (minX, maxX float64) {
	first := true
	for _, a := range g.fleet {
		if !a.Alive {
			continue
		}
		left := float64(a.Col) * alienGapX
		right := left + alienW
		if first || left < minX {
			minX = left
		}
		if first || right > maxX {
			maxX = right
		}
		first = false
	}
	return minX, maxX
}

// dropBomb releases a bomb from a random living alien, chosen by seeded
// index so runs stay reproducible.
func (g *Game) dropBomb() {
	var alive []int
	for i, a := range g.fleet {
		if a.Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return
	}
	r := g.alienRect(g.fleet[alive[g.rng.Intn(len(alive))]])
	g.bombs = append(g.bombs, bomb{Pos: core.Vec{X: r.Center().X, Y: r.Bottom()}})
}

// advanceShots moves player shots up and resolves alien hits. Each shot
// kills at most one alien; higher rows and later waves are worth more.
func (g *Game) advanceShots() {
	kept := g.shots[:0]
	for _, s := range g.shots {
		s.Pos.Y -= g.cfg.Cannon.ShotSpeed
		if s.Pos.Y < 0 {
			continue
		}
		hit := false
		for i := range g.fleet {
			a := &g.fleet[i]
			if !a.Alive || !g.alienRect(*a).ContainsPoint(s.Pos.X, s.Pos.Y) {
				continue
			}
			a.Alive = false
			g.aliensKilled++
			g.score += g.cfg.Gameplay.RowValue * (g.cfg.Fleet.Rows - a.Row) * g.wave
			g.emit(core.EventEnemyDestroyed)
			hit = true
			break
		}
		if !hit {
			kept = append(kept, s)
		}
	}
	g.shots = kept
}

// advanceBombs moves bombs down and resolves cannon hits.
func (g *Game) advanceBombs() {
	cannon := core.NewRect(g.cannonX-cannonWidth/2, cannonY, cannonWidth, cannonHeight)
	kept := g.bombs[:0]
	for _, b := range g.bombs {
		b.Pos.Y += g.cfg.Fleet.BombSpeed
		if b.Pos.Y > worldH {
			continue
		}
		if g.respawnDelay == 0 && g.phase == core.PhaseRunning &&
			cannon.ContainsPoint(b.Pos.X, b.Pos.Y) {
			g.hitCannon()
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept
}

func (g *Game) hitCannon() {
	g.lives--
	g.emit(core.EventLifeLost)
	if g.lives <= 0 {
		g.gameOver()
		return
	}
	g.cannonX = worldW / 2
	g.respawnDelay = respawnDelayTicks
}

func (g *Game) gameOver() {
	g.phase = core.PhaseGameOver
	g.emit(core.EventGameOver)
}

func (g *Game) fleetCleared() bool {
	for _, a := range g.fleet {
		if a.Alive {
			return false
		}
	}
	return true
}

// nextWave awards the clear bonus and spawns a faster fleet. Shots and
// bombs in flight are wiped.
func (g *Game) nextWave() {
	g.score += g.cfg.Gameplay.WaveBonus
	g.wave++
	g.emit(core.EventLevelClear)
	g.shots = nil
	g.bombs = nil
	g.spawnFleet()
}

// Render implements registry.Game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	sx := float64(w) / worldW
	sy := float64(h-1) / worldH

	hud := fmt.Sprintf(" score %d  wave %d  lives %d", g.score, g.wave, g.lives)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for _, a := range g.fleet {
		if !a.Alive {
			continue
		}
		r := g.alienRect(a)
		x0, x1 := int(r.X*sx), int(r.Right()*sx)
		y := 1 + int(r.Center().Y*sy)
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, '▼', alienColor(a.Row))
		}
	}

	for _, s := range g.shots {
		dst.SetColored(int(s.Pos.X*sx), 1+int(s.Pos.Y*sy), '|', core.ColorBrightYellow)
	}
	for _, b := range g.bombs {
		dst.SetColored(int(b.Pos.X*sx), 1+int(b.Pos.Y*sy), '*', core.ColorBrightRed)
	}

	if g.respawnDelay == 0 || g.tick%10 < 5 { // Blink while respawning
		cx := int(g.cannonX * sx)
		cy := 1 + int(cannonY*sy)
		half := int(cannonWidth * sx / 2)
		for x := cx - half; x <= cx+half; x++ {
			dst.SetColored(x, cy, '▄', core.ColorBrightGreen)
		}
		dst.SetColored(cx, cy-1, '▲', core.ColorBrightGreen)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawTextCentered(h/2, "SPACE INVADERS - space to start")
	case core.PhasePaused:
		dst.DrawTextCentered(h/2, "PAUSED")
	case core.PhaseGameOver:
		dst.DrawTextCentered(h/2, fmt.Sprintf("GAME OVER - score %d - r to restart", g.score))
	}
}

func alienColor(row int) core.Color {
	switch row {
	case 0:
		return core.ColorBrightMagenta
	case 1, 2:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightGreen
	}
}
