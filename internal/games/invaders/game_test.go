package invaders

import (
	"testing"

	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newRunningGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	g.Step(frame(core.ActionFire))
	return g
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func aliveCount(g *Game) int {
	n := 0
	for _, a := range g.fleet {
		if a.Alive {
			n++
		}
	}
	return n
}

func TestResetSpawnsFullFleet(t *testing.T) {
	g := NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	want := g.cfg.Fleet.Rows * g.cfg.Fleet.Cols
	if aliveCount(g) != want {
		t.Errorf("fleet = %d aliens, want %d", aliveCount(g), want)
	}
	if g.phase != core.PhaseNotStarted {
		t.Errorf("phase = %v, want not started", g.phase)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	g := newRunningGame(1)

	g.Step(frame(core.ActionFire))
	if len(g.shots) != 1 {
		t.Fatalf("shots = %d, want 1", len(g.shots))
	}
	g.Step(frame(core.ActionFire))
	if len(g.shots) != 1 {
		t.Errorf("second shot fired inside cooldown window")
	}

	for i := 0; i < g.cfg.Cannon.CooldownTicks; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.ActionFire))
	if g.shotsFired != 2 {
		t.Errorf("shotsFired = %d after cooldown elapsed, want 2", g.shotsFired)
	}
}

func TestShotKillsAlienAndScoresByRow(t *testing.T) {
	g := newRunningGame(1)
	target := g.fleet[0] // Top row, worth the most
	r := g.alienRect(target)

	g.shots = append(g.shots, shot{Pos: core.Vec{X: r.Center().X, Y: r.Bottom() + 2}})
	res := g.Step(frame())

	if !hasEvent(res.Events, core.EventEnemyDestroyed) {
		t.Fatal("expected enemy_destroyed event")
	}
	if g.fleet[0].Alive {
		t.Error("alien survived a direct hit")
	}
	want := g.cfg.Gameplay.RowValue * g.cfg.Fleet.Rows
	if g.score != want {
		t.Errorf("score = %d, want %d for a top-row kill", g.score, want)
	}
	if len(g.shots) != 0 {
		t.Error("shot must disappear on impact")
	}
}

func TestKillScoreScalesWithWave(t *testing.T) {
	g := newRunningGame(1)
	g.wave = 3
	target := g.fleet[0]
	r := g.alienRect(target)

	g.shots = append(g.shots, shot{Pos: core.Vec{X: r.Center().X, Y: r.Bottom() + 2}})
	g.Step(frame())

	want := g.cfg.Gameplay.RowValue * g.cfg.Fleet.Rows * 3
	if g.score != want {
		t.Errorf("score = %d, want %d for a top-row kill on wave 3", g.score, want)
	}
}

func TestThinningFleetMarchesFaster(t *testing.T) {
	g := newRunningGame(1)
	for i := range g.fleet {
		g.fleet[i].Alive = i == 0 // One survivor
	}
	g.marchTimer = 1

	g.Step(frame())

	if g.marchTimer != minMarchInterval {
		t.Errorf("marchTimer = %d after thinning to one alien, want floor %d",
			g.marchTimer, minMarchInterval)
	}
}

func TestFleetReversesAndDescendsAtEdge(t *testing.T) {
	g := newRunningGame(1)
	startY := g.fleetY

	// Step until the fleet has reversed at least once.
	for i := 0; i < 5000 && g.fleetDir == 1; i++ {
		g.Step(frame())
	}
	if g.fleetDir != -1 {
		t.Fatal("fleet never reversed at the right edge")
	}
	if g.fleetY != startY+g.cfg.Fleet.StepDown {
		t.Errorf("fleetY = %v, want %v after one descent", g.fleetY, startY+g.cfg.Fleet.StepDown)
	}
}

func TestBombHitCostsLifeAndRespawns(t *testing.T) {
	g := newRunningGame(1)
	g.bombs = append(g.bombs, bomb{Pos: core.Vec{X: g.cannonX, Y: cannonY - 1}})

	res := g.Step(frame())
	if !hasEvent(res.Events, core.EventLifeLost) {
		t.Fatal("expected life_lost event")
	}
	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives-1)
	}
	if g.respawnDelay == 0 {
		t.Error("respawn delay not armed after cannon hit")
	}

	// Respawning cannon cannot shoot.
	g.Step(frame(core.ActionFire))
	if g.shotsFired != 0 {
		t.Error("cannon fired while respawning")
	}
}

func TestFleetReachingCannonEndsGame(t *testing.T) {
	g := newRunningGame(1)
	g.fleetY = cannonY - float64(g.cfg.Fleet.Rows-1)*alienGapY - alienH
	g.marchTimer = 1

	res := g.Step(frame())
	if res.State.Phase != core.PhaseGameOver {
		t.Errorf("phase = %v, want game over when the fleet lands", res.State.Phase)
	}
}

func TestWaveClearAwardsBonusAndSpeedsUp(t *testing.T) {
	g := newRunningGame(1)
	for i := range g.fleet {
		g.fleet[i].Alive = false
	}
	firstInterval := g.marchEvery

	res := g.Step(frame())
	if !hasEvent(res.Events, core.EventLevelClear) {
		t.Fatal("expected level_clear event")
	}
	if g.wave != 2 {
		t.Errorf("wave = %d, want 2", g.wave)
	}
	if g.score < g.cfg.Gameplay.WaveBonus {
		t.Errorf("score = %d, want at least the wave bonus %d", g.score, g.cfg.Gameplay.WaveBonus)
	}
	if aliveCount(g) != g.cfg.Fleet.Rows*g.cfg.Fleet.Cols {
		t.Error("next wave fleet not respawned in full")
	}
	if g.marchEvery >= firstInterval {
		t.Errorf("marchEvery = %d, want faster than %d", g.marchEvery, firstInterval)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func(seed int64) (int, int, float64) {
		g := newRunningGame(seed)
		rng := core.NewRNG(777)
		for i := 0; i < 2000; i++ {
			f := core.NewInputFrame()
			switch rng.Intn(4) {
			case 0:
				f.Set(core.ActionLeft)
			case 1:
				f.Set(core.ActionRight)
			case 2:
				f.Set(core.ActionFire)
			}
			g.Step(f)
		}
		return g.score, aliveCount(g), g.fleetX
	}

	s1, a1, x1 := run(99)
	s2, a2, x2 := run(99)
	if s1 != s2 || a1 != a2 || x1 != x2 {
		t.Errorf("identical runs diverged: (%d,%d,%v) vs (%d,%d,%v)", s1, a1, x1, s2, a2, x2)
	}
}

func TestPauseFreezesFleet(t *testing.T) {
	g := newRunningGame(1)
	g.Step(frame(core.ActionPause))

	x, timer := g.fleetX, g.marchTimer
	for i := 0; i < 50; i++ {
		g.Step(frame())
	}
	if g.fleetX != x || g.marchTimer != timer {
		t.Error("fleet advanced while paused")
	}
}
