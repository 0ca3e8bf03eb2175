// Package minesweeper implements cursor-driven minesweeper. Mines are
// placed on the first reveal, never under it or its neighbors, so the
// opening move always flood-reveals a region. A tick-based timer feeds
// the win bonus: faster clears score higher.
package minesweeper

import (
	"fmt"

	"github.com/devpulse/arcade/internal/config"
	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/registry"
)

func init() {
	registry.Register("minesweeper", func() registry.Game {
		return New()
	})
}

// cursorCooldownTicks throttles held movement keys to a readable pace.
const cursorCooldownTicks = 5

// cell is one board position.
type cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

// Game is the minesweeper simulation.
type Game struct {
	cfg     config.MinesweeperConfig
	runtime core.RuntimeConfig
	rng     *core.RNG

	phase core.Phase
	tick  int
	score int

	board  [][]cell
	placed bool // Mines are placed lazily at the first reveal

	curX, curY int
	moveCool   int

	revealed int
	flags    int
	won      bool

	events []core.Event
}

// New creates a minesweeper game with configuration loaded from the
// standard search path.
func New() *Game {
	cfg, _ := config.LoadMinesweeper("")
	return NewWithConfig(cfg)
}

// NewWithConfig creates a minesweeper game with an explicit config.
func NewWithConfig(cfg config.MinesweeperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "minesweeper" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Minesweeper" }

// Configure reloads the config from a custom path and applies a
// difficulty preset.
func (g *Game) Configure(customPath, difficulty string) error {
	cfg, err := config.LoadMinesweeper(customPath)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(difficulty); preset != "" {
		config.ApplyMinesweeperPreset(&cfg, preset)
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
	g.placed = false
	g.revealed = 0
	g.flags = 0
	g.won = false
	g.moveCool = 0
	g.curX = g.cfg.Cols / 2
	g.curY = g.cfg.Rows / 2
	g.events = nil

	g.board = make([][]cell, g.cfg.Rows)
	for y := range g.board {
		g.board[y] = make([]cell, g.cfg.Cols)
	}
}

// State implements registry.Game. Minesweeper has no levels.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Level: 0, Phase: g.phase}
}

// Metadata implements registry.Metadata.
func (g *Game) Metadata() map[string]any {
	return map[string]any{
		"mines":    g.cfg.Mines,
		"revealed": g.revealed,
		"flags":    g.flags,
		"seconds":  g.elapsedSeconds(),
		"won":      g.won,
	}
}

func (g *Game) elapsedSeconds() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.tick / rate
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
		// Any board interaction starts the clock.
		if len(in.Actions) > 0 && !in.Has(core.ActionQuit) && !in.Has(core.ActionBack) {
			g.phase = core.PhaseRunning
		} else {
			return g.result()
		}
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

	if g.moveCool > 0 {
		g.moveCool--
	}
	g.moveCursor(in)

	if in.Has(core.ActionFlag) {
		g.toggleFlag()
	}
	if in.Has(core.ActionFire) {
		g.reveal(g.curX, g.curY)
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) moveCursor(in core.InputFrame) {
	if g.moveCool > 0 {
		return
	}
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	g.curX = core.Clamp(g.curX+dx, 0, g.cfg.Cols-1)
	g.curY = core.Clamp(g.curY+dy, 0, g.cfg.Rows-1)
	g.moveCool = cursorCooldownTicks
}

func (g *Game) toggleFlag() {
	c := &g.board[g.curY][g.curX]
	if c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		g.flags++
	} else {
		g.flags--
	}
}

// placeMines seeds the board, excluding the 3x3 block around the first
// reveal so the opening cell always has zero adjacency.
func (g *Game) placeMines(safeX, safeY int) {
	placed := 0
	for placed < g.cfg.Mines {
		x := g.rng.Intn(g.cfg.Cols)
		y := g.rng.Intn(g.cfg.Rows)
		if g.board[y][x].Mine {
			continue
		}
		if core.Abs(x-safeX) <= 1 && core.Abs(y-safeY) <= 1 {
			continue
		}
		g.board[y][x].Mine = true
		placed++
	}

	for y := 0; y < g.cfg.Rows; y++ {
		for x := 0; x < g.cfg.Cols; x++ {
			g.board[y][x].Adjacent = g.countAdjacent(x, y)
		}
	}
	g.placed = true
}

func (g *Game) countAdjacent(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= g.cfg.Cols || ny < 0 || ny >= g.cfg.Rows {
				continue
			}
			if g.board[ny][nx].Mine {
				n++
			}
		}
	}
	return n
}

// reveal opens a cell. Flagged cells are protected. A mine ends the
// game; a zero-adjacency cell flood-reveals its region.
func (g *Game) reveal(x, y int) {
	c := &g.board[y][x]
	if c.Revealed || c.Flagged {
		return
	}
	if !g.placed {
		g.placeMines(x, y)
	}

	if c.Mine {
		g.loseToMine()
		return
	}

	g.flood(x, y)
	g.emit(core.EventCellRevealed)

	if g.revealed == g.cfg.Rows*g.cfg.Cols-g.cfg.Mines {
		g.win()
	}
}

// flood reveals a cell and, for zero-adjacency cells, spreads to all
// neighbors iteratively.
func (g *Game) flood(x, y int) {
	stack := []struct{ x, y int }{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &g.board[p.y][p.x]
		if c.Revealed || c.Mine {
			continue
		}
		if c.Flagged {
			c.Flagged = false
			g.flags--
		}
		c.Revealed = true
		g.revealed++
		g.score += g.cfg.RevealValue

		if c.Adjacent != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || nx >= g.cfg.Cols || ny < 0 || ny >= g.cfg.Rows {
					continue
				}
				if !g.board[ny][nx].Revealed {
					stack = append(stack, struct{ x, y int }{nx, ny})
				}
			}
		}
	}
}

func (g *Game) loseToMine() {
	// Show the full minefield on loss.
	for y := range g.board {
		for x := range g.board[y] {
			if g.board[y][x].Mine {
				g.board[y][x].Revealed = true
			}
		}
	}
	g.phase = core.PhaseGameOver
	g.emit(core.EventMineTripped)
	g.emit(core.EventGameOver)
}

// win awards the time bonus: the configured maximum minus a per-second
// decay, never negative.
func (g *Game) win() {
	bonus := g.cfg.WinBonusMax - g.elapsedSeconds()*g.cfg.WinBonusPer
	if bonus > 0 {
		g.score += bonus
	}
	g.won = true
	g.phase = core.PhaseGameOver
	g.emit(core.EventLevelClear)
	g.emit(core.EventGameOver)
}

// Render implements registry.Game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < g.cfg.Cols+2 || h < g.cfg.Rows+3 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	hud := fmt.Sprintf(" score %d  mines %d  flags %d  time %ds",
		g.score, g.cfg.Mines, g.flags, g.elapsedSeconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	offX := (w - g.cfg.Cols) / 2
	offY := 2

	for y := 0; y < g.cfg.Rows; y++ {
		for x := 0; x < g.cfg.Cols; x++ {
			c := g.board[y][x]
			r, col := cellGlyph(c)
			dst.SetColored(offX+x, offY+y, r, col)
		}
	}

	// Cursor drawn over the cell with brackets.
	dst.SetColored(offX+g.curX-1, offY+g.curY, '[', core.ColorBrightYellow)
	dst.SetColored(offX+g.curX+1, offY+g.curY, ']', core.ColorBrightYellow)

	switch g.phase {
	case core.PhaseNotStarted:
		dst.DrawTextCentered(h-1, "move to start, space reveals, f flags")
	case core.PhasePaused:
		dst.DrawTextCentered(h-1, "PAUSED")
	case core.PhaseGameOver:
		msg := "BOOM - r to restart"
		if g.won {
			msg = fmt.Sprintf("CLEARED in %ds - score %d - r to restart", g.elapsedSeconds(), g.score)
		}
		dst.DrawTextCentered(h-1, msg)
	}
}

func cellGlyph(c cell) (rune, core.Color) {
	switch {
	case c.Flagged:
		return '⚑', core.ColorBrightRed
	case !c.Revealed:
		return '·', core.ColorGray
	case c.Mine:
		return '✱', core.ColorBrightRed
	case c.Adjacent == 0:
		return ' ', core.ColorDefault
	default:
		return rune('0' + c.Adjacent), adjacencyColor(c.Adjacent)
	}
}

func adjacencyColor(n int) core.Color {
	switch n {
	case 1:
		return core.ColorBrightBlue
	case 2:
		return core.ColorBrightGreen
	case 3:
		return core.ColorBrightRed
	default:
		return core.ColorBrightMagenta
	}
}
