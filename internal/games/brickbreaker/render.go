package brickbreaker

import (
	"fmt"
	"strings"

	"github.com/devpulse/arcade/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Render implements registry.Game. The simulation runs in world units;
// rendering scales everything to whatever cell grid the platform hands
// us. Render is a pure read of simulation state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	fieldH := h - hudRows
	if w < 10 || fieldH < 5 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	sx := float64(w) / g.cfg.World.Width
	sy := float64(fieldH) / g.cfg.World.Height

	g.renderHUD(dst, w)

	for i := range g.bricks {
		br := &g.bricks[i]
		x0 := int(br.Rect.X * sx)
		x1 := int(br.Rect.Right() * sx)
		y := hudRows + int(br.Rect.Center().Y*sy)
		for x := x0; x < x1-1; x++ {
			dst.SetColored(x, y, '█', brickColor(br.Hits))
		}
	}

	for _, shot := range g.lasers {
		dst.SetColored(int(shot.Pos.X*sx), hudRows+int(shot.Pos.Y*sy), '|', core.ColorBrightRed)
	}

	for _, d := range g.powerups.pickups {
		dst.SetColored(int(d.Pos.X*sx), hudRows+int(d.Pos.Y*sy), d.Type.Glyph(), core.ColorBrightMagenta)
	}

	px0 := int(g.paddle.X * sx)
	px1 := int(g.paddle.Right() * sx)
	py := hudRows + int(g.paddle.Y*sy)
	paddleColor := core.ColorBrightCyan
	if g.powerups.Active(PowerUpLaser) {
		paddleColor = core.ColorBrightRed
	}
	for x := px0; x < px1; x++ {
		dst.SetColored(x, py, '▀', paddleColor)
	}

	for _, b := range g.balls {
		dst.SetColored(int(b.Pos.X*sx), hudRows+int(b.Pos.Y*sy), '●', core.ColorBrightYellow)
	}

	switch g.phase {
	case core.PhaseNotStarted:
		g.renderOverlay(dst, "BRICK BREAKER", "space to launch")
	case core.PhasePaused:
		g.renderOverlay(dst, "PAUSED", "p to resume")
	case core.PhaseGameOver:
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("score %d - r to restart", g.score))
	}
}

func (g *Game) renderHUD(dst *core.Screen, w int) {
	left := fmt.Sprintf(" score %d  lv %d", g.score, g.level)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	if g.combo > 1 {
		dst.DrawTextColored(len(left)+2, 0, fmt.Sprintf("x%d", g.combo), core.ColorBrightYellow)
	}

	var effects []string
	for _, e := range g.powerups.effects {
		effects = append(effects, e.Type.String())
	}
	right := strings.Repeat("♥", core.Max(g.lives, 0))
	if len(effects) > 0 {
		right = strings.Join(effects, " ") + "  " + right
	}
	dst.DrawTextColored(w-len([]rune(right))-1, 0, right, core.ColorBrightRed)
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := core.Max(len(title), len(subtitle)) + 6
	boxH := 5
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ')
	dst.DrawBox(x, y, boxW, boxH)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}

// brickColor maps remaining durability to a color tier.
func brickColor(hits int) core.Color {
	switch {
	case hits >= 3:
		return core.ColorBrightRed
	case hits == 2:
		return core.ColorOrange
	default:
		return core.ColorBrightGreen
	}
}
