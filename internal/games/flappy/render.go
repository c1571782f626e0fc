package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody    = '●'
	PlayerHead    = '▶'
	PlayerHeadUp  = '◥'
	PlayerHeadDn  = '◢'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Render draws the current game state to the screen. World cells map one to
// one onto screen cells; the ground fills the rows below the play band.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	snap := g.Snapshot()
	groundY := int(snap.PlayHeight)

	for y := groundY; y < h; y++ {
		dst.DrawHLine(0, y, w, GroundChar, core.ColorBrown)
	}
	for _, p := range snap.Obstacles {
		g.drawPipe(dst, p.X, p.GapY, snap.GapSize, snap.PipeWidth, groundY)
	}
	g.drawPlayer(dst, snap)
	g.drawHUD(dst, snap)
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, x, gapY, gapSize float64, width, groundY int) {
	left := int(math.Floor(x))
	gapTop := int(math.Floor(gapY))
	bottomY := int(math.Ceil(gapY + gapSize))

	// Draw top section (from top of screen to gap)
	for y := 0; y < gapTop; y++ {
		for dx := 0; dx < width; dx++ {
			dst.SetColor(left+dx, y, PipeChar, core.ColorGreen)
		}
	}
	// Cap on top section (at bottom of top section)
	if gapTop > 0 {
		for dx := 0; dx < width; dx++ {
			dst.SetColor(left+dx, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
	}

	// Draw bottom section (from below gap to ground)
	for y := bottomY; y < groundY; y++ {
		for dx := 0; dx < width; dx++ {
			dst.SetColor(left+dx, y, PipeChar, core.ColorGreen)
		}
	}
	// Cap on bottom section (at top of bottom section)
	if bottomY < groundY {
		for dx := 0; dx < width; dx++ {
			dst.SetColor(left+dx, bottomY, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, snap Snapshot) {
	x := int(math.Round(snap.Agent.X))
	y := int(math.Round(snap.Agent.Y))
	pw := max(1, int(math.Round(snap.PlayerWidth)))
	ph := max(1, int(math.Round(snap.PlayerHeight)))

	// Negative tilt is nose up.
	head := PlayerHead
	switch {
	case snap.Agent.Tilt <= -20:
		head = PlayerHeadUp
	case snap.Agent.Tilt >= 20:
		head = PlayerHeadDn
	}

	for dy := 0; dy < ph; dy++ {
		for dx := 0; dx < pw; dx++ {
			if dx == pw-1 && dy == 0 {
				dst.SetColor(x+dx, y+dy, head, core.ColorBrightYellow)
			} else {
				dst.SetColor(x+dx, y+dy, PlayerBody, core.ColorYellow)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case core.PhaseStart:
		lines := []string{"FLAPPY BIRD", "", "SPACE / ENTER to start"}
		if snap.HighScore > 0 {
			lines = append(lines, fmt.Sprintf("High Score: %d", snap.HighScore))
		}
		dst.DrawPanel(core.ColorBrightYellow, lines...)

	case core.PhasePlaying:
		g.drawScoreLine(dst, snap)

	case core.PhasePaused:
		g.drawScoreLine(dst, snap)
		dst.DrawPanel(core.ColorBrightWhite, "PAUSED", "", "P resume", "SPACE play again")

	case core.PhaseGameOver:
		dst.DrawPanel(core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High: %d", snap.HighScore),
			"",
			"SPACE / R to play again",
		)
	}
}

func (g *Game) drawScoreLine(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	if snap.Multiplier > 1 {
		dst.DrawTextColor(16, 0, fmt.Sprintf(" x%d ", snap.Multiplier), core.ColorBrightYellow)
	}
	if snap.Level > 0 {
		lv := fmt.Sprintf(" Lv %d ", snap.Level+1)
		dst.DrawTextColor(dst.Width()-len(lv)-1, 0, lv, core.ColorYellow)
	}
}
