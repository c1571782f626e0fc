package fish

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Visual characters for rendering
const (
	ColumnChar    = '█'
	ColumnCapTop  = '▄'
	ColumnCapLow  = '▀'
	SeabedChar    = '▓'
	SurfaceChar   = '~'
	SeaweedLeft   = '('
	SeaweedRight  = ')'
	SeaweedStill  = '|'
	BubbleSmall   = '.'
	BubbleLarge   = 'o'
	FishBody      = '('
	FishHead      = '>'
	FishTailUp    = '>'
	FishTailDown  = '}'
	seaweedStride = 5.0
)

// projection maps world coordinates onto terminal cells. Row 0 is the HUD,
// the last row is the seabed and the fish column sits a sixth in from the left.
type projection struct {
	w, h    int
	floor   float64
	fishX   float64
	fishCol int
	sx, sy  float64 // Cells per world unit
}

func (g *Game) projection(w, h int) projection {
	world := g.cfg.World
	sy := float64(h-2) / (world.Ceiling - world.Floor)
	return projection{
		w:       w,
		h:       h,
		floor:   world.Floor,
		fishX:   world.FishX,
		fishCol: max(4, w/6),
		sx:      2 * sy, // Terminal cells are about twice as tall as wide
		sy:      sy,
	}
}

func (p projection) col(x float64) int {
	return p.fishCol + int(math.Round((x-p.fishX)*p.sx))
}

func (p projection) row(y float64) int {
	return p.h - 1 - int(math.Round((y-p.floor)*p.sy))
}

// worldY returns the world height at the centre of a row.
func (p projection) worldY(row int) float64 {
	return p.floor + float64(p.h-1-row)/p.sy
}

// Render draws the reef as a side view.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	p := g.projection(w, h)
	snap := g.Snapshot()

	dst.DrawHLine(0, 1, w, SurfaceChar, core.ColorBrightBlue)
	g.drawBubbles(dst, p, snap.Bubbles)
	g.drawSeaweed(dst, p, snap.Clock)
	dst.DrawHLine(0, h-1, w, SeabedChar, core.ColorBrown)

	for _, o := range snap.Obstacles {
		g.drawColumn(dst, p, o.X, o.GapY, snap.GapSize)
	}
	g.drawFish(dst, p, snap)
	g.drawHUD(dst, snap)
}

func (g *Game) drawBubbles(dst *core.Screen, p projection, bubbles []Bubble) {
	for _, b := range bubbles {
		r := p.row(b.Y)
		if r <= 1 || r >= p.h-1 {
			continue
		}
		ch := BubbleSmall
		if b.Size > 0.2 {
			ch = BubbleLarge
		}
		c := core.ColorCyan
		if b.Alpha > 0.8 {
			c = core.ColorBrightWhite
		}
		dst.SetColor(p.col(b.X), r, ch, c)
	}
}

func (g *Game) drawSeaweed(dst *core.Screen, p projection, clock float64) {
	// Anchor the strands to world positions so they stay put while columns scroll.
	left := p.fishX - float64(p.fishCol)/p.sx
	first := math.Floor(left/seaweedStride) * seaweedStride
	for x := first; p.col(x) < p.w; x += seaweedStride {
		i := int(x / seaweedStride)
		sway := math.Sin(clock*2 + float64(i))
		ch := SeaweedStill
		switch {
		case sway > 0.3:
			ch = SeaweedRight
		case sway < -0.3:
			ch = SeaweedLeft
		}
		c := p.col(x)
		dst.SetColor(c, p.h-2, SeaweedStill, core.ColorGreen)
		dst.SetColor(c, p.h-3, ch, core.ColorBrightGreen)
	}
}

func (g *Game) drawColumn(dst *core.Screen, p projection, x, gapY, gapSize float64) {
	radius := g.cfg.World.ObstacleRadius
	left, right := p.col(x-radius), p.col(x+radius)
	if right <= left {
		right = left + 1
	}
	if right < 0 || left >= p.w {
		return
	}

	top := g.cfg.World.ColumnHeight
	gapTop := gapY + gapSize
	lowCap, highCap := -1, -1

	for r := 2; r < p.h-1; r++ {
		y := p.worldY(r)
		switch {
		case y < gapY:
			if lowCap < 0 {
				lowCap = r
			}
		case y > gapTop && y <= top:
			highCap = r
		default:
			continue
		}
		for c := left; c < right; c++ {
			dst.SetColor(c, r, ColumnChar, core.ColorCoral)
		}
	}

	// Rims on the gap edges
	for c := left; c < right; c++ {
		if lowCap >= 0 {
			dst.SetColor(c, lowCap, ColumnCapLow, core.ColorOrange)
		}
		if highCap >= 0 {
			dst.SetColor(c, highCap, ColumnCapTop, core.ColorOrange)
		}
	}
}

func (g *Game) drawFish(dst *core.Screen, p projection, snap Snapshot) {
	r := p.row(snap.Agent.Y)
	c := p.fishCol

	// Nose follows the tilt: negative tilt is nose up.
	headRow := r
	switch {
	case snap.Agent.Tilt <= -20:
		headRow = r - 1
	case snap.Agent.Tilt >= 20:
		headRow = r + 1
	}

	tail := FishTailUp
	if snap.TailAngle < 0 {
		tail = FishTailDown
	}

	dst.SetColor(c-1, r, tail, core.ColorOrange)
	dst.SetColor(c, r, FishBody, core.ColorOrange)
	dst.SetColor(c+1, headRow, FishHead, core.ColorBrightYellow)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case core.PhaseStart:
		lines := []string{"FLAPPY FISH", "", "SPACE / ENTER to start"}
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
			"GAME OVER!",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High: %d", snap.HighScore),
			"",
			"SPACE / R to play again",
		)
	}
}

func (g *Game) drawScoreLine(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColor(14, 0, fmt.Sprintf(" High: %d ", snap.HighScore), core.ColorGray)
	if snap.Level > 0 {
		lv := fmt.Sprintf(" Lv %d ", snap.Level+1)
		dst.DrawTextColor(dst.Width()-len(lv)-1, 0, lv, core.ColorYellow)
	}
}
