package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/flappy"
)

// Sky palette.
var (
	Sky      = color.RGBA{112, 197, 206, 255}
	Pipe     = color.RGBA{94, 180, 54, 255}
	PipeEdge = color.RGBA{60, 120, 36, 255}
	Ground   = color.RGBA{222, 216, 149, 255}
	Grass    = color.RGBA{110, 190, 60, 255}
	Bird     = color.RGBA{250, 205, 40, 255}
	Beak     = color.RGBA{245, 110, 40, 255}
)

// CellSize is the number of pixels per playfield cell.
const CellSize = 12

// Cells converts a window size to playfield cells.
func Cells(w, h int) (int, int) {
	return max(1, w/CellSize), max(1, h/CellSize)
}

// Flappy builds the sky frame. World cells scale by CellSize.
func Flappy(snap flappy.Snapshot, w, h int) Scene {
	s := Scene{Width: w, Height: h, Background: Sky}
	c := float32(CellSize)

	groundY := float32(snap.PlayHeight) * c
	pw := float32(snap.PipeWidth) * c

	for _, o := range snap.Obstacles {
		x := float32(o.X) * c
		gapTop := float32(o.GapY) * c
		gapBottom := float32(o.GapY+snap.GapSize) * c

		s.rect(x, 0, pw, gapTop, Pipe)
		s.rect(x-2, gapTop-c/2, pw+4, c/2, PipeEdge)
		s.rect(x, gapBottom, pw, groundY-gapBottom, Pipe)
		s.rect(x-2, gapBottom, pw+4, c/2, PipeEdge)
	}

	s.rect(0, groundY, float32(w), float32(h)-groundY, Ground)
	s.rect(0, groundY, float32(w), 3, Grass)

	// Bird centred in its box, beak turned by the tilt.
	bw, bh := float32(snap.PlayerWidth)*c, float32(snap.PlayerHeight)*c
	cx := float32(snap.Agent.X)*c + bw/2
	cy := float32(snap.Agent.Y)*c + bh/2
	r := min(bw, bh) / 2
	heading := snap.Agent.Tilt * math.Pi / 180
	nx, ny := float32(math.Cos(heading)), float32(math.Sin(heading))

	s.circle(cx, cy, r, Bird)
	s.line(cx+nx*r*0.6, cy+ny*r*0.6, cx+nx*r*1.4, cy+ny*r*1.4, r*0.5, Beak)
	s.circle(cx+nx*r*0.4, cy+ny*r*0.4-r*0.4, max(1, r*0.15), FishEye)

	switch snap.Phase {
	case core.PhasePlaying, core.PhasePaused:
		mult := ""
		if snap.Multiplier > 1 {
			mult = fmt.Sprintf("x%d", snap.Multiplier)
		}
		s.hud(fmt.Sprintf("Score: %d", snap.Score), fmt.Sprintf("High: %d", snap.HighScore), mult)
	}
	s.panel(overlayLines("FLAPPY BIRD", snap.Phase, snap.Score, snap.HighScore), Beak)
	return s
}
