package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/games/fish"
)

// Reef palette.
var (
	WaterDeep    = color.RGBA{6, 28, 66, 255}
	WaterShallow = color.RGBA{28, 98, 150, 255}
	Sand         = color.RGBA{194, 160, 102, 255}
	Coral        = color.RGBA{240, 110, 90, 255}
	CoralShade   = color.RGBA{176, 70, 62, 255}
	CoralRim     = color.RGBA{255, 170, 120, 255}
	FishOrange   = color.RGBA{255, 150, 30, 255}
	FishFin      = color.RGBA{255, 200, 80, 255}
	FishEye      = color.RGBA{20, 20, 30, 255}
	BubbleTint   = color.RGBA{200, 235, 255, 255}
)

// depthFocal is the perspective distance used to shrink far bubbles.
const depthFocal = 40.0

// FishView maps reef world coordinates onto window pixels. Y grows up in
// the world and down on screen; the fish sits a fifth in from the left.
type FishView struct {
	world  config.FishWorld
	w, h   int
	scale  float64 // Pixels per world unit
	fishPx float64
}

// NewFishView builds a projection for a w by h window.
func NewFishView(world config.FishWorld, w, h int) FishView {
	span := world.Ceiling - world.Floor
	if span <= 0 {
		span = 1
	}
	return FishView{
		world:  world,
		w:      w,
		h:      h,
		scale:  float64(h) / span,
		fishPx: float64(w) / 5,
	}
}

// X converts a world x to a pixel column.
func (v FishView) X(x float64) float32 {
	return float32(v.fishPx + (x-v.world.FishX)*v.scale)
}

// Y converts a world height to a pixel row.
func (v FishView) Y(y float64) float32 {
	return float32(float64(v.h) - (y-v.world.Floor)*v.scale)
}

// Len converts a world length to pixels.
func (v FishView) Len(d float64) float32 {
	return float32(d * v.scale)
}

// Fish builds the reef frame for a w by h window.
func Fish(snap fish.Snapshot, world config.FishWorld, w, h int) Scene {
	v := NewFishView(world, w, h)
	s := Scene{Width: w, Height: h, Background: WaterDeep}

	// Light falls off with depth.
	const bands = 8
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		y := float32(h) * float32(i) / bands
		s.rect(0, y, float32(w), float32(h)/bands+1, mix(WaterShallow, WaterDeep, t))
	}

	for _, b := range snap.Bubbles {
		depth := depthFocal / (depthFocal + b.Z + 20)
		c := BubbleTint
		c.A = uint8(255 * math.Min(1, b.Alpha*depth))
		s.circle(v.X(b.X), v.Y(b.Y), float32(math.Max(1, float64(v.Len(b.Size))*depth)), c)
	}

	for _, o := range snap.Obstacles {
		drawColumn(&s, v, o.X, o.GapY, snap.GapSize)
	}

	s.rect(0, v.Y(world.Floor)-v.Len(0.3), float32(w), v.Len(0.3)+1, Sand)
	drawFish(&s, v, snap)

	switch snap.Phase {
	case core.PhasePlaying, core.PhasePaused:
		lv := ""
		if snap.Level > 0 {
			lv = fmt.Sprintf("Level %d", snap.Level+1)
		}
		s.hud(fmt.Sprintf("Score: %d", snap.Score), fmt.Sprintf("High: %d", snap.HighScore), lv)
	}
	s.panel(overlayLines("FLAPPY FISH", snap.Phase, snap.Score, snap.HighScore), FishOrange)
	return s
}

func drawColumn(s *Scene, v FishView, x, gapY, gap float64) {
	r := v.world.ObstacleRadius
	left := v.X(x - r)
	width := v.Len(2 * r)
	shade := width / 4

	lowTop, lowBottom := v.Y(gapY), v.Y(v.world.Floor)
	highTop, highBottom := v.Y(v.world.ColumnHeight), v.Y(gapY+gap)

	for _, seg := range [][2]float32{{lowTop, lowBottom}, {highTop, highBottom}} {
		top, bottom := seg[0], seg[1]
		s.rect(left, top, width, bottom-top, Coral)
		s.rect(left+width-shade, top, shade, bottom-top, CoralShade)
	}
	s.rect(left-2, lowTop-3, width+4, 3, CoralRim)
	s.rect(left-2, highBottom, width+4, 3, CoralRim)
}

func drawFish(s *Scene, v FishView, snap fish.Snapshot) {
	cx, cy := v.X(snap.Agent.X), v.Y(snap.Agent.Y)
	body := v.Len(v.world.FishRadius)

	// Positive tilt is nose down, which is +y on screen.
	heading := snap.Agent.Tilt * math.Pi / 180
	nx, ny := float32(math.Cos(heading)), float32(math.Sin(heading))

	tail := heading + math.Pi + snap.TailAngle
	tx, ty := float32(math.Cos(tail)), float32(math.Sin(tail))
	s.line(cx, cy, cx+tx*body*2, cy+ty*body*2, body*0.6, FishFin)

	s.circle(cx, cy, body, FishOrange)
	s.circle(cx+nx*body*0.7, cy+ny*body*0.7, body*0.7, FishOrange)

	fin := heading + math.Pi/2 + snap.FinAngle
	s.line(cx, cy, cx+float32(math.Cos(fin))*body, cy+float32(math.Sin(fin))*body, body*0.3, FishFin)

	s.circle(cx+nx*body*1.0-ny*body*0.3, cy+ny*body*1.0+nx*body*0.3-body*0.6, max(1, body*0.15), FishEye)
}
