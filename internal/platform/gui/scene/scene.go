// Package scene turns game snapshots into a flat list of 2D drawing
// primitives in window pixels. It has no graphics dependency so layouts can
// be tested headless; the gui package replays the list onto an ebiten image.
package scene

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Kind selects how a Shape is drawn.
type Kind int

const (
	KindRect   Kind = iota // Filled rectangle X, Y, W, H
	KindCircle             // Filled circle centred on X, Y with radius R
	KindLine               // Line from X, Y to X2, Y2 with width W
	KindText               // Debug text with its top-left corner at X, Y
)

// Debug font cell size in pixels.
const (
	GlyphW = 6
	GlyphH = 16
)

// Shape is one drawing primitive.
type Shape struct {
	Kind   Kind
	X, Y   float32
	X2, Y2 float32
	W, H   float32
	R      float32
	Color  color.RGBA
	Text   string
}

// Scene is a frame's display list, drawn in order over Background.
type Scene struct {
	Width, Height int
	Background    color.RGBA
	Shapes        []Shape
}

func (s *Scene) rect(x, y, w, h float32, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Shapes = append(s.Shapes, Shape{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (s *Scene) circle(x, y, r float32, c color.RGBA) {
	if r <= 0 {
		return
	}
	s.Shapes = append(s.Shapes, Shape{Kind: KindCircle, X: x, Y: y, R: r, Color: c})
}

func (s *Scene) line(x, y, x2, y2, w float32, c color.RGBA) {
	s.Shapes = append(s.Shapes, Shape{Kind: KindLine, X: x, Y: y, X2: x2, Y2: y2, W: w, Color: c})
}

func (s *Scene) text(x, y float32, txt string) {
	s.Shapes = append(s.Shapes, Shape{Kind: KindText, X: x, Y: y, Text: txt, Color: white})
}

// Texts returns every text shape, in order. Handy for tests and logging.
func (s Scene) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.Kind == KindText {
			out = append(out, sh.Text)
		}
	}
	return out
}

// Count returns how many shapes have the given color.
func (s Scene) Count(c color.RGBA) int {
	n := 0
	for _, sh := range s.Shapes {
		if sh.Color == c {
			n++
		}
	}
	return n
}

var (
	white  = color.RGBA{255, 255, 255, 255}
	shadow = color.RGBA{0, 0, 0, 160}
)

// Overlay lines per phase, shared by both variants.
func overlayLines(title string, v core.Phase, score, high int) []string {
	switch v {
	case core.PhaseStart:
		lines := []string{title, "", "SPACE / ENTER / CLICK to start"}
		if high > 0 {
			lines = append(lines, "High Score: "+strconv.Itoa(high))
		}
		return lines
	case core.PhasePaused:
		return []string{"PAUSED", "", "P resume", "SPACE play again"}
	case core.PhaseGameOver:
		return []string{"GAME OVER!", "Score: " + strconv.Itoa(score), "High: " + strconv.Itoa(high), "", "SPACE / R to play again"}
	}
	return nil
}

// panel draws a dimmed box in the middle of the scene with centred lines.
func (s *Scene) panel(lines []string, accent color.RGBA) {
	if len(lines) == 0 {
		return
	}
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}

	w := float32(longest*GlyphW + 4*GlyphW)
	h := float32(len(lines)*GlyphH + GlyphH)
	x := (float32(s.Width) - w) / 2
	y := (float32(s.Height) - h) / 2

	s.rect(x, y, w, h, shadow)
	s.rect(x, y, w, 2, accent)
	s.rect(x, y+h-2, w, 2, accent)

	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		tx := (float32(s.Width) - float32(len(l)*GlyphW)) / 2
		s.text(tx, y+float32(GlyphH/2+i*GlyphH), l)
	}
}

// hud draws the score block in the top-left corner.
func (s *Scene) hud(lines ...string) {
	for i, l := range lines {
		if l == "" {
			continue
		}
		s.text(10, float32(8+i*GlyphH), l)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), lerp(a.A, b.A, t)}
}
