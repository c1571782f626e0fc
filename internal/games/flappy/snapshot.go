package flappy

import "github.com/vovakirdan/flappy-fish/internal/sim"

// Snapshot captures everything a renderer needs for one frame.
type Snapshot struct {
	sim.View

	ScreenW      int
	ScreenH      int
	PlayHeight   float64
	PipeWidth    int
	PlayerWidth  float64
	PlayerHeight float64
	Multiplier   int
}

// Snapshot returns the current game snapshot. Obstacles are copies.
func (g *Game) Snapshot() Snapshot {
	view := g.machine.View()
	return Snapshot{
		View:         view,
		ScreenW:      g.runtime.ScreenW,
		ScreenH:      g.runtime.ScreenH,
		PlayHeight:   g.rules.PlayHeight(),
		PipeWidth:    g.cfg.Obstacles.PipeWidth,
		PlayerWidth:  g.cfg.Player.Width,
		PlayerHeight: g.cfg.Player.Height,
		Multiplier:   g.rules.Multiplier(view.Elapsed),
	}
}
