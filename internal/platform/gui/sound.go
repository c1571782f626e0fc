package gui

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/flappy-fish/internal/platform/gui/sfx"
)

type sound int

const (
	soundFlap sound = iota
	soundScore
	soundHit
)

// sounds holds one pre-rendered player per effect.
type sounds struct {
	players map[sound]*audio.Player
}

func newSounds() *sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sfx.SampleRate)
	}
	rate := ctx.SampleRate()

	return &sounds{players: map[sound]*audio.Player{
		soundFlap:  ctx.NewPlayerFromBytes(sfx.Flap.PCM(rate)),
		soundScore: ctx.NewPlayerFromBytes(sfx.Score.PCM(rate)),
		soundHit:   ctx.NewPlayerFromBytes(sfx.Hit.PCM(rate)),
	}}
}

// play restarts the effect from the top. A nil set is muted.
func (s *sounds) play(id sound) {
	if s == nil {
		return
	}
	p := s.players[id]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
