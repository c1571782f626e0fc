// Package sfx synthesises the short sound effects played by the window
// front end. Output is 16-bit little-endian stereo PCM, the format ebiten's
// audio players accept directly.
package sfx

import (
	"encoding/binary"
	"math"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = 44100

// Tone is a sine sweep with an exponential decay.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64 // 0..1
}

// Effects used by the games.
var (
	Flap  = Tone{StartHz: 520, EndHz: 880, Seconds: 0.08, Volume: 0.25}
	Score = Tone{StartHz: 880, EndHz: 1320, Seconds: 0.12, Volume: 0.2}
	Hit   = Tone{StartHz: 220, EndHz: 55, Seconds: 0.35, Volume: 0.5}
)

// PCM renders the tone at the given sample rate.
func (t Tone) PCM(sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += 2 * math.Pi * freq / float64(sampleRate)

		// Decays to silence on the last sample.
		env := math.Exp(-4*p) * (1 - p)
		v := int16(math.Sin(phase) * env * vol * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
