package sfx

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func samples(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return out
}

func TestPCMLength(t *testing.T) {
	tests := []struct {
		name string
		tone Tone
		rate int
		want int
	}{
		{"flap", Flap, SampleRate, int(Flap.Seconds*SampleRate) * 4},
		{"half second at 8k", Tone{StartHz: 100, EndHz: 50, Seconds: 0.5, Volume: 1}, 8000, 4000 * 4},
		{"empty", Tone{Seconds: 0}, SampleRate, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.tone.PCM(tt.rate)); got != tt.want {
				t.Errorf("len = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestPCMDeterministic(t *testing.T) {
	if !bytes.Equal(Hit.PCM(SampleRate), Hit.PCM(SampleRate)) {
		t.Error("rendering the same tone twice should give identical bytes")
	}
}

func TestPCMShape(t *testing.T) {
	tone := Tone{StartHz: 440, EndHz: 440, Seconds: 0.1, Volume: 0.5}
	s := samples(tone.PCM(SampleRate))

	vol := 0.5
	limit := int16(vol*32767) + 1
	peak := int16(0)
	for i := 0; i < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("sample %d: left %d != right %d", i/2, s[i], s[i+1])
		}
		if s[i] > limit || s[i] < -limit {
			t.Fatalf("sample %d = %d exceeds volume", i/2, s[i])
		}
		peak = max(peak, s[i])
	}
	if peak < 1000 {
		t.Errorf("peak = %d, expected an audible tone", peak)
	}

	tail := s[len(s)-2]
	if tail > 50 || tail < -50 {
		t.Errorf("last sample = %d, expected near silence", tail)
	}
}

func TestPCMClampsVolume(t *testing.T) {
	loud := Tone{StartHz: 300, EndHz: 300, Seconds: 0.05, Volume: 4}
	for i, v := range samples(loud.PCM(SampleRate)) {
		if v == -32768 {
			t.Fatalf("sample %d overflowed", i)
		}
	}
}
