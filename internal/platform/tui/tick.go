// Package tui provides the Bubble Tea integration for the Flappy Fish games.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameTime caps a single step so a stalled terminal resumes without a
// long catch-up. The machine splits whatever is left into short substeps.
const MaxFrameTime = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks clamped to
// [0, MaxFrameTime]. A zero prev means the first tick, which uses fallback.
func frameDelta(prev, now time.Time, fallback float64) float64 {
	if prev.IsZero() {
		return fallback
	}
	dt := now.Sub(prev).Seconds()
	switch {
	case dt < 0:
		return 0
	case dt > MaxFrameTime:
		return MaxFrameTime
	}
	return dt
}
