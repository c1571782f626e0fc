package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// styles caches one lipgloss style per palette colour.
var styles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	styles[c] = s
	return s
}

// RenderScreen turns a screen into styled terminal text. Each run of
// same-coloured cells on a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run = append(run, s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(c).Render(string(run)))
		}
	}
	return sb.String()
}
