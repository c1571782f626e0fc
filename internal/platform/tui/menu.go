package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/core"
	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

// MenuItem is one playable game on the picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best logged run, 0 when unknown
}

var blurbs = map[string]string{
	"fish":   "swim the reef between coral columns",
	"flappy": "the 2D classic, pipes and a ground line",
}

// MenuModel picks a game, or asks for the scoreboard.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	help   help.Model

	done       bool
	chosen     int // Index into items, -1 when nothing was picked
	scoreboard bool
}

// NewMenuModel lists every registered game, with best runs from store
// when one is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			item.Best, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, help: help.New(), chosen: -1}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch menuCommandFor(msg) {
		case menuUp:
			m.cursor = max(0, m.cursor-1)
		case menuDown:
			m.cursor = max(0, min(len(m.items)-1, m.cursor+1))
		case menuSelect:
			if len(m.items) > 0 {
				m.chosen = m.cursor
				m.done = true
				return m, tea.Quit
			}
		case menuScoreboard:
			m.scoreboard = true
			m.done = true
			return m, tea.Quit
		case menuQuit:
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "  F L A P P Y   F I S H  ", w))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.Best > 0 {
			line += fmt.Sprintf("  (best %d)", item.Best)
		}
		if i == m.cursor {
			b.WriteString(centerStyled(menuPickStyle, "> "+line+" <", w))
		} else {
			b.WriteString(centerText(line, w))
		}
		b.WriteString("\n")
		if blurb := blurbs[item.GameID]; blurb != "" {
			b.WriteString(centerStyled(dimStyle, blurb, w))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(centerStyled(dimStyle, m.help.ShortHelpView(menuHelp()), w))
	b.WriteString("\n")
	return b.String()
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult is what the player chose on the picker.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		res.WantsScoreboard = true
	case m.chosen < 0:
		res.Quit = true
	default:
		res.GameID = m.items[m.chosen].GameID
	}
	return res
}
