package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-fish/internal/registry"
	"github.com/vovakirdan/flappy-fish/internal/storage"
)

// Runs loaded per view.
const scoreboardLimit = 50

// scoreboardKeys are the scoreboard bindings; they double as the help bar.
type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Order  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Order, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Game:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch game")),
	Order:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "top/recent")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists logged runs per game, best first or newest first.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	game   int
	recent bool

	stats *storage.GameStats
	best  int // Persisted best score, which survives a history reset
	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

func newScoreTable(width, height int) table.Model {
	date := 12
	if width > 60 {
		date = 16
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Lv", Width: 3},
			{Title: "Time", Width: 6},
			{Title: "Date", Width: date},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("30"))
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload fetches runs and stats for the current game and order.
func (m *ScoreboardModel) reload() {
	m.stats, m.best = nil, 0
	var runs []storage.ScoreEntry

	if id := m.gameID(); m.store != nil && id != "" {
		fetch := m.store.TopScores
		if m.recent {
			fetch = m.store.RecentScores
		}
		runs, _ = fetch(id, scoreboardLimit)
		m.stats, _ = m.store.GetGameStats(id)
		m.best, _ = m.store.BestScore(id)
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level + 1),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := defaultScoreboardKeys
		switch {
		case key.Matches(msg, k.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, k.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, k.Game):
			if n := len(m.games); n > 0 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = n - 1
				}
				m.game = (m.game + step) % n
				m.reload()
			}
			return m, nil
		case key.Matches(msg, k.Order):
			m.recent = !m.recent
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newScoreTable(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.game].Title
	}
	order := "best runs"
	if m.recent {
		order = "latest runs"
	}

	var b strings.Builder
	b.WriteString(centerStyled(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")), title, m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle, order, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.table.Rows()) == 0 {
		empty := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Padding(1, 3)
		b.WriteString(centerText(box.Render(empty.Render("No scores recorded yet.\nFlap through a few gaps first!")), m.width))
	} else {
		b.WriteString(centerText(box.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerStyled(dimStyle, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle, m.help.View(defaultScoreboardKeys), m.width))
	return b.String()
}

var (
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("30")).Padding(0, 1)
	tabStyle       = dimStyle.Padding(0, 1)
)

// tabs renders one tab per game, the current one highlighted.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// statsLine summarizes every logged run of the current game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	best := max(m.stats.HighScore, m.best)
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.1f  |  %s played",
		m.stats.GamesCount, best, m.stats.AvgScore, formatDuration(m.stats.TotalTime))
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack is true when they asked for the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.goingBack, nil
}
