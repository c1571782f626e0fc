package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// actionKey binds keys to a game action.
type actionKey struct {
	key.Binding
	action core.Action
}

// gameKeys lists the in-game bindings in help order.
var gameKeys = []actionKey{
	{key.NewBinding(key.WithKeys(" ", "up", "w"), key.WithHelp("space", "flap")), core.ActionJump},
	{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")), core.ActionConfirm},
	{key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")), core.ActionPause},
	{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
	{key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")), core.ActionBack},
	{key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")), core.ActionQuit},
}

// screenshotKey is handled by the model rather than the game.
var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot"))

// gameAction returns the action bound to msg, or ActionNone.
func gameAction(msg tea.KeyMsg) core.Action {
	for _, k := range gameKeys {
		if key.Matches(msg, k.Binding) {
			return k.action
		}
	}
	return core.ActionNone
}

// menuCommand is what a key does on the game picker.
type menuCommand int

const (
	menuNone menuCommand = iota
	menuUp
	menuDown
	menuSelect
	menuScoreboard
	menuQuit
)

type menuKey struct {
	key.Binding
	cmd menuCommand
}

var menuKeys = []menuKey{
	{key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")), menuUp},
	{key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")), menuDown},
	{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")), menuSelect},
	{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")), menuScoreboard},
	{key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")), menuQuit},
}

func menuCommandFor(msg tea.KeyMsg) menuCommand {
	for _, k := range menuKeys {
		if key.Matches(msg, k.Binding) {
			return k.cmd
		}
	}
	return menuNone
}

// menuHelp lists the picker bindings for the help bar.
func menuHelp() []key.Binding {
	out := make([]key.Binding, len(menuKeys))
	for i, k := range menuKeys {
		out[i] = k.Binding
	}
	return out
}
