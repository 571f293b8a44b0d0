package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/lightmixer/internal/config"
)

// KeyMap defines key bindings for the dashboard
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Decrease, k.Increase},
		{k.Quit},
	}
}

// DefaultKeyMap returns the vi-style bindings plus arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "dimmer"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "brighter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewKeyMap returns the default bindings with any configured overrides
// applied. A nil prefs or an empty list keeps the default for that action.
func NewKeyMap(prefs *config.KeyPrefs) KeyMap {
	km := DefaultKeyMap()
	if prefs == nil {
		return km
	}

	override(&km.Up, prefs.Up, "up")
	override(&km.Down, prefs.Down, "down")
	override(&km.Decrease, prefs.Decrease, "dimmer")
	override(&km.Increase, prefs.Increase, "brighter")
	override(&km.Quit, prefs.Quit, "quit")
	return km
}

func override(b *key.Binding, keys []string, desc string) {
	if len(keys) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}
