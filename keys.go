package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

type keyMap struct {
	MoveLeft   key.Binding
	MoveRight  key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Difficulty key.Binding
	Level      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		MoveLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "space", "up", "k"),
			key.WithHelp("space", "rotate"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "play/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick difficulty"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.SoftDrop, k.Rotate, k.Pause, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.SoftDrop, k.Rotate},
		{k.Pause, k.Reset, k.Quit},
		{k.Difficulty, k.Level, k.Help},
	}
}

// levelForKey maps the digit keys to presets in menu order.
func levelForKey(s string) (tetris.Difficulty, bool) {
	levels := tetris.Difficulties()
	if len(s) != 1 || s[0] < '1' || int(s[0]-'1') >= len(levels) {
		return "", false
	}
	return levels[s[0]-'1'], true
}
