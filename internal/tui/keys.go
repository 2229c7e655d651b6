package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTopic key.Binding
	PrevTopic key.Binding
	Topic     key.Binding
	Up        key.Binding
	Down      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	Activate  key.Binding
	Reset     key.Binding
	ResetAll  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTopic: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next topic")),
		PrevTopic: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous topic")),
		Topic:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to topic")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous control")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next control")),
		Decrease:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press / next option")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset topic")),
		ResetAll:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all topics")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTopic, k.Up, k.Down, k.Increase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTopic, k.PrevTopic, k.Topic},
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.Activate, k.Reset, k.ResetAll, k.Help, k.Quit},
	}
}
