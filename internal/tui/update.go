package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	"github.com/alexisbeaulieu97/cssplayground/internal/stylesheet"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTopic):
		m.selectTopic((m.active + 1) % len(m.topics))
	case key.Matches(msg, m.keys.PrevTopic):
		m.selectTopic((m.active - 1 + len(m.topics)) % len(m.topics))
	case key.Matches(msg, m.keys.Topic):
		m.selectTopic(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Decrease):
		m.interact(func(c playground.Control) error { return c.Nudge(-1) })
	case key.Matches(msg, m.keys.Increase):
		m.interact(func(c playground.Control) error { return c.Nudge(1) })
	case key.Matches(msg, m.keys.Activate):
		m.interact(func(c playground.Control) error {
			if c.Kind == playground.KindRange {
				return nil
			}
			return c.Nudge(1)
		})
	case key.Matches(msg, m.keys.Reset):
		topic := m.ActiveTopic()
		before := topic.Stylesheet()
		topic.Reset()
		m.err = nil
		m.highlight(before)
		m.log.WithTopic(string(topic.Info().ID)).Debug("topic reset")
	case key.Matches(msg, m.keys.ResetAll):
		before := m.ActiveTopic().Stylesheet()
		m.session.Reset()
		m.err = nil
		m.highlight(before)
		m.log.Debug("all topics reset")
	}
	return m, nil
}

// interact runs fn against the focused control and highlights what it changed in the
// stylesheet. Disabled controls are skipped.
func (m *Model) interact(fn func(playground.Control) error) {
	c, ok := m.FocusedControl()
	if !ok || c.Disabled {
		return
	}
	before := m.ActiveTopic().Stylesheet()
	if err := fn(c); err != nil {
		m.err = err
		m.log.WithControl(c.ID).Error(err, "control rejected input")
		return
	}
	m.err = nil
	m.highlight(before)
	m.log.WithTopic(string(m.ActiveTopic().Info().ID)).WithControl(c.ID).Debug("control applied")
}

func (m *Model) highlight(before string) {
	changed, err := stylesheet.ChangedLines(before, m.ActiveTopic().Stylesheet())
	if err != nil {
		m.log.Error(err, "compare stylesheets")
		m.changed = nil
		return
	}
	m.changed = changed
}
