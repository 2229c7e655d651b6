package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	"github.com/alexisbeaulieu97/cssplayground/internal/tui/components"
)

// Below this width the panel and the preview are stacked instead of placed side by side.
const sideBySideWidth = 110

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	topic := m.ActiveTopic()
	info := topic.Info()

	sections := []string{m.renderHeader(), m.renderTabs()}
	sections = append(sections,
		headingStyle.Render(info.Title),
		descStyle.Render(info.Description),
	)

	panel := panelStyle.Render(m.renderControls(topic))
	output := lipgloss.JoinVertical(lipgloss.Left, m.renderPreview(topic), m.renderStylesheet(topic))
	if m.width >= sideBySideWidth {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, panel, output))
	} else {
		sections = append(sections, panel, output)
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("CSS Playground")
	if m.exercise == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, title, exerciseStyle.Render("exercise: "+m.exercise))
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.topics))
	for i, t := range m.topics {
		label := string(rune('1'+i)) + " " + t.Info().Title
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderControls(topic playground.Topic) string {
	controls := topic.Controls()
	focused := m.focusIndex(len(controls))

	var lines []string
	group := ""
	for i, c := range controls {
		if c.Group != group {
			group = c.Group
			lines = append(lines, groupStyle.Render(group))
		}
		cursor := "  "
		style := labelStyle
		switch {
		case c.Disabled:
			style = disabledLabelStyle
		case i == focused:
			style = focusedLabelStyle
		}
		if i == focused {
			cursor = "› "
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cursor, style.Render(c.Label), m.renderWidget(c)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderWidget(c playground.Control) string {
	switch c.Kind {
	case playground.KindRange:
		return m.slider.View(c)
	case playground.KindChoice:
		return components.Choices(c)
	default:
		return components.Button(c)
	}
}

func (m Model) renderPreview(topic playground.Topic) string {
	parts := []string{sectionStyle.Render("Preview"), components.Preview(topic.Preview())}
	if p, ok := topic.(*playground.Positioning); ok {
		parts = append(parts, descStyle.Render(p.Position.Describe()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStylesheet(topic playground.Topic) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("CSS"),
		codeStyle.Render(components.Listing(topic.Stylesheet(), m.changed)),
	)
}
