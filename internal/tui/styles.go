package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			PaddingRight(2)

	exerciseStyle = lipgloss.NewStyle().Foreground(accentColor).Italic(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primaryColor)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginTop(1)
	descStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	groupStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginTop(1)

	labelStyle         = lipgloss.NewStyle().Width(22)
	focusedLabelStyle  = labelStyle.Foreground(accentColor).Bold(true)
	disabledLabelStyle = labelStyle.Foreground(mutedColor)

	panelStyle = lipgloss.NewStyle().PaddingRight(4)

	codeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
