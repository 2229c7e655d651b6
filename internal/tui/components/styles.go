package components

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	warningColor = lipgloss.Color("226")

	valueStyle          = lipgloss.NewStyle().Bold(true)
	mutedStyle          = lipgloss.NewStyle().Foreground(mutedColor)
	optionStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedOptionStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	buttonStyle         = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	regionStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(primaryColor)

	roundedRegionStyle = regionStyle.BorderStyle(lipgloss.RoundedBorder())

	itemStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	annotationStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	lineNumberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	changedLineStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
)
