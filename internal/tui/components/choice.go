package components

import (
	"strings"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

// Choices renders the options of a choice control side by side with the current one marked.
func Choices(c playground.Control) string {
	parts := make([]string, 0, len(c.Options))
	for _, opt := range c.Options {
		switch {
		case c.Disabled:
			parts = append(parts, mutedStyle.Render(opt.Label))
		case opt.Value == c.Value:
			parts = append(parts, selectedOptionStyle.Render("["+opt.Label+"]"))
		default:
			parts = append(parts, optionStyle.Render(opt.Label))
		}
	}
	return strings.Join(parts, " ")
}

// Button renders an action control.
func Button(c playground.Control) string {
	if c.Disabled {
		return mutedStyle.Render("< " + c.Label + " >")
	}
	return buttonStyle.Render("< " + c.Label + " >")
}
