package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

// Slider renders a range control as a filled track followed by its formatted value.
type Slider struct {
	bar progress.Model
}

// NewSlider creates a slider track of the given width in cells.
func NewSlider(width int) Slider {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Slider{bar: bar}
}

// View renders the track for c. Disabled controls show an empty track.
func (s Slider) View(c playground.Control) string {
	ratio := c.Fraction()
	value := valueStyle.Render(c.Display)
	if c.Disabled {
		ratio = 0
		value = mutedStyle.Render(c.Display)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, s.bar.ViewAs(ratio), " ", value)
}
