package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

func TestViewRendersTopic(t *testing.T) {
	t.Parallel()

	view := NewModel(playground.NewSession(), Options{}).View()
	for _, want := range []string{
		"CSS Playground",
		"Box Model",
		"Flexbox",
		"Transform & Animation",
		"Dimensions",
		"Preview",
		"Content",
		"CSS",
		".element {",
		"border: 2px solid #333;",
		"quit",
	} {
		require.Contains(t, view, want)
	}
}

func TestViewShowsExercise(t *testing.T) {
	t.Parallel()

	view := NewModel(playground.NewSession(), Options{Exercise: "Center a box"}).View()
	require.Contains(t, view, "exercise: Center a box")
}

func TestViewDescribesPosition(t *testing.T) {
	t.Parallel()

	view := NewModel(playground.NewSession(), Options{Topic: playground.TopicPositioning}).View()
	require.Contains(t, view, "Parent Container")
	require.Contains(t, view, playground.PositionStatic.Describe())
}

func TestViewShowsError(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{})
	m.err = errors.New("bad input")
	require.Contains(t, m.View(), "Error: bad input")
}

func TestViewWideLayout(t *testing.T) {
	t.Parallel()

	narrow := NewModel(playground.NewSession(), Options{})
	wide := press(t, narrow, tea.WindowSizeMsg{Width: 160, Height: 60})
	require.Contains(t, wide.View(), ".element {")
	require.NotEqual(t, narrow.View(), wide.View())
}

func TestViewAfterQuit(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(playground.NewSession(), Options{}), runes("q"))
	require.Empty(t, m.View())
}
