package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

func TestNewModel(t *testing.T) {
	t.Parallel()

	t.Run("starts on the requested topic", func(t *testing.T) {
		t.Parallel()
		m := NewModel(playground.NewSession(), Options{Topic: playground.TopicGrid})
		require.Equal(t, playground.TopicGrid, m.ActiveTopic().Info().ID)
	})

	t.Run("unknown topic falls back to the first", func(t *testing.T) {
		t.Parallel()
		m := NewModel(playground.NewSession(), Options{Topic: "colors"})
		require.Equal(t, playground.TopicBoxModel, m.ActiveTopic().Info().ID)
	})

	t.Run("focus starts on the first control", func(t *testing.T) {
		t.Parallel()
		m := NewModel(playground.NewSession(), Options{})
		c, ok := m.FocusedControl()
		require.True(t, ok)
		require.Equal(t, "width", c.ID)
		require.Nil(t, m.Init())
	})
}

func TestModelSharesSessionStores(t *testing.T) {
	t.Parallel()

	session := playground.NewSession()
	m := NewModel(session, Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	box, _ := session.Topic(playground.TopicBoxModel)
	require.Equal(t, 101, box.(*playground.BoxModel).Width)
}
