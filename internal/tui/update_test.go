package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateSwitchesTopics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		keys []tea.Msg
		want playground.TopicID
	}{
		{name: "tab moves to the next topic", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, want: playground.TopicFlexbox},
		{name: "shift+tab wraps to the last topic", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyShiftTab}}, want: playground.TopicTransform},
		{name: "digit jumps to a topic", keys: []tea.Msg{runes("4")}, want: playground.TopicPositioning},
		{name: "tab wraps around", keys: []tea.Msg{runes("6"), tea.KeyMsg{Type: tea.KeyTab}}, want: playground.TopicBoxModel},
		{name: "digits beyond the topics are ignored", keys: []tea.Msg{runes("7")}, want: playground.TopicBoxModel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := press(t, NewModel(playground.NewSession(), Options{}), tc.keys...)
			require.Equal(t, tc.want, m.ActiveTopic().Info().ID)
		})
	}
}

func TestUpdateMovesFocus(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	c, _ := m.FocusedControl()
	require.Equal(t, "padding-top", c.ID)

	m = press(t, m, runes("k"), runes("k"), runes("k"))
	c, _ = m.FocusedControl()
	require.Equal(t, "margin-left", c.ID, "moving up from the first control wraps to the last")
}

func TestUpdateKeepsFocusPerTopic(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	c, _ := m.FocusedControl()
	require.Equal(t, "height", c.ID)
}

func TestUpdateNudgesRangeControl(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"), tea.KeyMsg{Type: tea.KeyLeft})

	box := m.ActiveTopic().(*playground.BoxModel)
	require.Equal(t, 101, box.Width)
	require.Equal(t, map[int]bool{1: true}, m.ChangedLines())
	require.NoError(t, m.Err())
}

func TestUpdateActivate(t *testing.T) {
	t.Parallel()

	t.Run("enter advances a choice", func(t *testing.T) {
		t.Parallel()
		m := press(t, NewModel(playground.NewSession(), Options{Topic: playground.TopicFlexbox}), tea.KeyMsg{Type: tea.KeyEnter})
		flex := m.ActiveTopic().(*playground.Flexbox)
		require.Equal(t, playground.DirectionColumn, flex.Direction)
		require.True(t, m.ChangedLines()[2])
	})

	t.Run("space runs an action", func(t *testing.T) {
		t.Parallel()
		m := NewModel(playground.NewSession(), Options{Topic: playground.TopicFlexbox})
		for range 4 {
			m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		c, _ := m.FocusedControl()
		require.Equal(t, "add-item", c.ID)

		m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		require.Equal(t, 5, m.ActiveTopic().(*playground.Flexbox).Items)
	})

	t.Run("enter leaves range controls alone", func(t *testing.T) {
		t.Parallel()
		m := press(t, NewModel(playground.NewSession(), Options{}), tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, 100, m.ActiveTopic().(*playground.BoxModel).Width)
	})
}

func TestUpdateSkipsDisabledControls(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{Topic: playground.TopicPositioning})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})

	pos := m.ActiveTopic().(*playground.Positioning)
	require.Equal(t, 0, pos.Offsets[playground.OffsetTop])
	require.Empty(t, m.ChangedLines())
}

func TestUpdateResetsTopic(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{Topic: playground.TopicZIndex})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 3, m.ActiveTopic().(*playground.Layers).Layer(playground.CardBlue).ZIndex)

	m = press(t, m, runes("r"))
	require.Equal(t, 1, m.ActiveTopic().(*playground.Layers).Layer(playground.CardBlue).ZIndex)
	require.Len(t, m.ChangedLines(), 1)
}

func TestUpdateResetsAllTopics(t *testing.T) {
	t.Parallel()

	session := playground.NewSession()
	m := NewModel(session, Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	box, _ := session.Topic(playground.TopicBoxModel)
	flex, _ := session.Topic(playground.TopicFlexbox)
	require.NotEqual(t, playground.NewBoxModel().Stylesheet(), box.Stylesheet())
	require.NotEqual(t, playground.NewFlexbox().Stylesheet(), flex.Stylesheet())

	m = press(t, m, runes("R"))
	require.Equal(t, playground.NewBoxModel().Stylesheet(), box.Stylesheet())
	require.Equal(t, playground.NewFlexbox().Stylesheet(), flex.Stylesheet())
	require.Equal(t, playground.TopicFlexbox, m.ActiveTopic().Info().ID)
	require.Len(t, m.ChangedLines(), 1)
}

func TestUpdateSwitchingTopicClearsState(t *testing.T) {
	t.Parallel()

	m := NewModel(playground.NewSession(), Options{})
	m.err = errors.New("boom")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyTab})
	require.Nil(t, m.ChangedLines())
	require.NoError(t, m.Err())
}

func TestUpdateHelpAndQuit(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(playground.NewSession(), Options{}), runes("?"))
	require.True(t, m.help.ShowAll)

	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(playground.NewSession(), Options{}), tea.WindowSizeMsg{Width: 140, Height: 50})
	require.Equal(t, 140, m.width)
	require.Equal(t, 140, m.help.Width)
}
