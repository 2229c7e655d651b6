// Package tui is the interactive front end of the playground: one tab per topic with its
// control panel, a drawing of the live preview and the generated stylesheet.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cssplayground/internal/logger"
	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
	"github.com/alexisbeaulieu97/cssplayground/internal/tui/components"
)

const sliderWidth = 24

// Options configures a Model.
type Options struct {
	// Topic is the tab shown first. Empty or unknown ids start on the first topic.
	Topic playground.TopicID
	// Exercise is the name of the exercise the session was loaded from, if any.
	Exercise string
	Logger   *logger.Logger
}

// Model contains the Bubbletea state for one learner session.
type Model struct {
	session  *playground.Session
	topics   []playground.Topic
	active   int
	focus    []int
	changed  map[int]bool
	err      error
	exercise string

	keys   keyMap
	help   help.Model
	slider components.Slider
	log    *logger.Logger

	width    int
	height   int
	quitting bool
}

// NewModel builds a model over session. The session's stores are edited in place.
func NewModel(session *playground.Session, opts Options) Model {
	topics := session.Topics()
	m := Model{
		session:  session,
		topics:   topics,
		focus:    make([]int, len(topics)),
		exercise: opts.Exercise,
		keys:     defaultKeyMap(),
		help:     help.New(),
		slider:   components.NewSlider(sliderWidth),
		log:      opts.Logger,
	}
	if idx := session.Index(opts.Topic); idx >= 0 {
		m.active = idx
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTopic returns the topic of the visible tab.
func (m Model) ActiveTopic() playground.Topic {
	return m.topics[m.active]
}

// FocusedControl returns the control under the cursor.
func (m Model) FocusedControl() (playground.Control, bool) {
	controls := m.ActiveTopic().Controls()
	if len(controls) == 0 {
		return playground.Control{}, false
	}
	return controls[m.focusIndex(len(controls))], true
}

// ChangedLines reports the stylesheet lines touched by the last interaction.
func (m Model) ChangedLines() map[int]bool {
	return m.changed
}

// Err returns the error of the last interaction, if it failed.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) focusIndex(n int) int {
	return max(0, min(n-1, m.focus[m.active]))
}

func (m *Model) selectTopic(idx int) {
	if idx < 0 || idx >= len(m.topics) || idx == m.active {
		return
	}
	m.active = idx
	m.changed = nil
	m.err = nil
	m.log.WithTopic(string(m.ActiveTopic().Info().ID)).Debug("topic selected")
}

func (m *Model) moveFocus(delta int) {
	n := len(m.ActiveTopic().Controls())
	if n == 0 {
		return
	}
	m.focus[m.active] = (m.focusIndex(n) + delta + n) % n
}
