package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

func TestControlApply_RangeClampsAndSnaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		topic func() Topic
		id    string
		raw   string
		check func(t *testing.T, topic Topic)
	}{
		{
			name:  "above max clamps to max",
			topic: func() Topic { return NewBoxModel() },
			id:    "width",
			raw:   "500",
			check: func(t *testing.T, topic Topic) {
				require.Equal(t, 200, topic.(*BoxModel).Width)
			},
		},
		{
			name:  "below min clamps to min",
			topic: func() Topic { return NewBoxModel() },
			id:    "height",
			raw:   "10",
			check: func(t *testing.T, topic Topic) {
				require.Equal(t, 50, topic.(*BoxModel).Height)
			},
		},
		{
			name:  "surrounding whitespace is ignored",
			topic: func() Topic { return NewGrid() },
			id:    "gap",
			raw:   " 25 ",
			check: func(t *testing.T, topic Topic) {
				require.Equal(t, 25, topic.(*Grid).Gap)
			},
		},
		{
			name:  "fractional value snaps to step",
			topic: func() Topic { return NewTransforms() },
			id:    "scale",
			raw:   "1.23",
			check: func(t *testing.T, topic Topic) {
				m, ok := topic.(*Transforms).Manual()
				require.True(t, ok)
				require.Equal(t, 1.2, m.Transform.Scale)
			},
		},
		{
			name:  "duration snaps to tenths",
			topic: func() Topic { return NewTransforms() },
			id:    "transition-duration",
			raw:   "0.84",
			check: func(t *testing.T, topic Topic) {
				m, _ := topic.(*Transforms).Manual()
				require.Equal(t, 0.8, m.Transition.Duration)
			},
		},
		{
			name:  "negative offsets are allowed",
			topic: func() Topic { p := NewPositioning(); p.SetPosition(PositionRelative); return p },
			id:    "left",
			raw:   "-40",
			check: func(t *testing.T, topic Topic) {
				require.Equal(t, -40, topic.(*Positioning).Offsets[OffsetLeft])
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			topic := tc.topic()
			require.NoError(t, Apply(topic, tc.id, tc.raw))
			tc.check(t, topic)
		})
	}
}

func TestControlApply_RejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		topic   Topic
		id      string
		raw     string
		message string
	}{
		{name: "non integer", topic: NewBoxModel(), id: "width", raw: "wide", message: "not an integer"},
		{name: "float for integer slider", topic: NewGrid(), id: "gap", raw: "1.5", message: "not an integer"},
		{name: "non number", topic: NewTransforms(), id: "scale", raw: "big", message: "not a number"},
		{name: "not a number literal", topic: NewTransforms(), id: "scale", raw: "NaN", message: "not a number"},
		{name: "unknown keyword", topic: NewFlexbox(), id: "flex-direction", raw: "diagonal", message: "is not one of row, column"},
		{name: "unknown card", topic: NewLayers(), id: "opacity-target", raw: "yellow", message: "is not one of blue, green, red"},
		{name: "unknown control", topic: NewGrid(), id: "grid-area", raw: "a", message: "unknown control for topic grid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Apply(tc.topic, tc.id, tc.raw)
			require.Error(t, err)

			var validationErr *pgerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.id, validationErr.Field)
			require.Contains(t, validationErr.Message, tc.message)
		})
	}
}

func TestControlApply_DisabledIsInert(t *testing.T) {
	t.Parallel()

	p := NewPositioning()
	top, ok := FindControl(p, "top")
	require.True(t, ok)
	require.True(t, top.Disabled)

	require.NoError(t, top.Apply("30"))
	require.NoError(t, top.Apply("garbage"))
	require.Equal(t, [4]int{}, p.Offsets)
	require.Equal(t, "offsets apply only when position is not static", top.Hint)

	// text input routed by id is told why nothing happened
	err := Apply(p, "top", "30")
	var validationErr *pgerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "top", validationErr.Field)
	require.Contains(t, validationErr.Message, "not static")
	require.Equal(t, [4]int{}, p.Offsets)

	p.SetPosition(PositionAbsolute)
	top, _ = FindControl(p, "top")
	require.False(t, top.Disabled)
	require.Empty(t, top.Hint)
	require.NoError(t, Apply(p, "top", "30"))
	require.Equal(t, 30, p.Offsets[OffsetTop])
}

func TestControlNudge(t *testing.T) {
	t.Parallel()

	t.Run("range moves by one step", func(t *testing.T) {
		t.Parallel()
		tr := NewTransforms()
		scale, _ := FindControl(tr, "scale")
		require.NoError(t, scale.Nudge(1))
		m, _ := tr.Manual()
		require.Equal(t, 1.1, m.Transform.Scale)

		scale, _ = FindControl(tr, "scale")
		require.NoError(t, scale.Nudge(-1))
		require.NoError(t, mustFind(t, tr, "scale").Nudge(-1))
		m, _ = tr.Manual()
		require.Equal(t, 0.9, m.Transform.Scale)
	})

	t.Run("range stops at bounds", func(t *testing.T) {
		t.Parallel()
		l := NewLayers()
		for range 20 {
			require.NoError(t, mustFind(t, l, "red-z-index").Nudge(1))
		}
		require.Equal(t, 10, l.Layer(CardRed).ZIndex)
	})

	t.Run("choice wraps around", func(t *testing.T) {
		t.Parallel()
		f := NewFlexbox()
		require.NoError(t, mustFind(t, f, "flex-direction").Nudge(-1))
		require.Equal(t, DirectionColumnReverse, f.Direction)
		require.NoError(t, mustFind(t, f, "flex-direction").Nudge(1))
		require.Equal(t, DirectionRow, f.Direction)
	})

	t.Run("choice without a current value starts at an end", func(t *testing.T) {
		t.Parallel()
		tr := NewTransforms()
		require.NoError(t, mustFind(t, tr, "animation-preset").Nudge(-1))
		p, ok := tr.Preset()
		require.True(t, ok)
		require.Equal(t, PresetShake, p)

		tr.Reset()
		require.NoError(t, mustFind(t, tr, "animation-preset").Nudge(1))
		p, _ = tr.Preset()
		require.Equal(t, PresetSpin, p)
	})

	t.Run("action runs", func(t *testing.T) {
		t.Parallel()
		g := NewGrid()
		require.NoError(t, mustFind(t, g, "add-item").Nudge(0))
		require.Equal(t, 7, g.Items)
	})
}

func TestControlDescriptors(t *testing.T) {
	t.Parallel()

	g := NewGrid()
	gap := mustFind(t, g, "gap")
	assert.Equal(t, KindRange, gap.Kind)
	assert.Equal(t, "16", gap.Value)
	assert.Equal(t, "16px", gap.Display)
	assert.InDelta(t, 0.4, gap.Fraction(), 1e-9)

	columns := mustFind(t, g, "grid-template-columns")
	assert.Equal(t, KindChoice, columns.Kind)
	assert.Equal(t, "3 equal columns", columns.Display)
	assert.Equal(t, 2, columns.OptionIndex())

	tr := NewTransforms()
	assert.Equal(t, "1.0", mustFind(t, tr, "scale").Display)
	assert.Equal(t, "0.5s", mustFind(t, tr, "transition-duration").Display)
	assert.Equal(t, -1, mustFind(t, tr, "animation-preset").OptionIndex())
	assert.Equal(t, "action", mustFind(t, tr, "reset").Kind.String())

	l := NewLayers()
	assert.Equal(t, "100%", mustFind(t, l, "opacity").Display)
	assert.Equal(t, "Blue Card", mustFind(t, l, "opacity-target").Display)
}

func TestControlIDsAreUnique(t *testing.T) {
	t.Parallel()

	for _, id := range TopicIDs() {
		topic, ok := NewTopic(id)
		require.True(t, ok)
		seen := map[string]bool{}
		for _, c := range topic.Controls() {
			require.Falsef(t, seen[c.ID], "duplicate control %s in %s", c.ID, id)
			seen[c.ID] = true
		}
	}
}

func mustFind(t *testing.T, topic Topic, id string) Control {
	t.Helper()
	c, ok := FindControl(topic, id)
	require.Truef(t, ok, "control %s not found", id)
	return c
}
