package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

func TestParse_Rule(t *testing.T) {
	t.Parallel()

	sheet, err := Parse(playground.NewBoxModel().Stylesheet())
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	rule := sheet.Rules[0]
	require.Equal(t, ".element", rule.Selector)
	require.Equal(t, []Declaration{
		{Property: "width", Value: "100px", Line: 1},
		{Property: "height", Value: "100px", Line: 2},
		{Property: "padding", Value: "20px 20px 20px 20px", Line: 3},
		{Property: "border", Value: "2px solid #333", Line: 4},
		{Property: "border-radius", Value: "0px", Line: 5},
		{Property: "margin", Value: "10px 10px 10px 10px", Line: 6},
	}, rule.Declarations)
}

func TestParse_CanonicalValues(t *testing.T) {
	t.Parallel()

	sheet, err := Parse(playground.NewGrid().Stylesheet())
	require.NoError(t, err)

	rule, ok := sheet.Find(".container")
	require.True(t, ok)
	columns, _ := rule.Get("grid-template-columns")
	require.Equal(t, Canonical("repeat(3, 1fr)"), columns)
	require.Equal(t, "repeat(3,1fr)", columns)
}

func TestParse_Keyframes(t *testing.T) {
	t.Parallel()

	tr := playground.NewTransforms()
	tr.ApplyPreset(playground.PresetBounce)

	sheet, err := Parse(tr.Stylesheet())
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)

	animation, ok := sheet.Rules[0].Get("animation")
	require.True(t, ok)
	require.Equal(t, "bounce 1s ease infinite", animation)

	keyframes, ok := sheet.Find("@keyframes bounce")
	require.True(t, ok)
	require.Len(t, keyframes.Rules, 2)

	ends, ok := sheet.Find("0%, 100%")
	require.True(t, ok)
	transform, _ := ends.Get("transform")
	require.Equal(t, "translateY(0)", transform)

	middle, ok := sheet.Find("50%")
	require.True(t, ok)
	transform, _ = middle.Get("transform")
	require.Equal(t, "translateY(-20px)", transform)
}

func TestParse_StrayBrace(t *testing.T) {
	t.Parallel()

	_, err := Parse(".element {\n  width: 10px;\n}\n}")
	require.Error(t, err)
}

// Every generated value must read back as the value that was written.
func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		topic    playground.TopicID
		control  string
		raw      string
		selector string
		property string
		want     string
	}{
		{playground.TopicBoxModel, "width", "173", ".element", "width", "173px"},
		{playground.TopicBoxModel, "border-radius", "9", ".element", "border-radius", "9px"},
		{playground.TopicGrid, "gap", "31", ".container", "gap", "31px"},
		{playground.TopicPositioning, "position", "sticky", ".element", "position", "sticky"},
		{playground.TopicZIndex, "green-z-index", "7", ".green-card", "z-index", "7"},
		{playground.TopicZIndex, "opacity", "35", ".blue-card", "opacity", "0.35"},
		{playground.TopicTransform, "transition-duration", "2.3", ".element", "transition", "all 2.3s ease"},
		{playground.TopicTransform, "scale", "0.7", ".element", "transform", "rotate(0deg) scale(0.7) translateX(0px) translateY(0px) skew(0deg)"},
	}

	for _, tc := range cases {
		t.Run(tc.control, func(t *testing.T) {
			t.Parallel()
			topic, ok := playground.NewTopic(tc.topic)
			require.True(t, ok)
			require.NoError(t, playground.Apply(topic, tc.control, tc.raw))

			sheet, err := Parse(topic.Stylesheet())
			require.NoError(t, err)
			rule, ok := sheet.Find(tc.selector)
			require.True(t, ok)
			got, ok := rule.Get(tc.property)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_EveryTopic(t *testing.T) {
	t.Parallel()

	for _, topic := range playground.NewSession().Topics() {
		sheet, err := Parse(topic.Stylesheet())
		require.NoError(t, err, topic.Info().ID)
		require.NotEmpty(t, sheet.Rules)
	}
}
