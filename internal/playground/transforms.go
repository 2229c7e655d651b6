package playground

import (
	"fmt"
	"strings"
)

// Timing is a transition-timing-function keyword.
type Timing string

const (
	TimingEase      Timing = "ease"
	TimingLinear    Timing = "linear"
	TimingEaseIn    Timing = "ease-in"
	TimingEaseOut   Timing = "ease-out"
	TimingEaseInOut Timing = "ease-in-out"
)

// Transform is the manual transform expression.
type Transform struct {
	Rotate     int
	Scale      float64
	TranslateX int
	TranslateY int
	Skew       int
}

// DefaultTransform is the identity transform.
func DefaultTransform() Transform {
	return Transform{Scale: 1}
}

// CSS renders the value of the transform property.
func (t Transform) CSS() string {
	return fmt.Sprintf("rotate(%ddeg) scale(%s) translateX(%dpx) translateY(%dpx) skew(%ddeg)",
		t.Rotate, formatNumber(t.Scale), t.TranslateX, t.TranslateY, t.Skew)
}

// Transition is the manual transition applied to every property.
type Transition struct {
	Duration float64
	Timing   Timing
}

func DefaultTransition() Transition {
	return Transition{Duration: 0.5, Timing: TimingEase}
}

// CSS renders the value of the transition property.
func (t Transition) CSS() string {
	return fmt.Sprintf("all %ss %s", formatNumber(t.Duration), t.Timing)
}

// Preset is a named looping animation.
type Preset string

const (
	PresetSpin   Preset = "spin"
	PresetPulse  Preset = "pulse"
	PresetBounce Preset = "bounce"
	PresetShake  Preset = "shake"
)

// Presets lists the animations in the order they are offered.
func Presets() []Preset {
	return []Preset{PresetSpin, PresetPulse, PresetBounce, PresetShake}
}

type keyframe struct {
	selector  string
	transform string
}

type presetDef struct {
	shorthand string
	frames    []keyframe
}

var presetDefs = map[Preset]presetDef{
	PresetSpin: {
		shorthand: "spin 2s linear infinite",
		frames:    []keyframe{{"from", "rotate(0deg)"}, {"to", "rotate(360deg)"}},
	},
	PresetPulse: {
		shorthand: "pulse 2s ease-in-out infinite",
		frames:    []keyframe{{"0%", "scale(1)"}, {"50%", "scale(1.1)"}, {"100%", "scale(1)"}},
	},
	PresetBounce: {
		shorthand: "bounce 1s ease infinite",
		frames:    []keyframe{{"0%, 100%", "translateY(0)"}, {"50%", "translateY(-20px)"}},
	},
	PresetShake: {
		shorthand: "shake 0.5s ease-in-out infinite",
		frames:    []keyframe{{"0%, 100%", "translateX(0)"}, {"25%", "translateX(-10px)"}, {"75%", "translateX(10px)"}},
	},
}

// Valid reports whether p is one of the known presets.
func (p Preset) Valid() bool {
	_, ok := presetDefs[p]
	return ok
}

// Animation returns the animation shorthand, e.g. "spin 2s linear infinite".
func (p Preset) Animation() string {
	return presetDefs[p].shorthand
}

// Keyframes renders the @keyframes rule of the preset.
func (p Preset) Keyframes() string {
	def, ok := presetDefs[p]
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", p)
	for _, f := range def.frames {
		fmt.Fprintf(&b, "  %s {\n    transform: %s;\n  }\n", f.selector, f.transform)
	}
	b.WriteString("}")
	return b.String()
}

// Mode is either ManualMode or PresetMode. Transform values only exist in manual mode; the
// transition survives a preset so it is still shown, disabled, while the animation plays.
type Mode interface {
	isMode()
}

type ManualMode struct {
	Transform  Transform
	Transition Transition
}

type PresetMode struct {
	Preset     Preset
	Transition Transition
}

func (ManualMode) isMode() {}
func (PresetMode) isMode() {}

// Transforms is the parameter store of the transform and animation lesson.
type Transforms struct {
	Mode Mode
}

func NewTransforms() *Transforms {
	t := &Transforms{}
	t.Reset()
	return t
}

// Reset leaves any preset and restores the identity transform with the default transition.
func (t *Transforms) Reset() {
	t.Mode = ManualMode{Transform: DefaultTransform(), Transition: DefaultTransition()}
}

// ApplyPreset switches to the preset animation and discards the manual transform. The
// transition is carried along unchanged.
func (t *Transforms) ApplyPreset(p Preset) {
	if !p.Valid() {
		return
	}
	t.Mode = PresetMode{Preset: p, Transition: t.transition()}
}

func (t *Transforms) transition() Transition {
	switch m := t.Mode.(type) {
	case ManualMode:
		return m.Transition
	case PresetMode:
		return m.Transition
	default:
		return DefaultTransition()
	}
}

// Manual returns the manual state, or false while a preset is active.
func (t *Transforms) Manual() (ManualMode, bool) {
	m, ok := t.Mode.(ManualMode)
	return m, ok
}

// Preset returns the active preset, or false in manual mode.
func (t *Transforms) Preset() (Preset, bool) {
	p, ok := t.Mode.(PresetMode)
	return p.Preset, ok
}

// editManual applies fn in manual mode. It does nothing while a preset plays.
func (t *Transforms) editManual(fn func(*ManualMode)) {
	m, ok := t.Manual()
	if !ok {
		return
	}
	fn(&m)
	t.Mode = m
}

func (t *Transforms) SetRotate(v int) {
	t.editManual(func(m *ManualMode) { m.Transform.Rotate = v })
}

func (t *Transforms) SetScale(v float64) {
	t.editManual(func(m *ManualMode) { m.Transform.Scale = v })
}

func (t *Transforms) SetTranslateX(v int) {
	t.editManual(func(m *ManualMode) { m.Transform.TranslateX = v })
}

func (t *Transforms) SetTranslateY(v int) {
	t.editManual(func(m *ManualMode) { m.Transform.TranslateY = v })
}

func (t *Transforms) SetSkew(v int) {
	t.editManual(func(m *ManualMode) { m.Transform.Skew = v })
}

func (t *Transforms) SetDuration(v float64) {
	t.editManual(func(m *ManualMode) { m.Transition.Duration = v })
}

func (t *Transforms) SetTiming(v Timing) {
	t.editManual(func(m *ManualMode) { m.Transition.Timing = v })
}

func (t *Transforms) Info() Info {
	return Info{
		ID:          TopicTransform,
		Title:       "Transform & Animation",
		Description: "Explore visual transformations and animations with CSS.",
	}
}

// Controls disables the manual inputs while a preset plays. The transform inputs show their
// defaults and the transition inputs keep the last chosen values.
func (t *Transforms) Controls() []Control {
	m, manual := t.Manual()
	if !manual {
		m = ManualMode{Transform: DefaultTransform(), Transition: t.transition()}
	}
	preset, _ := t.Preset()
	tr := m.Transform

	const group, animGroup = "Transform Properties", "Animation Properties"
	offset := bounds{min: -100, max: 100, step: 1}
	manualControls := []Control{
		intRange("rotate", "Rotate", group, bounds{min: 0, max: 360, step: 1}, "deg", tr.Rotate, t.SetRotate),
		floatRange("scale", "Scale", group, bounds{min: 0.5, max: 2.5, step: 0.1}, "", tr.Scale,
			fmt.Sprintf("%.1f", tr.Scale), t.SetScale),
		intRange("translate-x", "Translate X", group, offset, "px", tr.TranslateX, t.SetTranslateX),
		intRange("translate-y", "Translate Y", group, offset, "px", tr.TranslateY, t.SetTranslateY),
		intRange("skew", "Skew", group, bounds{min: -45, max: 45, step: 1}, "deg", tr.Skew, t.SetSkew),
		floatRange("transition-duration", "Transition Duration", animGroup, bounds{min: 0, max: 3, step: 0.1}, "s",
			m.Transition.Duration, formatNumber(m.Transition.Duration)+"s", t.SetDuration),
		choice("transition-timing", "Transition Timing", animGroup,
			titledOptions(TimingEase, TimingLinear, TimingEaseIn, TimingEaseOut, TimingEaseInOut),
			string(m.Transition.Timing), func(v string) { t.SetTiming(Timing(v)) }),
	}

	controls := make([]Control, 0, len(manualControls)+2)
	for _, c := range manualControls {
		controls = append(controls, disabled(c, !manual, "manual values are locked while a preset animation plays"))
	}
	return append(controls,
		choice("animation-preset", "Animation Presets", animGroup, titledOptions(Presets()...),
			string(preset), func(v string) { t.ApplyPreset(Preset(v)) }),
		action("reset", "Reset All", animGroup, t.Reset),
	)
}

// Preview is the animated element: either the manual transform and transition, or the
// preset animation with its keyframes.
func (t *Transforms) Preview() Region {
	element := Region{Name: "element", Label: "Transform Me"}
	switch m := t.Mode.(type) {
	case ManualMode:
		element.Style = []Declaration{
			decl("transform", m.Transform.CSS()),
			decl("transition", m.Transition.CSS()),
		}
	case PresetMode:
		element.Style = []Declaration{decl("animation", m.Preset.Animation())}
		element.Keyframes = m.Preset.Keyframes()
	}
	return element
}

func (t *Transforms) Stylesheet() string {
	switch m := t.Mode.(type) {
	case PresetMode:
		return fmt.Sprintf(".element {\n  animation: %s;\n}\n\n%s", m.Preset.Animation(), m.Preset.Keyframes())
	case ManualMode:
		return fmt.Sprintf(".element {\n  transform: %s;\n  transition: %s;\n}", m.Transform.CSS(), m.Transition.CSS())
	default:
		return ""
	}
}
