package playground

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pgerrors "github.com/alexisbeaulieu97/cssplayground/pkg/errors"
)

// ControlKind distinguishes the three kinds of input a control panel offers.
type ControlKind int

const (
	// KindRange is a slider with numeric bounds and a step.
	KindRange ControlKind = iota
	// KindChoice is a set of option buttons or a dropdown.
	KindChoice
	// KindAction is a button without a value (add item, reset).
	KindAction
)

func (k ControlKind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindChoice:
		return "choice"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// Option is one allowed value of a choice control.
type Option struct {
	Value string
	Label string
}

// Control describes one input of a topic's control panel and is bound to exactly one
// parameter store field. Descriptors are snapshots: fetch them again after applying a change.
type Control struct {
	ID    string
	Label string
	Group string
	Kind  ControlKind

	// Range controls.
	Min    float64
	Max    float64
	Step   float64
	Unit   string
	Number float64

	// Choice controls.
	Options []Option

	// Value is the raw current value ("20", "row-reverse"); Display is what the panel shows
	// next to the control ("20px", "1.0", "100%").
	Value    string
	Display  string
	Disabled bool
	// Hint says why a disabled control is disabled.
	Hint string

	apply func(raw string) error
}

// Apply parses raw the way the bound input would produce it and writes the result to the
// parameter store. Range values are clamped to the bounds and snapped to the step. Disabled
// controls ignore input.
func (c Control) Apply(raw string) error {
	if c.Disabled || c.apply == nil {
		return nil
	}
	return c.apply(strings.TrimSpace(raw))
}

// Nudge moves a range control by dir steps or cycles a choice control by dir options.
// Actions run regardless of dir.
func (c Control) Nudge(dir int) error {
	switch c.Kind {
	case KindRange:
		return c.Apply(formatNumber(c.Number + float64(dir)*c.Step))
	case KindChoice:
		if len(c.Options) == 0 {
			return nil
		}
		idx := c.OptionIndex()
		switch {
		case idx < 0 && dir < 0:
			idx = len(c.Options) - 1
		case idx < 0:
			idx = 0
		default:
			idx = ((idx+dir)%len(c.Options) + len(c.Options)) % len(c.Options)
		}
		return c.Apply(c.Options[idx].Value)
	default:
		return c.Apply("")
	}
}

// OptionIndex returns the index of the current value in Options, or -1.
func (c Control) OptionIndex() int {
	for i, opt := range c.Options {
		if opt.Value == c.Value {
			return i
		}
	}
	return -1
}

// Fraction reports where a range control sits between its bounds, from 0 to 1.
func (c Control) Fraction() float64 {
	if c.Kind != KindRange || c.Max <= c.Min {
		return 0
	}
	return (c.Number - c.Min) / (c.Max - c.Min)
}

// normalize applies slider semantics: clamp to the bounds, then snap to the nearest step.
func (c Control) normalize(v float64) float64 {
	v = math.Max(c.Min, math.Min(c.Max, v))
	if c.Step > 0 {
		steps := math.Round((v - c.Min) / c.Step)
		v = roundTo(c.Min+steps*c.Step, decimals(c.Step))
		v = math.Max(c.Min, math.Min(c.Max, v))
	}
	return v
}

type bounds struct {
	min, max, step float64
}

func intRange(id, label, group string, b bounds, unit string, value int, set func(int)) Control {
	c := Control{
		ID:      id,
		Label:   label,
		Group:   group,
		Kind:    KindRange,
		Min:     b.min,
		Max:     b.max,
		Step:    b.step,
		Unit:    unit,
		Number:  float64(value),
		Value:   strconv.Itoa(value),
		Display: strconv.Itoa(value) + unit,
	}
	c.apply = func(raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pgerrors.NewValidationError(id, fmt.Sprintf("%q is not an integer", raw), err)
		}
		set(int(c.normalize(float64(n))))
		return nil
	}
	return c
}

func floatRange(id, label, group string, b bounds, unit string, value float64, display string, set func(float64)) Control {
	c := Control{
		ID:      id,
		Label:   label,
		Group:   group,
		Kind:    KindRange,
		Min:     b.min,
		Max:     b.max,
		Step:    b.step,
		Unit:    unit,
		Number:  value,
		Value:   formatNumber(value),
		Display: display,
	}
	c.apply = func(raw string) error {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return pgerrors.NewValidationError(id, fmt.Sprintf("%q is not a number", raw), err)
		}
		set(c.normalize(f))
		return nil
	}
	return c
}

func choice(id, label, group string, options []Option, value string, set func(string)) Control {
	display := value
	for _, opt := range options {
		if opt.Value == value {
			display = opt.Label
			break
		}
	}
	return Control{
		ID:      id,
		Label:   label,
		Group:   group,
		Kind:    KindChoice,
		Options: options,
		Value:   value,
		Display: display,
		apply: func(raw string) error {
			for _, opt := range options {
				if opt.Value == raw {
					set(raw)
					return nil
				}
			}
			return pgerrors.NewValidationError(id, fmt.Sprintf("%q is not one of %s", raw, optionValues(options)), nil)
		},
	}
}

func action(id, label, group string, run func()) Control {
	return Control{
		ID:    id,
		Label: label,
		Group: group,
		Kind:  KindAction,
		apply: func(string) error {
			run()
			return nil
		},
	}
}

func disabled(c Control, when bool, hint string) Control {
	c.Disabled = when
	if when {
		c.Hint = hint
	}
	return c
}

func optionValues(options []Option) string {
	values := make([]string, len(options))
	for i, opt := range options {
		values[i] = opt.Value
	}
	return strings.Join(values, ", ")
}

// titledOptions labels each value with TitleLabel.
func titledOptions[T ~string](values ...T) []Option {
	options := make([]Option, len(values))
	for i, v := range values {
		options[i] = Option{Value: string(v), Label: TitleLabel(string(v))}
	}
	return options
}

// sentenceOptions labels each value with sentenceLabel.
func sentenceOptions[T ~string](values ...T) []Option {
	options := make([]Option, len(values))
	for i, v := range values {
		options[i] = Option{Value: string(v), Label: sentenceLabel(string(v))}
	}
	return options
}

// FindControl looks a control up by id.
func FindControl(t Topic, id string) (Control, bool) {
	for _, c := range t.Controls() {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

// Apply routes text input to the control with the given id. Unlike Control.Apply, input
// aimed at a disabled control is rejected so it is not silently lost.
func Apply(t Topic, id, raw string) error {
	c, ok := FindControl(t, id)
	if !ok {
		return pgerrors.NewValidationError(id, fmt.Sprintf("unknown control for topic %s", t.Info().ID), nil)
	}
	if c.Disabled {
		return pgerrors.NewValidationError(id, "control is disabled: "+c.Hint, nil)
	}
	return c.Apply(raw)
}
