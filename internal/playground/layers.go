package playground

import (
	"fmt"
	"strings"
)

// Card names one of the three stacked cards of the z-index lesson.
type Card int

const (
	CardBlue Card = iota
	CardGreen
	CardRed
)

// Cards lists the cards in document order.
func Cards() []Card {
	return []Card{CardBlue, CardGreen, CardRed}
}

var cardNames = [...]string{"blue", "green", "red"}

func (c Card) String() string {
	if !c.valid() {
		return "unknown"
	}
	return cardNames[c]
}

// Label is the card's caption, e.g. "Blue Card".
func (c Card) Label() string {
	return TitleLabel(c.String()) + " Card"
}

// ParseCard resolves "blue", "green" or "red".
func ParseCard(s string) (Card, bool) {
	for _, c := range Cards() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

func (c Card) valid() bool {
	return c >= CardBlue && c <= CardRed
}

// Display is a value of the display property offered for the cards.
type Display string

const (
	DisplayBlock Display = "block"
	DisplayNone  Display = "none"
)

// Layer holds the stacking properties of one card. Opacity is a percentage.
type Layer struct {
	ZIndex  int
	Opacity int
	Display Display
}

// OpacityValue converts the stored percentage to the CSS fraction.
func (l Layer) OpacityValue() string {
	return formatNumber(float64(l.Opacity) / 100)
}

// Layers is the parameter store of the z-index lesson. The opacity and display controls
// are shared: OpacityTarget and DisplayTarget name the card they edit.
type Layers struct {
	Cards         [3]Layer
	OpacityTarget Card
	DisplayTarget Card
}

func NewLayers() *Layers {
	l := &Layers{}
	l.Reset()
	return l
}

func (l *Layers) Reset() {
	*l = Layers{OpacityTarget: CardBlue, DisplayTarget: CardBlue}
	for i := range l.Cards {
		l.Cards[i] = Layer{ZIndex: i + 1, Opacity: 100, Display: DisplayBlock}
	}
}

// Layer returns the stored properties of c.
func (l *Layers) Layer(c Card) Layer {
	if !c.valid() {
		return Layer{}
	}
	return l.Cards[c]
}

func (l *Layers) SetZIndex(c Card, v int) {
	if c.valid() {
		l.Cards[c].ZIndex = v
	}
}

func (l *Layers) SelectOpacityTarget(c Card) {
	if c.valid() {
		l.OpacityTarget = c
	}
}

// SetOpacity changes the opacity of the selected card only.
func (l *Layers) SetOpacity(percent int) {
	l.Cards[l.OpacityTarget].Opacity = percent
}

func (l *Layers) SelectDisplayTarget(c Card) {
	if c.valid() {
		l.DisplayTarget = c
	}
}

// SetDisplay changes the display of the selected card only.
func (l *Layers) SetDisplay(v Display) {
	l.Cards[l.DisplayTarget].Display = v
}

func (l *Layers) Info() Info {
	return Info{
		ID:          TopicZIndex,
		Title:       "Z-Index & Layers",
		Description: "Learn how elements stack on top of each other.",
	}
}

func (l *Layers) Controls() []Control {
	cardOptions := make([]Option, 0, 3)
	for _, c := range Cards() {
		cardOptions = append(cardOptions, Option{Value: c.String(), Label: c.Label()})
	}
	selectCard := func(sel func(Card)) func(string) {
		return func(v string) {
			if c, ok := ParseCard(v); ok {
				sel(c)
			}
		}
	}

	controls := make([]Control, 0, 7)
	for _, c := range Cards() {
		controls = append(controls, intRange(c.String()+"-z-index", c.Label()+" Z-Index", "Adjust Z-Index Values",
			bounds{min: -1, max: 10, step: 1}, "", l.Cards[c].ZIndex, func(v int) { l.SetZIndex(c, v) }))
	}

	opacity := intRange("opacity", "Opacity", "Related Properties", bounds{min: 0, max: 100, step: 1}, "%",
		l.Cards[l.OpacityTarget].Opacity, l.SetOpacity)
	displays := []Option{
		{Value: string(DisplayBlock), Label: "Block"},
		{Value: string(DisplayNone), Label: "None"},
	}
	return append(controls,
		choice("opacity-target", "Opacity Target", "Related Properties", cardOptions,
			l.OpacityTarget.String(), selectCard(l.SelectOpacityTarget)),
		opacity,
		choice("display-target", "Display Target", "Related Properties", cardOptions,
			l.DisplayTarget.String(), selectCard(l.SelectDisplayTarget)),
		choice("display", "Display Property", "Related Properties", displays,
			string(l.Cards[l.DisplayTarget].Display), func(v string) { l.SetDisplay(Display(v)) }),
	)
}

// Preview stacks the cards 40px apart inside a relative container.
func (l *Layers) Preview() Region {
	container := Region{
		Name:  "layers",
		Style: []Declaration{decl("position", "relative")},
	}
	for _, c := range Cards() {
		layer := l.Cards[c]
		offset := px(40 * (int(c) + 1))
		container.Children = append(container.Children, Region{
			Name:  c.String() + "-card",
			Label: fmt.Sprintf("%s\nz-index: %d", c.Label(), layer.ZIndex),
			Style: []Declaration{
				decl("position", "absolute"),
				decl("top", offset),
				decl("left", offset),
				decl("z-index", fmt.Sprint(layer.ZIndex)),
				decl("opacity", layer.OpacityValue()),
				decl("display", string(layer.Display)),
			},
		})
	}
	return container
}

func (l *Layers) Stylesheet() string {
	blocks := make([]string, 0, 3)
	for _, c := range Cards() {
		layer := l.Cards[c]
		blocks = append(blocks, fmt.Sprintf(`.%s-card {
  position: absolute;
  z-index: %d;
  opacity: %s;
  display: %s;
}`, c, layer.ZIndex, layer.OpacityValue(), layer.Display))
	}
	return strings.Join(blocks, "\n")
}
