package playground

import "strings"

// Position is a value of the CSS position property.
type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
	PositionSticky   Position = "sticky"
)

var positionDescriptions = map[Position]string{
	PositionStatic:   "Static: Default position. Elements render in order as they appear in the document flow.",
	PositionRelative: "Relative: Positioned relative to its normal position. Setting top, right, etc. will move it from its normal position.",
	PositionAbsolute: "Absolute: Positioned relative to the nearest positioned ancestor. Removed from normal document flow.",
	PositionFixed:    "Fixed: Positioned relative to the viewport. Stays in place even when scrolling.",
	PositionSticky:   "Sticky: Toggles between relative and fixed based on scroll position. Try scrolling the container.",
}

// Describe explains how p places an element.
func (p Position) Describe() string {
	return positionDescriptions[p]
}

// Offset identifies one of the four inset properties.
type Offset int

const (
	OffsetTop Offset = iota
	OffsetRight
	OffsetBottom
	OffsetLeft
)

var offsetNames = [...]string{"top", "right", "bottom", "left"}

func (o Offset) String() string {
	if o < OffsetTop || o > OffsetLeft {
		return "unknown"
	}
	return offsetNames[o]
}

// Positioning is the parameter store of the positioning lesson. Offsets are kept while the
// element is static but have no effect until another position is chosen.
type Positioning struct {
	Position Position
	Offsets  [4]int
}

func NewPositioning() *Positioning {
	p := &Positioning{}
	p.Reset()
	return p
}

func (p *Positioning) Reset() {
	*p = Positioning{Position: PositionStatic}
}

func (p *Positioning) SetPosition(v Position) { p.Position = v }

func (p *Positioning) SetOffset(o Offset, v int) {
	if o >= OffsetTop && o <= OffsetLeft {
		p.Offsets[o] = v
	}
}

// OffsetsActive reports whether the inset properties apply.
func (p *Positioning) OffsetsActive() bool {
	return p.Position != PositionStatic
}

func (p *Positioning) Info() Info {
	return Info{
		ID:          TopicPositioning,
		Title:       "Positioning",
		Description: "Understand how elements are positioned relative to each other.",
	}
}

func (p *Positioning) Controls() []Control {
	positions := []Position{PositionStatic, PositionRelative, PositionAbsolute, PositionFixed, PositionSticky}
	options := make([]Option, len(positions))
	for i, pos := range positions {
		options[i] = Option{Value: string(pos), Label: sentenceLabel(string(pos))}
	}

	controls := []Control{
		choice("position", "Position Type", "Position Type", options, string(p.Position), func(v string) {
			p.SetPosition(Position(v))
		}),
	}
	offsetBounds := bounds{min: -100, max: 100, step: 1}
	for o := OffsetTop; o <= OffsetLeft; o++ {
		name := o.String()
		c := intRange(name, TitleLabel(name), "Offset Values", offsetBounds, "px", p.Offsets[o], func(v int) {
			p.SetOffset(o, v)
		})
		controls = append(controls, disabled(c, !p.OffsetsActive(), "offsets apply only when position is not static"))
	}
	return controls
}

// Preview places the element inside its parent. Offsets are applied, zeros included, only
// when the element is not static.
func (p *Positioning) Preview() Region {
	element := Region{
		Name:  "positioned-element",
		Label: "Positioned Element",
		Style: []Declaration{decl("position", string(p.Position))},
	}
	if p.OffsetsActive() {
		for o := OffsetTop; o <= OffsetLeft; o++ {
			element.Style = append(element.Style, decl(o.String(), px(p.Offsets[o])))
		}
	}
	return Region{
		Name:     "parent-container",
		Label:    "Parent Container",
		Style:    []Declaration{decl("position", "relative")},
		Children: []Region{element},
	}
}

// Stylesheet lists only the offsets that move the element.
func (p *Positioning) Stylesheet() string {
	var b strings.Builder
	b.WriteString(".element {\n  position: " + string(p.Position) + ";")
	if p.OffsetsActive() {
		for o := OffsetTop; o <= OffsetLeft; o++ {
			if v := p.Offsets[o]; v != 0 {
				b.WriteString("\n  " + o.String() + ": " + px(v) + ";")
			}
		}
	}
	b.WriteString("\n}")
	return b.String()
}
