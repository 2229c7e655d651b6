package playground

import "fmt"

// Border-radius attenuation per nesting level of the box model preview, outer to inner.
// These are a visual approximation only and deliberately kept as literals.
const (
	marginRadiusScale  = 1.2
	borderRadiusScale  = 1.0
	paddingRadiusScale = 0.8
	contentRadiusScale = 0.6
)

// BoxField identifies one field of the box model store.
type BoxField int

const (
	BoxWidth BoxField = iota
	BoxHeight
	BoxPaddingTop
	BoxPaddingRight
	BoxPaddingBottom
	BoxPaddingLeft
	BoxBorderWidth
	BoxBorderRadius
	BoxMarginTop
	BoxMarginRight
	BoxMarginBottom
	BoxMarginLeft
)

// Sides holds one value per box edge.
type Sides struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func uniform(v int) Sides {
	return Sides{Top: v, Right: v, Bottom: v, Left: v}
}

func (s Sides) shorthand() string {
	return fmt.Sprintf("%dpx %dpx %dpx %dpx", s.Top, s.Right, s.Bottom, s.Left)
}

// BoxModel is the parameter store of the box model lesson.
type BoxModel struct {
	Width        int
	Height       int
	Padding      Sides
	BorderWidth  int
	BorderRadius int
	Margin       Sides
}

// NewBoxModel returns the box model with its default values.
func NewBoxModel() *BoxModel {
	b := &BoxModel{}
	b.Reset()
	return b
}

// Reset restores the defaults.
func (b *BoxModel) Reset() {
	*b = BoxModel{
		Width:       100,
		Height:      100,
		Padding:     uniform(20),
		BorderWidth: 2,
		Margin:      uniform(10),
	}
}

// Set replaces a single field.
func (b *BoxModel) Set(field BoxField, v int) {
	if p := b.field(field); p != nil {
		*p = v
	}
}

// Get reads a single field.
func (b *BoxModel) Get(field BoxField) int {
	if p := b.field(field); p != nil {
		return *p
	}
	return 0
}

func (b *BoxModel) field(field BoxField) *int {
	switch field {
	case BoxWidth:
		return &b.Width
	case BoxHeight:
		return &b.Height
	case BoxPaddingTop:
		return &b.Padding.Top
	case BoxPaddingRight:
		return &b.Padding.Right
	case BoxPaddingBottom:
		return &b.Padding.Bottom
	case BoxPaddingLeft:
		return &b.Padding.Left
	case BoxBorderWidth:
		return &b.BorderWidth
	case BoxBorderRadius:
		return &b.BorderRadius
	case BoxMarginTop:
		return &b.Margin.Top
	case BoxMarginRight:
		return &b.Margin.Right
	case BoxMarginBottom:
		return &b.Margin.Bottom
	case BoxMarginLeft:
		return &b.Margin.Left
	default:
		return nil
	}
}

type boxBinding struct {
	field  BoxField
	id     string
	label  string
	group  string
	bounds bounds
}

var (
	dimensionBounds = bounds{min: 50, max: 200, step: 1}
	spacingBounds   = bounds{min: 0, max: 50, step: 1}

	boxBindings = []boxBinding{
		{BoxWidth, "width", "Width", "Dimensions", dimensionBounds},
		{BoxHeight, "height", "Height", "Dimensions", dimensionBounds},
		{BoxPaddingTop, "padding-top", "Top", "Padding", spacingBounds},
		{BoxPaddingRight, "padding-right", "Right", "Padding", spacingBounds},
		{BoxPaddingBottom, "padding-bottom", "Bottom", "Padding", spacingBounds},
		{BoxPaddingLeft, "padding-left", "Left", "Padding", spacingBounds},
		{BoxBorderWidth, "border-width", "Width", "Border", bounds{min: 0, max: 20, step: 1}},
		{BoxBorderRadius, "border-radius", "Radius", "Border", spacingBounds},
		{BoxMarginTop, "margin-top", "Top", "Margin", spacingBounds},
		{BoxMarginRight, "margin-right", "Right", "Margin", spacingBounds},
		{BoxMarginBottom, "margin-bottom", "Bottom", "Margin", spacingBounds},
		{BoxMarginLeft, "margin-left", "Left", "Margin", spacingBounds},
	}
)

// Info describes the lesson.
func (b *BoxModel) Info() Info {
	return Info{
		ID:          TopicBoxModel,
		Title:       "Box Model",
		Description: "Understand how margin, border, padding, and dimensions work together.",
	}
}

// Controls returns one slider per field.
func (b *BoxModel) Controls() []Control {
	controls := make([]Control, 0, len(boxBindings))
	for _, bind := range boxBindings {
		field := bind.field
		controls = append(controls, intRange(bind.id, bind.label, bind.group, bind.bounds, "px", b.Get(field), func(v int) {
			b.Set(field, v)
		}))
	}
	return controls
}

// Preview nests margin, border, padding and content areas. The border radius shrinks at
// each level so the inner corners stay inside the outer ones.
func (b *BoxModel) Preview() Region {
	radius := float64(b.BorderRadius)

	content := Region{
		Name:  "content-area",
		Label: "Content",
		Style: []Declaration{
			decl("width", px(b.Width)),
			decl("height", px(b.Height)),
			decl("border-radius", pxFloat(radius*contentRadiusScale)),
		},
	}
	padding := Region{
		Name: "padding-area",
		Style: []Declaration{
			decl("padding-top", px(b.Padding.Top)),
			decl("padding-right", px(b.Padding.Right)),
			decl("padding-bottom", px(b.Padding.Bottom)),
			decl("padding-left", px(b.Padding.Left)),
			decl("border-radius", pxFloat(radius*paddingRadiusScale)),
		},
		Children: []Region{content},
	}
	border := Region{
		Name: "border-area",
		Style: []Declaration{
			decl("border-width", px(b.BorderWidth)),
			decl("border-style", "solid"),
			decl("border-color", "rgba(185, 28, 28, 0.2)"),
			decl("border-radius", pxFloat(radius*borderRadiusScale)),
		},
		Children: []Region{padding},
	}
	return Region{
		Name: "margin-area",
		Style: []Declaration{
			decl("margin-top", px(b.Margin.Top)),
			decl("margin-right", px(b.Margin.Right)),
			decl("margin-bottom", px(b.Margin.Bottom)),
			decl("margin-left", px(b.Margin.Left)),
			decl("border-radius", pxFloat(radius*marginRadiusScale)),
		},
		Children: []Region{border},
	}
}

// Stylesheet renders the .element rule.
func (b *BoxModel) Stylesheet() string {
	return fmt.Sprintf(`.element {
  width: %dpx;
  height: %dpx;
  padding: %s;
  border: %dpx solid #333;
  border-radius: %dpx;
  margin: %s;
}`, b.Width, b.Height, b.Padding.shorthand(), b.BorderWidth, b.BorderRadius, b.Margin.shorthand())
}
