package playground

import (
	"fmt"
	"strconv"
)

type (
	FlexDirection  string
	JustifyContent string
	AlignItems     string
	FlexWrap       string
)

const (
	DirectionRow           FlexDirection = "row"
	DirectionColumn        FlexDirection = "column"
	DirectionRowReverse    FlexDirection = "row-reverse"
	DirectionColumnReverse FlexDirection = "column-reverse"

	JustifyFlexStart    JustifyContent = "flex-start"
	JustifyFlexEnd      JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"

	AlignStretch   AlignItems = "stretch"
	AlignFlexStart AlignItems = "flex-start"
	AlignFlexEnd   AlignItems = "flex-end"
	AlignCenter    AlignItems = "center"
	AlignBaseline  AlignItems = "baseline"

	WrapNone    FlexWrap = "nowrap"
	WrapWrap    FlexWrap = "wrap"
	WrapReverse FlexWrap = "wrap-reverse"
)

// Flexbox is the parameter store of the flexbox lesson.
type Flexbox struct {
	Direction FlexDirection
	Justify   JustifyContent
	Align     AlignItems
	Wrap      FlexWrap
	Items     int
}

// NewFlexbox returns a row container with four items.
func NewFlexbox() *Flexbox {
	f := &Flexbox{}
	f.Reset()
	return f
}

func (f *Flexbox) Reset() {
	*f = Flexbox{
		Direction: DirectionRow,
		Justify:   JustifyFlexStart,
		Align:     AlignStretch,
		Wrap:      WrapNone,
		Items:     4,
	}
}

func (f *Flexbox) SetDirection(v FlexDirection) { f.Direction = v }
func (f *Flexbox) SetJustify(v JustifyContent)  { f.Justify = v }
func (f *Flexbox) SetAlign(v AlignItems)        { f.Align = v }
func (f *Flexbox) SetWrap(v FlexWrap)           { f.Wrap = v }

// AddItem appends an item. There is no upper bound.
func (f *Flexbox) AddItem() { f.Items++ }

// RemoveItem drops the last item but always keeps one.
func (f *Flexbox) RemoveItem() {
	if f.Items > 1 {
		f.Items--
	}
}

func (f *Flexbox) Info() Info {
	return Info{
		ID:          TopicFlexbox,
		Title:       "Flexbox",
		Description: "Learn how items align and distribute in a flexible container.",
	}
}

func (f *Flexbox) Controls() []Control {
	wrapOptions := []Option{
		{Value: string(WrapNone), Label: "No Wrap"},
		{Value: string(WrapWrap), Label: sentenceLabel(string(WrapWrap))},
		{Value: string(WrapReverse), Label: sentenceLabel(string(WrapReverse))},
	}
	return []Control{
		choice("flex-direction", "Flex Direction", "Container Properties",
			sentenceOptions(DirectionRow, DirectionColumn, DirectionRowReverse, DirectionColumnReverse),
			string(f.Direction), func(v string) { f.SetDirection(FlexDirection(v)) }),
		choice("justify-content", "Justify Content", "Container Properties",
			titledOptions(JustifyFlexStart, JustifyFlexEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly),
			string(f.Justify), func(v string) { f.SetJustify(JustifyContent(v)) }),
		choice("align-items", "Align Items", "Container Properties",
			titledOptions(AlignStretch, AlignFlexStart, AlignFlexEnd, AlignCenter, AlignBaseline),
			string(f.Align), func(v string) { f.SetAlign(AlignItems(v)) }),
		choice("flex-wrap", "Flex Wrap", "Container Properties",
			wrapOptions, string(f.Wrap), func(v string) { f.SetWrap(FlexWrap(v)) }),
		action("add-item", "Add Item", "Item Properties", f.AddItem),
		action("remove-item", "Remove Item", "Item Properties", f.RemoveItem),
	}
}

func (f *Flexbox) Preview() Region {
	container := Region{
		Name: "container",
		Style: []Declaration{
			decl("display", "flex"),
			decl("flex-direction", string(f.Direction)),
			decl("justify-content", string(f.Justify)),
			decl("align-items", string(f.Align)),
			decl("flex-wrap", string(f.Wrap)),
		},
	}
	for i := 1; i <= f.Items; i++ {
		container.Children = append(container.Children, Region{
			Name:  "item-" + strconv.Itoa(i),
			Label: "Item " + strconv.Itoa(i),
		})
	}
	return container
}

func (f *Flexbox) Stylesheet() string {
	return fmt.Sprintf(`.container {
  display: flex;
  flex-direction: %s;
  justify-content: %s;
  align-items: %s;
  flex-wrap: %s;
}`, f.Direction, f.Justify, f.Align, f.Wrap)
}
