package playground

import (
	"fmt"
	"strconv"
)

type (
	// GridTracks is a grid-template-columns or grid-template-rows value.
	GridTracks string
	// GridAlign is a justify-content or align-content value of the grid container.
	GridAlign string
)

const (
	ColumnsOne        GridTracks = "repeat(1, 1fr)"
	ColumnsTwo        GridTracks = "repeat(2, 1fr)"
	ColumnsThree      GridTracks = "repeat(3, 1fr)"
	ColumnsFour       GridTracks = "repeat(4, 1fr)"
	ColumnsOneTwoOne  GridTracks = "1fr 2fr 1fr"
	ColumnsAutoTwoFr  GridTracks = "auto 1fr 1fr"
	RowsAuto          GridTracks = "auto"
	RowsTwo           GridTracks = "repeat(2, 1fr)"
	RowsThree         GridTracks = "repeat(3, 1fr)"
	RowsOneTwo        GridTracks = "1fr 2fr"
	RowsHeaderContent GridTracks = "auto 1fr auto"

	GridStart        GridAlign = "start"
	GridCenter       GridAlign = "center"
	GridEnd          GridAlign = "end"
	GridSpaceBetween GridAlign = "space-between"
)

var (
	columnOptions = []Option{
		{Value: string(ColumnsOne), Label: "1 column"},
		{Value: string(ColumnsTwo), Label: "2 equal columns"},
		{Value: string(ColumnsThree), Label: "3 equal columns"},
		{Value: string(ColumnsFour), Label: "4 equal columns"},
		{Value: string(ColumnsOneTwoOne), Label: "1-2-1 columns"},
		{Value: string(ColumnsAutoTwoFr), Label: "Auto + 2 equal columns"},
	}
	rowOptions = []Option{
		{Value: string(RowsAuto), Label: "Auto rows"},
		{Value: string(RowsTwo), Label: "2 equal rows"},
		{Value: string(RowsThree), Label: "3 equal rows"},
		{Value: string(RowsOneTwo), Label: "1fr + 2fr rows"},
		{Value: string(RowsHeaderContent), Label: "Header/Content/Footer"},
	}
)

// Grid is the parameter store of the grid layout lesson.
type Grid struct {
	Columns GridTracks
	Rows    GridTracks
	Gap     int
	Justify GridAlign
	Align   GridAlign
	Items   int
}

func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

func (g *Grid) Reset() {
	*g = Grid{
		Columns: ColumnsThree,
		Rows:    RowsAuto,
		Gap:     16,
		Justify: GridStart,
		Align:   GridStart,
		Items:   6,
	}
}

func (g *Grid) SetColumns(v GridTracks)       { g.Columns = v }
func (g *Grid) SetRows(v GridTracks)          { g.Rows = v }
func (g *Grid) SetGap(v int)                  { g.Gap = v }
func (g *Grid) SetJustifyContent(v GridAlign) { g.Justify = v }
func (g *Grid) SetAlignContent(v GridAlign)   { g.Align = v }

func (g *Grid) AddItem() { g.Items++ }

func (g *Grid) RemoveItem() {
	if g.Items > 1 {
		g.Items--
	}
}

func (g *Grid) Info() Info {
	return Info{
		ID:          TopicGrid,
		Title:       "Grid Layout",
		Description: "Learn how to create complex layouts with CSS Grid.",
	}
}

func (g *Grid) Controls() []Control {
	aligns := titledOptions(GridStart, GridCenter, GridEnd, GridSpaceBetween)
	return []Control{
		choice("grid-template-columns", "Grid Template Columns", "Grid Container", columnOptions,
			string(g.Columns), func(v string) { g.SetColumns(GridTracks(v)) }),
		choice("grid-template-rows", "Grid Template Rows", "Grid Container", rowOptions,
			string(g.Rows), func(v string) { g.SetRows(GridTracks(v)) }),
		intRange("gap", "Gap Size", "Grid Container", bounds{min: 0, max: 40, step: 1}, "px", g.Gap, g.SetGap),
		choice("justify-content", "Justify Content", "Grid Container", aligns,
			string(g.Justify), func(v string) { g.SetJustifyContent(GridAlign(v)) }),
		choice("align-content", "Align Content", "Grid Container", aligns,
			string(g.Align), func(v string) { g.SetAlignContent(GridAlign(v)) }),
		action("add-item", "Add Item", "Grid Items", g.AddItem),
		action("remove-item", "Remove Item", "Grid Items", g.RemoveItem),
	}
}

func (g *Grid) Preview() Region {
	container := Region{
		Name: "container",
		Style: []Declaration{
			decl("display", "grid"),
			decl("grid-template-columns", string(g.Columns)),
			decl("grid-template-rows", string(g.Rows)),
			decl("gap", px(g.Gap)),
			decl("justify-content", string(g.Justify)),
			decl("align-content", string(g.Align)),
		},
	}
	for i := 1; i <= g.Items; i++ {
		n := strconv.Itoa(i)
		container.Children = append(container.Children, Region{Name: "item-" + n, Label: n})
	}
	return container
}

func (g *Grid) Stylesheet() string {
	return fmt.Sprintf(`.container {
  display: grid;
  grid-template-columns: %s;
  grid-template-rows: %s;
  gap: %dpx;
  justify-content: %s;
  align-content: %s;
}`, g.Columns, g.Rows, g.Gap, g.Justify, g.Align)
}
