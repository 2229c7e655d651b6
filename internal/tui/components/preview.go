package components

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cssplayground/internal/playground"
)

// Pixel lengths are scaled to cells: one column per 10px and one row per 20px, capped so a
// large value never swallows the screen.
const (
	pxPerColumn = 10
	pxPerRow    = 20
	maxSpacing  = 4
)

// annotated lists the declarations printed under a leaf region, since a terminal cannot
// show their effect directly.
var annotated = []string{
	"width", "height",
	"position", "top", "right", "bottom", "left",
	"opacity", "transform", "transition", "animation",
}

// Preview draws a region tree as nested boxes. Regions with display none are left out.
func Preview(r playground.Region) string {
	return renderRegion(r)
}

func renderRegion(r playground.Region) string {
	if v, _ := r.Get("display"); v == "none" {
		return ""
	}
	if len(r.Children) == 0 {
		return leafStyle(r).Render(leafBody(r))
	}

	children := make([]string, 0, len(r.Children))
	for _, child := range r.Children {
		if out := renderRegion(child); out != "" {
			children = append(children, out)
		}
	}
	body := arrange(r, children)
	if r.Label != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, r.Label, body)
	}
	return containerStyle(r).Render(body)
}

func leafBody(r playground.Region) string {
	lines := []string{r.Label}
	if r.Label == "" {
		lines[0] = r.Name
	}
	for _, property := range annotated {
		if v, ok := r.Get(property); ok {
			lines = append(lines, annotationStyle.Render(property+": "+v))
		}
	}
	return strings.Join(lines, "\n")
}

func leafStyle(r playground.Region) lipgloss.Style {
	style := itemStyle
	if radius, ok := r.Get("border-radius"); ok && pixels(radius) > 0 {
		style = style.BorderStyle(lipgloss.RoundedBorder())
	}
	if v, ok := r.Get("opacity"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f < 0.5 {
			style = style.Faint(true)
		}
	}
	return style
}

func containerStyle(r playground.Region) lipgloss.Style {
	style := regionStyle
	if radius, ok := r.Get("border-radius"); ok && pixels(radius) > 0 {
		style = roundedRegionStyle
	}
	if width, ok := r.Get("border-width"); ok {
		switch w := pixels(width); {
		case w == 0:
			style = style.BorderStyle(lipgloss.HiddenBorder())
		case w >= 5:
			style = style.BorderStyle(lipgloss.ThickBorder())
		}
	}
	for _, side := range []string{"padding", "margin"} {
		if _, ok := r.Get(side + "-top"); !ok {
			continue
		}
		style = style.Padding(
			spacing(r, side+"-top", pxPerRow),
			spacing(r, side+"-right", pxPerColumn),
			spacing(r, side+"-bottom", pxPerRow),
			spacing(r, side+"-left", pxPerColumn),
		)
	}
	return style
}

// arrange lays the rendered children out the way the region's display mode would.
func arrange(r playground.Region, children []string) string {
	if len(children) == 0 {
		return ""
	}
	display, _ := r.Get("display")
	switch {
	case display == "flex":
		return arrangeFlex(r, children)
	case display == "grid":
		return arrangeGrid(r, children)
	case positionedChildren(r):
		return arrangeLayers(r)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, children...)
	}
}

func arrangeFlex(r playground.Region, children []string) string {
	direction, _ := r.Get("flex-direction")
	align, _ := r.Get("align-items")
	if strings.HasSuffix(direction, "-reverse") {
		children = slices.Clone(children)
		slices.Reverse(children)
	}
	if strings.HasPrefix(direction, "column") {
		pos := lipgloss.Left
		switch align {
		case "center":
			pos = lipgloss.Center
		case "flex-end":
			pos = lipgloss.Right
		}
		return lipgloss.JoinVertical(pos, children...)
	}

	pos := lipgloss.Top
	switch align {
	case "center":
		pos = lipgloss.Center
	case "flex-end":
		pos = lipgloss.Bottom
	}
	wrap, _ := r.Get("flex-wrap")
	if wrap == "nowrap" || wrap == "" {
		return lipgloss.JoinHorizontal(pos, children...)
	}
	return joinRows(children, 3, 1, 0, pos)
}

func arrangeGrid(r playground.Region, children []string) string {
	tracks, _ := r.Get("grid-template-columns")
	gap, _ := r.Get("gap")
	g := pixels(gap)
	return joinRows(children, columnCount(tracks), cells(g, pxPerColumn), cells(g, pxPerRow), lipgloss.Top)
}

func joinRows(children []string, perRow, colGap, rowGap int, pos lipgloss.Position) string {
	sep := strings.Repeat(" ", colGap)
	var rows []string
	for chunk := range slices.Chunk(children, perRow) {
		cellsInRow := make([]string, 0, 2*len(chunk))
		for i, c := range chunk {
			if i > 0 && sep != "" {
				cellsInRow = append(cellsInRow, sep)
			}
			cellsInRow = append(cellsInRow, c)
		}
		if len(rows) > 0 && rowGap > 0 {
			rows = append(rows, strings.Repeat("\n", rowGap-1))
		}
		rows = append(rows, lipgloss.JoinHorizontal(pos, cellsInRow...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// arrangeLayers draws absolutely positioned children from the highest z-index down, each
// indented by its left offset, so the top of the list is what sits on top of the stack.
func arrangeLayers(r playground.Region) string {
	visible := make([]playground.Region, 0, len(r.Children))
	for _, child := range r.Children {
		if v, _ := child.Get("display"); v != "none" {
			visible = append(visible, child)
		}
	}
	slices.SortStableFunc(visible, func(a, b playground.Region) int {
		return zIndex(b) - zIndex(a)
	})
	rendered := make([]string, 0, len(visible))
	for _, child := range visible {
		left, _ := child.Get("left")
		indent := lipgloss.NewStyle().PaddingLeft(cells(pixels(left), pxPerColumn))
		rendered = append(rendered, indent.Render(renderRegion(child)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func positionedChildren(r playground.Region) bool {
	for _, child := range r.Children {
		if v, _ := child.Get("position"); v != "absolute" {
			return false
		}
	}
	return true
}

func zIndex(r playground.Region) int {
	v, _ := r.Get("z-index")
	n, _ := strconv.Atoi(v)
	return n
}

// columnCount reads the number of tracks from a grid-template-columns value.
func columnCount(tracks string) int {
	if rest, ok := strings.CutPrefix(tracks, "repeat("); ok {
		n, _, _ := strings.Cut(rest, ",")
		if c, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && c > 0 {
			return c
		}
	}
	if n := len(strings.Fields(tracks)); n > 0 {
		return n
	}
	return 1
}

func spacing(r playground.Region, property string, per float64) int {
	v, _ := r.Get(property)
	return cells(pixels(v), per)
}

func cells(px, per float64) int {
	n := int(math.Round(px / per))
	return max(0, min(maxSpacing, n))
}

// pixels parses a length such as "12px" or "7.5px". Anything else counts as zero.
func pixels(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
