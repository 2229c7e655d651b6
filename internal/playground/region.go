package playground

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Declaration is one presentational attribute applied to a preview region.
type Declaration struct {
	Property string
	Value    string
}

// Region is a visual area of the live preview. Style keeps declarations in the order they
// are applied.
type Region struct {
	Name      string
	Label     string
	Style     []Declaration
	Children  []Region
	Keyframes string
}

// Get returns the value of property on this region.
func (r Region) Get(property string) (string, bool) {
	for _, d := range r.Style {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Find returns the first region named name, searching depth first from r.
func (r Region) Find(name string) (Region, bool) {
	if r.Name == name {
		return r, true
	}
	for _, child := range r.Children {
		if found, ok := child.Find(name); ok {
			return found, true
		}
	}
	return Region{}, false
}

// Tree renders the region hierarchy with its declarations.
func (r Region) Tree() string {
	tree := treeprint.NewWithRoot(r.heading())
	r.addTo(tree)
	return tree.String()
}

func (r Region) heading() string {
	if r.Label == "" {
		return r.Name
	}
	return fmt.Sprintf("%s %q", r.Name, strings.ReplaceAll(r.Label, "\n", " / "))
}

func (r Region) addTo(tree treeprint.Tree) {
	for _, d := range r.Style {
		tree.AddMetaNode(d.Property, d.Value)
	}
	if r.Keyframes != "" {
		tree.AddMetaNode("keyframes", firstLine(r.Keyframes))
	}
	for _, child := range r.Children {
		child.addTo(tree.AddBranch(child.heading()))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(strings.TrimSpace(line), " {")
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}
