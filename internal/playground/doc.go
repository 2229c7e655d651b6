// Package playground holds the interactive CSS lessons.
//
// Every topic (box model, flexbox, grid, positioning, z-index and transforms) follows the same
// shape:
//
//   - the topic struct itself is the parameter store: plain fields plus typed setters that
//     replace one value and keep the others;
//   - Controls describes the control panel bound to those fields. Control.Apply parses raw
//     input the way a slider or a select would produce it and calls the typed setter;
//   - Preview computes the presentational attributes of the visual regions;
//   - Stylesheet renders the CSS rule text matching the preview.
//
// Data flows one way: control → store → preview and stylesheet. Topics share nothing and a
// Session simply owns one of each.
package playground
