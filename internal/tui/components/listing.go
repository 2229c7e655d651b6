package components

import (
	"fmt"
	"strconv"
	"strings"
)

// Listing renders stylesheet text with line numbers. Lines in changed are zero-based, as
// reported by the stylesheet package, and get highlighted.
func Listing(text string, changed map[int]bool) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := len(strconv.Itoa(len(lines)))
	out := make([]string, len(lines))
	for i, line := range lines {
		number := lineNumberStyle.Render(fmt.Sprintf("%*d", width, i+1))
		if changed[i] {
			line = changedLineStyle.Render(line)
		}
		out[i] = number + "  " + line
	}
	return strings.Join(out, "\n")
}
