package stylesheet

// Key addresses a declaration by the selector of its innermost rule and its property.
type Key struct {
	Selector string
	Property string
}

// Changes lists the declarations of after whose value differs from before, or that before
// lacks. Removed declarations are not reported.
func Changes(before, after Sheet) []Declaration {
	previous := index(before.Rules)
	var changed []Declaration
	walk(after.Rules, func(selector string, d Declaration) {
		if v, ok := previous[Key{Selector: selector, Property: d.Property}]; !ok || v != d.Value {
			changed = append(changed, d)
		}
	})
	return changed
}

// ChangedLines parses both texts and returns the set of lines of after holding a changed
// declaration.
func ChangedLines(before, after string) (map[int]bool, error) {
	prev, err := Parse(before)
	if err != nil {
		return nil, err
	}
	next, err := Parse(after)
	if err != nil {
		return nil, err
	}
	lines := make(map[int]bool)
	for _, d := range Changes(prev, next) {
		lines[d.Line] = true
	}
	return lines, nil
}

func index(rules []Rule) map[Key]string {
	into := make(map[Key]string)
	walk(rules, func(selector string, d Declaration) {
		into[Key{Selector: selector, Property: d.Property}] = d.Value
	})
	return into
}

func walk(rules []Rule, fn func(selector string, d Declaration)) {
	for _, r := range rules {
		for _, d := range r.Declarations {
			fn(r.Selector, d)
		}
		walk(r.Rules, fn)
	}
}
