package scss

import (
	"regexp"
)

type variable struct {
	name    string
	value   string
	pattern *regexp.Regexp
}

// Variables is an insertion-ordered variable table. Redefining a name
// replaces its value but keeps the position of the first definition,
// because substitution walks the table in that order.
type Variables struct {
	entries []*variable
	index   map[string]int
}

// NewVariables creates an empty table.
func NewVariables() *Variables {
	return &Variables{index: make(map[string]int)}
}

// Set defines or redefines name.
func (v *Variables) Set(name, value string) {
	if i, ok := v.index[name]; ok {
		v.entries[i].value = value
		return
	}
	v.index[name] = len(v.entries)
	v.entries = append(v.entries, &variable{
		name:  name,
		value: value,
		// The name has to end at a word boundary: "$gap" does not match
		// inside "$gaps", but it does match the front of "$gap-lg".
		pattern: regexp.MustCompile(regexp.QuoteMeta(name) + `\b`),
	})
}

// Get returns the current value of name.
func (v *Variables) Get(name string) (string, bool) {
	i, ok := v.index[name]
	if !ok {
		return "", false
	}
	return v.entries[i].value, true
}

// Len returns the number of distinct names.
func (v *Variables) Len() int {
	return len(v.entries)
}

// Names returns the variable names in first-definition order.
func (v *Variables) Names() []string {
	names := make([]string, len(v.entries))
	for i, e := range v.entries {
		names[i] = e.name
	}
	return names
}

// Range calls fn for each variable in table order until fn returns false.
func (v *Variables) Range(fn func(name, value string) bool) {
	for _, e := range v.entries {
		if !fn(e.name, e.value) {
			return
		}
	}
}

// Substitute replaces every whole-word occurrence of each variable in text.
// Variables are applied one after another in table order over the
// accumulating text. There is no fixed-point resolution: a value that names
// another variable is only expanded if that variable comes later in the
// table.
func (v *Variables) Substitute(text string) string {
	for _, e := range v.entries {
		text = e.pattern.ReplaceAllLiteralString(text, e.value)
	}
	return text
}
