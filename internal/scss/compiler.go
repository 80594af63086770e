package scss

import (
	"strings"
)

// RootSelector is the selector assigned to declarations that appear
// outside of any block.
const RootSelector = "&"

// Declaration is a single rule attributed to a full selector, in source order.
type Declaration struct {
	Selector string
	Rule     string
	Line     int
}

// Group collects the formatted declarations of every block that resolved
// to the same full selector.
type Group struct {
	Selector     string
	Declarations []string
}

// Sheet is the result of one compiler pass over a source document.
type Sheet struct {
	// Variables holds the table as it stood at the end of the document.
	Variables *Variables
	// Declarations lists every declaration in source order.
	Declarations []Declaration
	// Groups lists declarations grouped by selector in first-seen order.
	Groups []Group
}

// Parse runs the compiler pass over source. It never fails: closers with
// no open block are ignored and blocks left open at the end of input keep
// owning the declarations that follow them.
func Parse(source string) *Sheet {
	sheet := &Sheet{Variables: NewVariables()}
	var stack []string

	for i, raw := range splitLines(source) {
		line := strings.TrimSpace(raw)

		switch Classify(line) {
		case KindVariable:
			name, value, ok := parseVariable(line)
			if !ok {
				continue
			}
			sheet.Variables.Set(name, value)

		case KindOpener:
			stack = append(stack, strings.TrimSpace(strings.TrimSuffix(line, "{")))

		case KindCloser:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case KindDeclaration:
			sheet.Declarations = append(sheet.Declarations, Declaration{
				Selector: fullSelector(stack),
				Rule:     sheet.Variables.Substitute(line),
				Line:     i + 1,
			})
		}
	}

	sheet.Groups = groupDeclarations(sheet.Declarations)
	return sheet
}

// Compile translates source into plain stylesheet text.
func Compile(source string) string {
	return Parse(source).String()
}

// String formats the grouped declarations as stylesheet blocks.
func (s *Sheet) String() string {
	var sb strings.Builder
	for _, g := range s.Groups {
		sb.WriteString(g.Selector)
		sb.WriteString(" {\n")
		sb.WriteString(strings.Join(g.Declarations, "\n"))
		sb.WriteString("\n}\n")
	}
	return strings.TrimSpace(sb.String())
}

// parseVariable splits "$name: value;" into its name and value. Lines
// without a colon do not define anything.
func parseVariable(line string) (string, string, bool) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
	return strings.TrimSpace(name), value, true
}

func fullSelector(stack []string) string {
	selector := strings.TrimSpace(strings.Join(stack, " "))
	if selector == "" {
		return RootSelector
	}
	return selector
}

func formatRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if !strings.HasSuffix(rule, ";") {
		rule += ";"
	}
	return "  " + rule
}

func groupDeclarations(decls []Declaration) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, d := range decls {
		i, ok := index[d.Selector]
		if !ok {
			i = len(groups)
			index[d.Selector] = i
			groups = append(groups, Group{Selector: d.Selector})
		}
		groups[i].Declarations = append(groups[i].Declarations, formatRule(d.Rule))
	}
	return groups
}
