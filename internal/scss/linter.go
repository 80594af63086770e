package scss

import (
	"fmt"
	"strings"
)

// Diagnostic messages. The set is fixed; callers may compare against these.
const (
	MsgUnmatchedClosingBrace = "Unmatched closing brace"
	MsgPropertyMissingValue  = "Property missing value after :"
	MsgVariableMissingColon  = "Variable declaration missing :"
	MsgUnclosedBlock         = "Unclosed block starting here"
)

// Diagnostic is a structural problem found by Lint. Line is 1-based.
type Diagnostic struct {
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// String renders the diagnostic as "Line N: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// BraceFrame records where a block was opened.
type BraceFrame struct {
	Line int
	Text string
}

// Lint checks brace balance and declaration syntax. Diagnostics found while
// scanning come first in line order, followed by one entry per block that
// was never closed, outermost first. An empty result means the source is
// safe to compile.
func Lint(source string) []Diagnostic {
	var diags []Diagnostic
	var stack []BraceFrame

	for i, raw := range splitLines(source) {
		line := strings.TrimSpace(raw)
		lineNo := i + 1
		if line == "" {
			continue
		}

		switch {
		case isOpener(line):
			stack = append(stack, BraceFrame{Line: lineNo, Text: line})

		case isCloser(line):
			if len(stack) == 0 {
				diags = append(diags, Diagnostic{Line: lineNo, Message: MsgUnmatchedClosingBrace})
				continue
			}
			stack = stack[:len(stack)-1]

		case isDeclaration(line):
			_, value, _ := strings.Cut(line, ":")
			if strings.TrimSpace(value) == "" {
				diags = append(diags, Diagnostic{Line: lineNo, Message: MsgPropertyMissingValue})
			}

		case isVariable(line):
			diags = append(diags, Diagnostic{Line: lineNo, Message: MsgVariableMissingColon})
		}
	}

	for _, frame := range stack {
		diags = append(diags, Diagnostic{Line: frame.Line, Message: MsgUnclosedBlock})
	}

	return diags
}

// Build lints source and compiles it only when the linter is clean. The
// two passes stay independent; Build is just the gate callers are expected
// to apply.
func Build(source string) (string, []Diagnostic) {
	if diags := Lint(source); len(diags) > 0 {
		return "", diags
	}
	return Compile(source), nil
}
