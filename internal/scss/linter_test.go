package scss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Diagnostic
	}{
		{
			name:   "clean document",
			source: "$primary: #3490dc;\n.card {\n  background: $primary;\n}",
			want:   nil,
		},
		{
			name:   "unmatched closing brace",
			source: "}",
			want:   []Diagnostic{{Line: 1, Message: MsgUnmatchedClosingBrace}},
		},
		{
			name:   "unclosed block",
			source: ".a {\n  color: red;",
			want:   []Diagnostic{{Line: 1, Message: MsgUnclosedBlock}},
		},
		{
			name:   "property missing value",
			source: ".a {\n  color:\n}",
			want:   []Diagnostic{{Line: 2, Message: MsgPropertyMissingValue}},
		},
		{
			name:   "whitespace after colon is still missing",
			source: "color:   ",
			want:   []Diagnostic{{Line: 1, Message: MsgPropertyMissingValue}},
		},
		{
			name:   "variable with empty value",
			source: "$x:",
			want:   []Diagnostic{{Line: 1, Message: MsgPropertyMissingValue}},
		},
		{
			name:   "variable missing colon",
			source: "$oops",
			want:   []Diagnostic{{Line: 1, Message: MsgVariableMissingColon}},
		},
		{
			name:   "pseudo-class selector is an opener",
			source: "a:hover {\n}",
			want:   nil,
		},
		{
			name:   "value containing colons",
			source: "background: url(http://x)",
			want:   nil,
		},
		{
			name:   "unrecognized lines pass",
			source: "just words\n;",
			want:   nil,
		},
		{
			name:   "blank lines count toward line numbers",
			source: "\n\n   \n}",
			want:   []Diagnostic{{Line: 4, Message: MsgUnmatchedClosingBrace}},
		},
		{
			name:   "pass diagnostics first then unclosed blocks outermost first",
			source: "}\n.a {\n.b {\ncolor:\n$bad",
			want: []Diagnostic{
				{Line: 1, Message: MsgUnmatchedClosingBrace},
				{Line: 4, Message: MsgPropertyMissingValue},
				{Line: 5, Message: MsgVariableMissingColon},
				{Line: 2, Message: MsgUnclosedBlock},
				{Line: 3, Message: MsgUnclosedBlock},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lint(tt.source))
		})
	}
}

func TestLint_Deterministic(t *testing.T) {
	source := "}\n.a {\ncolor:\n.b {\n"
	first := Lint(source)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Lint(source))
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 3, Message: MsgUnclosedBlock}
	assert.Equal(t, "Line 3: Unclosed block starting here", d.String())
}

func TestBuild(t *testing.T) {
	t.Run("clean source compiles", func(t *testing.T) {
		css, diags := Build("$c: red;\n.a {\ncolor: $c;\n}")
		assert.Empty(t, diags)
		assert.Equal(t, ".a {\n  color: red;\n}", css)
	})

	t.Run("diagnostics block compilation", func(t *testing.T) {
		css, diags := Build(".a {\n  color: red;")
		assert.Equal(t, []Diagnostic{{Line: 1, Message: MsgUnclosedBlock}}, diags)
		assert.Empty(t, css)
	})
}
