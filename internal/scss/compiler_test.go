package scss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "variable substitution",
			source: "$primary: #3490dc;\n.card {\n  background: $primary;\n}",
			want:   ".card {\n  background: #3490dc;\n}",
		},
		{
			name:   "nested selectors are joined with a space",
			source: ".nav {\n  .item {\n    color: blue\n  }\n}",
			want:   ".nav .item {\n  color: blue;\n}",
		},
		{
			name:   "parent declarations keep their own group",
			source: ".nav {\n  margin: 0;\n  a {\n    color: red;\n  }\n  padding: 0;\n}",
			want:   ".nav {\n  margin: 0;\n  padding: 0;\n}\n.nav a {\n  color: red;\n}",
		},
		{
			name:   "repeated selectors merge in first-seen order",
			source: ".a {\ncolor: red;\n}\n.b {\nmargin: 0;\n}\n.a {\npadding: 1px;\n}",
			want:   ".a {\n  color: red;\n  padding: 1px;\n}\n.b {\n  margin: 0;\n}",
		},
		{
			name:   "declarations outside a block use the root selector",
			source: "color: red",
			want:   "& {\n  color: red;\n}",
		},
		{
			name:   "comments and unrecognized lines are skipped",
			source: "// note: ignored\n/* a: b */\n.a {\nstray words\ncolor: red;\n}",
			want:   ".a {\n  color: red;\n}",
		},
		{
			name:   "variable without colon defines nothing",
			source: "$oops\n.a {\nw: $oops;\n}",
			want:   ".a {\n  w: $oops;\n}",
		},
		{
			name:   "trailing semicolon and spaces are stripped from values",
			source: "$w: 1px ;\n.a {\nwidth: $w\n}",
			want:   ".a {\n  width: 1px;\n}",
		},
		{
			name:   "pseudo-class selectors open blocks",
			source: "a:hover {\ncolor: red;\n}",
			want:   "a:hover {\n  color: red;\n}",
		},
		{
			name:   "extra closers are ignored",
			source: "}\n}\n.a {\nx: 1\n}\n}",
			want:   ".a {\n  x: 1;\n}",
		},
		{
			name:   "unclosed blocks keep owning declarations",
			source: ".a {\n.b {\nx: 1\n",
			want:   ".a .b {\n  x: 1;\n}",
		},
		{
			name:   "lone closer",
			source: "}",
			want:   "",
		},
		{
			name:   "empty input",
			source: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.source))
		})
	}
}

func TestCompile_VariableTiming(t *testing.T) {
	source := "$x: 1;\n.a {\nw: $x;\n}\n$x: 2;\n.b {\nw: $x;\n}\n$y: 3;\n.c {\nw: $y;\n}"
	want := ".a {\n  w: 1;\n}\n.b {\n  w: 2;\n}\n.c {\n  w: 3;\n}"
	assert.Equal(t, want, Compile(source))

	source = ".a {\nw: $late;\n}\n$late: 1;"
	assert.Equal(t, ".a {\n  w: $late;\n}", Compile(source))
}

func TestCompile_SubstitutionOrder(t *testing.T) {
	// $a is defined first, so its value is rewritten by $b on the same pass.
	resolved := "$a: $b;\n$b: 2;\n.x {\nw: $a;\n}"
	assert.Equal(t, ".x {\n  w: 2;\n}", Compile(resolved))

	unresolved := "$b: 2;\n$a: $b;\n.x {\nw: $a;\n}"
	assert.Equal(t, ".x {\n  w: $b;\n}", Compile(unresolved))
}

func TestCompile_Idempotent(t *testing.T) {
	source := "$gap: 4px;\n.a {\nmargin: $gap;\n.b {\npadding: $gap\n}\n}\ncolor: red\n.a {\nborder: 0;\n}"
	once := Compile(source)
	assert.Equal(t, once, Compile(once))
}

func TestCompile_Deterministic(t *testing.T) {
	source := "$a: 1;\n$b: 2;\n$c: 3;\n.x {\nw: $a $b $c;\n}\n.y {\nh: $c;\n}"
	first := Compile(source)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Compile(source))
	}
}

func TestParse(t *testing.T) {
	sheet := Parse("$c: red;\n.a {\ncolor: $c;\n}\n$c: blue;\n.a {\nbackground: $c\n}")

	assert.Equal(t, []string{"$c"}, sheet.Variables.Names())
	v, _ := sheet.Variables.Get("$c")
	assert.Equal(t, "blue", v)

	require.Len(t, sheet.Declarations, 2)
	assert.Equal(t, Declaration{Selector: ".a", Rule: "color: red;", Line: 3}, sheet.Declarations[0])
	assert.Equal(t, Declaration{Selector: ".a", Rule: "background: blue", Line: 7}, sheet.Declarations[1])

	require.Len(t, sheet.Groups, 1)
	assert.Equal(t, []string{"  color: red;", "  background: blue;"}, sheet.Groups[0].Declarations)
}
