package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const themeDoc = `<style>
/* BEGIN THEME */
old {
  color: red;
}
/* END THEME */
</style>`

func TestFindManagedSection(t *testing.T) {
	section := FindManagedSection(themeDoc, "THEME")
	require.NotNil(t, section)

	assert.Equal(t, "THEME", section.Name)
	assert.Equal(t, "\nold {\n  color: red;\n}\n", section.Content)
	assert.Equal(t, 2, section.StartLine)
	assert.Equal(t, 6, section.EndLine)

	assert.Nil(t, FindManagedSection(themeDoc, "OTHER"))
	assert.Nil(t, FindManagedSection("/* BEGIN THEME */ no end", "THEME"))
}

func TestUpdateManagedSection(t *testing.T) {
	updated, err := UpdateManagedSection(themeDoc, "THEME", ".new {\n  color: blue;\n}")
	require.NoError(t, err)

	want := `<style>
/* BEGIN THEME */
.new {
  color: blue;
}
/* END THEME */
</style>`
	assert.Equal(t, want, updated)

	again, err := UpdateManagedSection(updated, "THEME", ".new {\n  color: blue;\n}")
	require.NoError(t, err)
	assert.Equal(t, updated, again)

	_, err = UpdateManagedSection(themeDoc, "MISSING", "x")
	assert.ErrorContains(t, err, `managed section "MISSING" not found`)
}

func TestHasManagedSection(t *testing.T) {
	assert.True(t, HasManagedSection(themeDoc, "THEME"))
	assert.False(t, HasManagedSection(themeDoc, "theme"))
}

func TestCreateManagedSection(t *testing.T) {
	assert.Equal(t, "/* BEGIN A */\nx\n/* END A */", CreateManagedSection("A", "x"))
	assert.Equal(t, "/* BEGIN A */\nx\n/* END A */", CreateManagedSection("A", "x\n"))
}

func TestValidateManagedSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"balanced", themeDoc, nil},
		{"missing end", "/* BEGIN A */\n", []string{`missing END marker for "A"`}},
		{"missing begin", "/* END B */\n", []string{`missing BEGIN marker for "B"`}},
		{"reversed", "/* END A */\n/* BEGIN A */\n", []string{`END marker for "A" comes before BEGIN`}},
		{"duplicate", "/* BEGIN A */\n/* END A */\n/* BEGIN A */\n", []string{`duplicate BEGIN marker for "A"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateManagedSections(tt.content))
		})
	}
}
