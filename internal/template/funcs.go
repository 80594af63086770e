package template

import (
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		// String functions
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"title":     titleCaser.String,
		"trimSpace": strings.TrimSpace,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"replace":   strings.ReplaceAll,
		"join":      strings.Join,
		"split":     strings.Split,

		// Path functions
		"base": filepath.Base,
		"stem": stem,

		// Formatting functions
		"indent":   indent,
		"humanize": Humanize,
	}
}

// indent adds n spaces of indentation to each non-empty line.
func indent(n int, s string) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Humanize turns a file stem like "dark_theme-v2" into "Dark Theme V2".
func Humanize(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(stem(name))
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
