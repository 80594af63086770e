package template

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// Built-in templates used when the config does not override them.
const (
	DefaultBanner       = "/* {{.Name}} generated by scss-lite from {{.Source}} */"
	DefaultReportFormat = "{{.Path}}:{{.Line}}: {{.Message}}"
)

// BannerData is passed to the banner template.
type BannerData struct {
	Name    string // Output file stem, e.g. "card"
	Title   string // Humanized name, e.g. "Card"
	Source  string // Source path relative to the root
	Version string
}

// DiagnosticData is passed to the report template, once per diagnostic.
type DiagnosticData struct {
	Path    string
	Line    int
	Message string
}

// Engine handles template loading and rendering.
type Engine struct {
	templates map[string]*template.Template
}

// New creates a new template engine.
func New() *Engine {
	return &Engine{
		templates: make(map[string]*template.Template),
	}
}

// LoadFile loads a template from a file path.
func (e *Engine) LoadFile(name, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	return e.LoadString(name, string(content))
}

// LoadString loads a template from a string.
func (e *Engine) LoadString(name, content string) error {
	tmpl, err := template.New(name).Funcs(FuncMap()).Parse(content)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	e.templates[name] = tmpl
	return nil
}

// LoadOrDefault loads content, or fallback when content is empty.
func (e *Engine) LoadOrDefault(name, content, fallback string) error {
	if content == "" {
		content = fallback
	}
	return e.LoadString(name, content)
}

// Has reports whether a template with the given name is loaded.
func (e *Engine) Has(name string) bool {
	_, ok := e.templates[name]
	return ok
}

// Render renders a template with the given data.
func (e *Engine) Render(name string, data any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// RenderString parses and renders a template string in one step.
func (e *Engine) RenderString(content string, data any) (string, error) {
	tmpl, err := template.New("inline").Funcs(FuncMap()).Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
