package github

import "github.com/saltyorg/scss-lite/internal/scss"

// FileDiagnostics holds the lint result of a single stylesheet.
type FileDiagnostics struct {
	Path        string
	Diagnostics []scss.Diagnostic
}

// LintResult holds the lint results of a run over many stylesheets.
type LintResult struct {
	Files []FileDiagnostics
}

// Add records the diagnostics for path.
func (r *LintResult) Add(path string, diags []scss.Diagnostic) {
	r.Files = append(r.Files, FileDiagnostics{Path: path, Diagnostics: diags})
}

// HasDiagnostics returns true if any file has diagnostics.
func (r *LintResult) HasDiagnostics() bool {
	return r.TotalDiagnostics() > 0
}

// TotalDiagnostics returns the number of diagnostics across all files.
func (r *LintResult) TotalDiagnostics() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Diagnostics)
	}
	return total
}

// FailedFiles returns the number of files with at least one diagnostic.
func (r *LintResult) FailedFiles() int {
	failed := 0
	for _, f := range r.Files {
		if len(f.Diagnostics) > 0 {
			failed++
		}
	}
	return failed
}
