package github

import (
	"fmt"
	"os"
	"strings"

	"github.com/saltyorg/scss-lite/internal/scss"
)

// FileStatus represents the build status of a stylesheet.
type FileStatus string

const (
	StatusCompiled  FileStatus = "compiled"
	StatusUnchanged FileStatus = "unchanged"
	StatusFailed    FileStatus = "failed" // lint diagnostics blocked compilation
	StatusError     FileStatus = "error"  // I/O or template failure
)

// FileResult holds the result of building a single stylesheet.
type FileResult struct {
	Path        string
	Output      string
	Status      FileStatus
	Diagnostics []scss.Diagnostic
	Error       string
}

// BuildSummary holds the complete summary of a build run.
type BuildSummary struct {
	Files     []FileResult
	Injected  []string // Targets whose managed sections were updated
	Total     int
	Compiled  int
	Unchanged int
	Failed    int
	Errors    int
}

// NewBuildSummary creates a new BuildSummary.
func NewBuildSummary() *BuildSummary {
	return &BuildSummary{
		Files: make([]FileResult, 0),
	}
}

// AddFile adds a file result to the summary.
func (s *BuildSummary) AddFile(result FileResult) {
	s.Files = append(s.Files, result)
	s.Total++

	switch result.Status {
	case StatusCompiled:
		s.Compiled++
	case StatusUnchanged:
		s.Unchanged++
	case StatusFailed:
		s.Failed++
	case StatusError:
		s.Errors++
	}
}

// AddInjected records a target whose managed section changed.
func (s *BuildSummary) AddInjected(target string) {
	s.Injected = append(s.Injected, target)
}

// OK reports whether every file built cleanly.
func (s *BuildSummary) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}

// LintResult converts the summary to a LintResult for step outputs.
func (s *BuildSummary) LintResult() *LintResult {
	result := &LintResult{}
	for _, f := range s.Files {
		result.Add(f.Path, f.Diagnostics)
	}
	return result
}

// Markdown renders the summary as a GitHub-flavored markdown report.
func (s *BuildSummary) Markdown() string {
	var sb strings.Builder

	sb.WriteString("## 🎨 Stylesheet Build Results\n\n")

	sb.WriteString("### Statistics\n\n")
	sb.WriteString("| Metric | Count |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Stylesheets Processed | %d |\n", s.Total))
	sb.WriteString(fmt.Sprintf("| ✅ Compiled | %d |\n", s.Compiled))
	sb.WriteString(fmt.Sprintf("| ➖ Unchanged | %d |\n", s.Unchanged))
	sb.WriteString(fmt.Sprintf("| ❌ Lint Failures | %d |\n", s.Failed))
	sb.WriteString(fmt.Sprintf("| ⚠️ Errors | %d |\n", s.Errors))
	if len(s.Injected) > 0 {
		sb.WriteString(fmt.Sprintf("| 💉 Sections Injected | %d |\n", len(s.Injected)))
	}
	sb.WriteString("\n")

	// Compiled files (collapsible if many)
	if s.Compiled > 0 {
		compiled := s.filesByStatus(StatusCompiled)
		if len(compiled) > 10 {
			sb.WriteString("<details>\n")
			sb.WriteString(fmt.Sprintf("<summary><strong>Compiled Stylesheets (%d)</strong></summary>\n\n", len(compiled)))
		} else {
			sb.WriteString(fmt.Sprintf("### Compiled Stylesheets (%d)\n\n", len(compiled)))
		}

		sb.WriteString("| Source | Output |\n")
		sb.WriteString("|--------|--------|\n")
		for _, f := range compiled {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", f.Path, f.Output))
		}
		sb.WriteString("\n")

		if len(compiled) > 10 {
			sb.WriteString("</details>\n\n")
		}
	}

	if s.Failed > 0 {
		failed := s.filesByStatus(StatusFailed)
		sb.WriteString(fmt.Sprintf("### ❌ Lint Failures (%d)\n\n", len(failed)))

		sb.WriteString("| Source | Line | Message |\n")
		sb.WriteString("|--------|------|---------|\n")
		for _, f := range failed {
			for _, d := range f.Diagnostics {
				sb.WriteString(fmt.Sprintf("| %s | %d | %s |\n", f.Path, d.Line, escapePipes(d.Message)))
			}
		}
		sb.WriteString("\n")
	}

	if s.Errors > 0 {
		errored := s.filesByStatus(StatusError)
		sb.WriteString(fmt.Sprintf("### ⚠️ Errors (%d)\n\n", len(errored)))

		sb.WriteString("| Source | Error |\n")
		sb.WriteString("|--------|-------|\n")
		for _, f := range errored {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", f.Path, escapePipes(f.Error)))
		}
		sb.WriteString("\n")
	}

	if len(s.Injected) > 0 {
		sb.WriteString("<details>\n<summary>Injected sections</summary>\n\n")
		for _, target := range s.Injected {
			sb.WriteString(fmt.Sprintf("- `%s`\n", target))
		}
		sb.WriteString("\n</details>\n\n")
	}

	if url := GetWorkflowURL(); url != "" {
		sb.WriteString(fmt.Sprintf("**Workflow run:** [link](%s)\n", url))
	}

	return sb.String()
}

// WriteGitHubSummary writes the summary to GITHUB_STEP_SUMMARY if running in GitHub Actions.
func (s *BuildSummary) WriteGitHubSummary() error {
	if !InActions() {
		return nil
	}

	summaryFile := os.Getenv("GITHUB_STEP_SUMMARY")
	if summaryFile == "" {
		return nil
	}

	f, err := os.OpenFile(summaryFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening summary file: %w", err)
	}
	defer f.Close()

	_, err = f.WriteString(s.Markdown())
	return err
}

// filesByStatus returns all files with the given status.
func (s *BuildSummary) filesByStatus(status FileStatus) []FileResult {
	var results []FileResult
	for _, f := range s.Files {
		if f.Status == status {
			results = append(results, f)
		}
	}
	return results
}

// escapePipes escapes pipe characters so they do not break table cells.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
