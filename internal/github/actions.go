package github

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saltyorg/scss-lite/internal/scss"
)

// InActions reports whether we are running inside GitHub Actions.
func InActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Annotate writes one ::error workflow command per diagnostic so that
// GitHub shows them inline on the changed files. It does nothing outside
// of GitHub Actions.
func Annotate(w io.Writer, path string, diags []scss.Diagnostic) {
	if !InActions() {
		return
	}
	for _, d := range diags {
		fmt.Fprintf(w, "::error file=%s,line=%d::%s\n", escapeProperty(path), d.Line, escapeData(d.Message))
	}
}

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}

// WriteOutputs appends step outputs describing result to GITHUB_OUTPUT.
// These can be used by subsequent workflow steps.
func WriteOutputs(result *LintResult) error {
	if !InActions() {
		return nil
	}

	outputFile := os.Getenv("GITHUB_OUTPUT")
	if outputFile == "" {
		return nil
	}

	f, err := os.OpenFile(outputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "has_diagnostics=%t\n", result.HasDiagnostics())
	fmt.Fprintf(f, "total_diagnostics=%d\n", result.TotalDiagnostics())
	fmt.Fprintf(f, "files_checked=%d\n", len(result.Files))
	fmt.Fprintf(f, "files_failed=%d\n", result.FailedFiles())
	return nil
}

// GetWorkflowURL attempts to construct the workflow URL from environment variables.
func GetWorkflowURL() string {
	serverURL := os.Getenv("GITHUB_SERVER_URL")
	repo := os.Getenv("GITHUB_REPOSITORY")
	runID := os.Getenv("GITHUB_RUN_ID")

	if serverURL == "" || repo == "" || runID == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s/actions/runs/%s", serverURL, repo, runID)
}
