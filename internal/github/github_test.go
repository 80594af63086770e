package github

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	diags := []scss.Diagnostic{
		{Line: 1, Message: scss.MsgUnmatchedClosingBrace},
		{Line: 4, Message: "50% done\nnext"},
	}

	t.Run("outside actions", func(t *testing.T) {
		t.Setenv("GITHUB_ACTIONS", "")
		var buf bytes.Buffer
		Annotate(&buf, "a.scss", diags)
		assert.Empty(t, buf.String())
	})

	t.Run("inside actions", func(t *testing.T) {
		t.Setenv("GITHUB_ACTIONS", "true")
		var buf bytes.Buffer
		Annotate(&buf, "styles/a,b.scss", diags)
		assert.Equal(t,
			"::error file=styles/a%2Cb.scss,line=1::Unmatched closing brace\n"+
				"::error file=styles/a%2Cb.scss,line=4::50%25 done%0Anext\n",
			buf.String())
	})
}

func TestLintResult(t *testing.T) {
	result := &LintResult{}
	result.Add("a.scss", nil)
	result.Add("b.scss", []scss.Diagnostic{{Line: 1}, {Line: 2}})

	assert.True(t, result.HasDiagnostics())
	assert.Equal(t, 2, result.TotalDiagnostics())
	assert.Equal(t, 1, result.FailedFiles())
}

func TestWriteOutputs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_OUTPUT", out)

	result := &LintResult{}
	result.Add("a.scss", []scss.Diagnostic{{Line: 1, Message: scss.MsgUnclosedBlock}})
	result.Add("b.scss", nil)
	require.NoError(t, WriteOutputs(result))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "has_diagnostics=true\ntotal_diagnostics=1\nfiles_checked=2\nfiles_failed=1\n", string(data))
}

func TestGetWorkflowURL(t *testing.T) {
	t.Setenv("GITHUB_SERVER_URL", "https://github.com")
	t.Setenv("GITHUB_REPOSITORY", "owner/repo")
	t.Setenv("GITHUB_RUN_ID", "42")
	assert.Equal(t, "https://github.com/owner/repo/actions/runs/42", GetWorkflowURL())

	t.Setenv("GITHUB_RUN_ID", "")
	assert.Empty(t, GetWorkflowURL())
}

func TestBuildSummary(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "")

	s := NewBuildSummary()
	s.AddFile(FileResult{Path: "a.scss", Output: "a.css", Status: StatusCompiled})
	s.AddFile(FileResult{Path: "b.scss", Output: "b.css", Status: StatusUnchanged})
	s.AddFile(FileResult{Path: "c.scss", Status: StatusFailed, Diagnostics: []scss.Diagnostic{{Line: 2, Message: "x|y"}}})
	s.AddFile(FileResult{Path: "d.scss", Status: StatusError, Error: "permission denied"})
	s.AddInjected("index.html")

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Compiled)
	assert.Equal(t, 1, s.Unchanged)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Errors)
	assert.False(t, s.OK())
	assert.Equal(t, 1, s.LintResult().TotalDiagnostics())

	md := s.Markdown()
	assert.Contains(t, md, "| Stylesheets Processed | 4 |")
	assert.Contains(t, md, "| a.scss | a.css |")
	assert.Contains(t, md, "| c.scss | 2 | x\\|y |")
	assert.Contains(t, md, "| d.scss | permission denied |")
	assert.Contains(t, md, "- `index.html`")
	assert.NotContains(t, md, "Workflow run")
}

func TestWriteGitHubSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	s := NewBuildSummary()
	s.AddFile(FileResult{Path: "a.scss", Output: "a.css", Status: StatusCompiled})
	assert.True(t, s.OK())
	require.NoError(t, s.WriteGitHubSummary())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Stylesheet Build Results")
}
