package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/saltyorg/scss-lite/internal/config"
	"github.com/saltyorg/scss-lite/internal/github"
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/workspace"
	"github.com/spf13/cobra"
)

var checkNoBanner bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run all workspace checks",
	Long: `Run all workspace checks without writing anything.

Checks for:
  - Stylesheets with lint diagnostics
  - Compiled .css files that are missing or out of date
  - Inject targets without their managed section markers

Intended for CI: the command fails when any check finds a problem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}

		result, err := runChecks(cfg)
		if err != nil {
			return err
		}

		printCheckResults(cmd.OutOrStdout(), result)

		if err := github.WriteOutputs(result.Lint); err != nil {
			log.Warn("could not write GitHub outputs: %v", err)
		}

		if total := result.TotalIssues(); total > 0 {
			return fmt.Errorf("found %d issue(s)", total)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoBanner, "no-banner", false, "compare outputs as built with --no-banner")
	rootCmd.AddCommand(checkCmd)
}

// CheckResult holds the results of all workspace checks.
type CheckResult struct {
	Lint            *github.LintResult
	StaleOutputs    []string // Sources whose .css is missing or differs
	MissingSections []string // Inject targets without markers
	CheckErrors     []string // Files that could not be read
}

// TotalIssues returns the number of problems found.
func (r *CheckResult) TotalIssues() int {
	return r.Lint.FailedFiles() + len(r.StaleOutputs) + len(r.MissingSections) + len(r.CheckErrors)
}

// runChecks performs all workspace checks.
func runChecks(cfg *config.Config) (*CheckResult, error) {
	engine, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}
	manager := workspace.NewManager(cfg.RootDir())

	files, err := listConfiguredSources(cfg, manager)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Lint: &github.LintResult{}}

	for _, f := range files {
		rel := manager.RelPath(f.Path)
		outPath := manager.OutputPath(f.Path, f.OutDir)

		want, diags, err := renderSheet(engine, manager, f.Path, outPath, !checkNoBanner)
		if err != nil {
			result.CheckErrors = append(result.CheckErrors, fmt.Sprintf("%s: %v", rel, err))
			continue
		}
		result.Lint.Add(rel, diags)
		if len(diags) > 0 {
			continue
		}

		have, err := os.ReadFile(outPath)
		if err != nil || string(have) != want {
			result.StaleOutputs = append(result.StaleOutputs, rel)
		}
	}

	for _, inj := range cfg.Inject {
		target, err := manager.LoadSheet(cfg.RootPath(inj.Target))
		if err != nil {
			result.CheckErrors = append(result.CheckErrors, fmt.Sprintf("%s: %v", inj.Target, err))
			continue
		}
		if !workspace.HasManagedSection(target.Content, inj.Marker) {
			result.MissingSections = append(result.MissingSections, fmt.Sprintf("%s (%s)", inj.Target, inj.Marker))
		}
	}

	return result, nil
}

// printCheckResults prints the check results in a formatted way.
func printCheckResults(w io.Writer, result *CheckResult) {
	fmt.Fprintln(w, "## 🎨 Stylesheet Status")
	fmt.Fprintln(w)

	if failed := result.Lint.FailedFiles(); failed > 0 {
		fmt.Fprintf(w, "### Lint Diagnostics (%d)\n", failed)
		fmt.Fprintln(w, "Stylesheets that cannot be compiled:")
		fmt.Fprintln(w)
		for _, f := range result.Lint.Files {
			for _, d := range f.Diagnostics {
				fmt.Fprintf(w, "- [ ] `%s` %s\n", f.Path, d)
			}
		}
		fmt.Fprintln(w)
	}

	if len(result.StaleOutputs) > 0 {
		fmt.Fprintf(w, "### Stale Outputs (%d)\n", len(result.StaleOutputs))
		fmt.Fprintln(w, "Stylesheets whose compiled CSS is missing or out of date (run `scss-lite build`):")
		fmt.Fprintln(w)
		for _, path := range result.StaleOutputs {
			fmt.Fprintf(w, "- [ ] `%s`\n", path)
		}
		fmt.Fprintln(w)
	}

	if len(result.MissingSections) > 0 {
		fmt.Fprintf(w, "### Missing Managed Sections (%d)\n", len(result.MissingSections))
		fmt.Fprintln(w, "Inject targets without BEGIN/END markers:")
		fmt.Fprintln(w)
		for _, target := range result.MissingSections {
			fmt.Fprintf(w, "- [ ] `%s`\n", target)
		}
		fmt.Fprintln(w)
	}

	if len(result.CheckErrors) > 0 {
		fmt.Fprintf(w, "### Errors (%d)\n", len(result.CheckErrors))
		fmt.Fprintln(w)
		for _, e := range result.CheckErrors {
			fmt.Fprintf(w, "- %s\n", e)
		}
		fmt.Fprintln(w)
	}

	if total := result.TotalIssues(); total == 0 {
		fmt.Fprintln(w, "✅ All checks passed!")
	} else {
		fmt.Fprintf(w, "❌ Found %d issue(s)\n", total)
	}
}
