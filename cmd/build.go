package cmd

import (
	"fmt"
	"io"

	"github.com/saltyorg/scss-lite/internal/config"
	"github.com/saltyorg/scss-lite/internal/github"
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/saltyorg/scss-lite/internal/template"
	"github.com/saltyorg/scss-lite/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	buildDryRun   bool
	buildNoBanner bool
	buildNoInject bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile every configured stylesheet",
	Long: `Compile every stylesheet selected by the config.

Each source is linted first. Sources with diagnostics are reported and
skipped; the others are compiled to .css files, which are only rewritten
when their content changes. Afterwards every inject entry copies compiled
CSS into the managed section of its target file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}

		return buildAll(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "print compiled output instead of writing files")
	buildCmd.Flags().BoolVar(&buildNoBanner, "no-banner", false, "omit the banner from compiled files")
	buildCmd.Flags().BoolVar(&buildNoInject, "no-inject", false, "skip managed section injection")
	rootCmd.AddCommand(buildCmd)
}

// buildAll compiles all configured sources and processes inject entries.
func buildAll(out io.Writer, cfg *config.Config) error {
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	manager := workspace.NewManager(cfg.RootDir())

	files, err := listConfiguredSources(cfg, manager)
	if err != nil {
		return err
	}

	summary := github.NewBuildSummary()
	for _, f := range files {
		log.Debug("Building: %s", manager.RelPath(f.Path))
		result := buildFile(out, engine, manager, f)
		summary.AddFile(result)

		switch result.Status {
		case github.StatusFailed:
			if err := printDiagnostics(out, engine, result.Path, result.Diagnostics); err != nil {
				return err
			}
			github.Annotate(out, result.Path, result.Diagnostics)
		case github.StatusError:
			log.Error("failed to build %s: %s", result.Path, result.Error)
		}
	}

	if !buildNoInject {
		for _, inj := range cfg.Inject {
			changed, err := injectSection(out, cfg, manager, inj)
			if err != nil {
				summary.AddFile(github.FileResult{Path: inj.Target, Status: github.StatusError, Error: err.Error()})
				log.Error("failed to inject into %s: %v", inj.Target, err)
				continue
			}
			if changed {
				summary.AddInjected(inj.Target)
			}
		}
	}

	fmt.Fprintf(out, "Compiled %d stylesheet(s), %d unchanged, %d failed lint, %d errors\n",
		summary.Compiled, summary.Unchanged, summary.Failed, summary.Errors)

	if err := summary.WriteGitHubSummary(); err != nil {
		log.Warn("failed to write GitHub summary: %v", err)
	}
	if err := github.WriteOutputs(summary.LintResult()); err != nil {
		log.Warn("could not write GitHub outputs: %v", err)
	}

	if !summary.OK() {
		return fmt.Errorf("build failed: %d file(s) with diagnostics, %d error(s)", summary.Failed, summary.Errors)
	}
	return nil
}

// renderSheet lints and compiles path and renders its banner. Diagnostics
// are returned instead of output when the linter is not clean.
func renderSheet(engine *template.Engine, manager *workspace.Manager, path, outPath string, banner bool) (string, []scss.Diagnostic, error) {
	sheet, err := manager.LoadSheet(path)
	if err != nil {
		return "", nil, err
	}

	css, diags := scss.Build(sheet.Content)
	if len(diags) > 0 {
		return "", diags, nil
	}

	header := ""
	if banner {
		if header, err = renderBanner(engine, manager.RelPath(path), outPath); err != nil {
			return "", nil, err
		}
	}
	return withBanner(header, css), nil, nil
}

// buildFile builds a single source and returns a detailed result.
func buildFile(out io.Writer, engine *template.Engine, manager *workspace.Manager, f sourceFile) github.FileResult {
	outPath := manager.OutputPath(f.Path, f.OutDir)
	result := github.FileResult{
		Path:   manager.RelPath(f.Path),
		Output: manager.RelPath(outPath),
		Status: github.StatusCompiled,
	}

	content, diags, err := renderSheet(engine, manager, f.Path, outPath, !buildNoBanner)
	if err != nil {
		result.Status = github.StatusError
		result.Error = err.Error()
		return result
	}
	if len(diags) > 0 {
		result.Status = github.StatusFailed
		result.Diagnostics = diags
		return result
	}

	if buildDryRun {
		fmt.Fprintf(out, "--- %s\n%s", result.Output, content)
		return result
	}

	changed, err := manager.WriteOutput(outPath, content)
	if err != nil {
		result.Status = github.StatusError
		result.Error = err.Error()
		return result
	}
	if !changed {
		result.Status = github.StatusUnchanged
	}
	return result
}

// injectSection replaces the managed section of an inject target with the
// compiled source. Returns true if the target changed.
func injectSection(out io.Writer, cfg *config.Config, manager *workspace.Manager, inj config.InjectConfig) (bool, error) {
	source, err := manager.LoadSheet(cfg.RootPath(inj.Source))
	if err != nil {
		return false, fmt.Errorf("loading source: %w", err)
	}

	css, diags := scss.Build(source.Content)
	if len(diags) > 0 {
		return false, fmt.Errorf("%s has %d diagnostic(s)", inj.Source, len(diags))
	}

	target, err := manager.LoadSheet(cfg.RootPath(inj.Target))
	if err != nil {
		return false, fmt.Errorf("loading target: %w", err)
	}

	original := target.Content
	if !workspace.HasManagedSection(target.Content, inj.Marker) {
		return false, fmt.Errorf("target does not have section markers (/* BEGIN %s */ / /* END %s */)", inj.Marker, inj.Marker)
	}
	if target.Content, err = workspace.UpdateManagedSection(target.Content, inj.Marker, css); err != nil {
		return false, fmt.Errorf("updating section: %w", err)
	}

	if target.Content == original {
		log.Debug("Section %q unchanged in %s", inj.Marker, inj.Target)
		return false, nil
	}

	if buildDryRun {
		fmt.Fprintf(out, "--- %s (section %s)\n%s\n", inj.Target, inj.Marker, css)
		return true, nil
	}

	if err := manager.SaveSheet(target); err != nil {
		return false, fmt.Errorf("saving target: %w", err)
	}
	log.Info("Updated section %q in %s", inj.Marker, inj.Target)
	return true, nil
}
