package cmd

import (
	"fmt"

	"github.com/saltyorg/scss-lite/internal/github"
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/saltyorg/scss-lite/internal/workspace"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Check stylesheets for structural problems",
	Long: `Check stylesheets for unmatched or unclosed braces, properties
without a value, and variable declarations without a colon.

Without arguments, every stylesheet selected by the config is linted.
Use "-" to lint standard input. When running in GitHub Actions each
diagnostic is also emitted as an error annotation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		engine, err := newEngine(cfg)
		if err != nil {
			return err
		}
		manager := workspace.NewManager(cfg.RootDir())

		paths := args
		if len(paths) == 0 {
			files, err := listConfiguredSources(cfg, manager)
			if err != nil {
				return err
			}
			for _, f := range files {
				paths = append(paths, f.Path)
			}
		}

		out := cmd.OutOrStdout()
		result := &github.LintResult{}
		for _, path := range paths {
			source, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			name := displayName(path)
			if path != "-" {
				name = manager.RelPath(path)
			}

			diags := scss.Lint(source)
			log.Debug("Linted %s: %d diagnostic(s)", name, len(diags))
			result.Add(name, diags)

			if err := printDiagnostics(out, engine, name, diags); err != nil {
				return err
			}
			github.Annotate(out, name, diags)
		}

		if err := github.WriteOutputs(result); err != nil {
			log.Warn("could not write GitHub outputs: %v", err)
		}

		if result.HasDiagnostics() {
			return fmt.Errorf("found %d diagnostic(s) in %d file(s)", result.TotalDiagnostics(), result.FailedFiles())
		}

		fmt.Fprintf(out, "✅ No problems found in %d file(s)\n", len(paths))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
