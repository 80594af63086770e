package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/saltyorg/scss-lite/internal/workspace"
	"github.com/spf13/cobra"
)

// defaultOutputName is used when stdin is compiled into a directory.
const defaultOutputName = "styles.css"

var (
	compileOutput string
	compileBanner bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Lint and compile a single stylesheet",
	Long: `Lint and compile a single stylesheet.

Reads the named file, or standard input when the file is "-" or omitted.
The file is linted first; if there are any diagnostics they are printed
and nothing is compiled.

With --output the CSS is written to a file. If --output names an existing
directory the file is written there as <name>.css (styles.css for stdin).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		engine, err := newEngine(cfg)
		if err != nil {
			return err
		}

		source, err := readSource(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		css, diags := scss.Build(source)
		if len(diags) > 0 {
			if err := printDiagnostics(cmd.OutOrStdout(), engine, displayName(path), diags); err != nil {
				return err
			}
			return fmt.Errorf("found %d diagnostic(s) in %s; not compiling", len(diags), displayName(path))
		}

		outPath := resolveCompileOutput(compileOutput, path)

		banner := ""
		if compileBanner {
			target := outPath
			if target == "" {
				target = outputName(path)
			}
			if banner, err = renderBanner(engine, displayName(path), target); err != nil {
				return err
			}
		}
		content := withBanner(banner, css)

		if outPath == "" {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		changed, err := workspace.NewManager(filepath.Dir(outPath)).WriteOutput(outPath, content)
		if err != nil {
			return err
		}
		if changed {
			log.Info("Wrote %s", outPath)
		} else {
			log.Debug("%s unchanged", outPath)
		}
		return nil
	},
}

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "write CSS to this file or directory instead of stdout")
	compileCmd.Flags().BoolVar(&compileBanner, "banner", false, "prefix the output with the configured banner")
	rootCmd.AddCommand(compileCmd)
}

// outputName returns the file name the compiled form of path gets.
func outputName(path string) string {
	if path == "-" {
		return defaultOutputName
	}
	return workspace.ExtractSheetName(path) + ".css"
}

// resolveCompileOutput expands an output directory into a file path.
func resolveCompileOutput(output, path string) string {
	if output == "" {
		return ""
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, outputName(path))
	}
	return output
}
