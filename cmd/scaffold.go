package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/saltyorg/scss-lite/internal/template"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	scaffoldTemplate string
	scaffoldOutput   string
	scaffoldForce    bool
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <name>",
	Short: "Generate a new stylesheet from template",
	Long: `Generate a new stylesheet from template.

Creates <name>.scss in the workspace root (or at --output) with a starter
variable table and one nested block.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}

		outputPath := scaffoldOutput
		if outputPath == "" {
			outputPath = cfg.RootPath(args[0] + ".scss")
		}

		if err := scaffoldSheet(args[0], outputPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", outputPath)
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldTemplate, "template", "", "path to scaffold template (default: built-in)")
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, "output", "o", "", "output path override")
	scaffoldCmd.Flags().BoolVar(&scaffoldForce, "force", false, "overwrite existing file if present")
	rootCmd.AddCommand(scaffoldCmd)
}

// ScaffoldData contains data for the scaffold template.
type ScaffoldData struct {
	Name  string // e.g., "sidebar"
	Title string // e.g., "Sidebar" (title case)
	Class string // e.g., "sidebar" (used as the root selector)
}

// newScaffoldData derives template data from a sheet name.
func newScaffoldData(name string) ScaffoldData {
	titleCaser := cases.Title(language.English)
	return ScaffoldData{
		Name:  name,
		Title: titleCaser.String(name),
		Class: strings.ToLower(strings.ReplaceAll(name, "_", "-")),
	}
}

// scaffoldSheet renders the scaffold template for name into outputPath.
func scaffoldSheet(name, outputPath string) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid stylesheet name %q", name)
	}

	// Check if file already exists
	if _, err := os.Stat(outputPath); err == nil && !scaffoldForce {
		return fmt.Errorf("file %s already exists (use --force to overwrite)", outputPath)
	}

	engine := template.New()
	if scaffoldTemplate != "" {
		if err := engine.LoadFile("scaffold", scaffoldTemplate); err != nil {
			return err
		}
	} else if err := engine.LoadString("scaffold", defaultScaffoldTemplate); err != nil {
		return fmt.Errorf("parsing default template: %w", err)
	}

	content, err := engine.Render("scaffold", newScaffoldData(name))
	if err != nil {
		return err
	}

	// A scaffold that does not lint clean is still written, but flagged.
	if diags := scss.Lint(content); len(diags) > 0 {
		log.Warn("scaffold for %s has %d diagnostic(s); first: %s", name, len(diags), diags[0])
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	log.Debug("Scaffolded %s", outputPath)
	return nil
}

const defaultScaffoldTemplate = `// {{.Title}}
$primary: #3366ff;
$text: #222222;
$gap: 8px;

.{{.Class}} {
  color: $text;
  padding: $gap;

  a {
    color: $primary;
  }
}
`
