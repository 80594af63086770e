package cmd

import (
	"fmt"
	"os"

	"github.com/saltyorg/scss-lite/internal/config"
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/workspace"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and managed sections",
	Long:  "Validate the configuration file and the managed section markers of inject targets.",
}

var validateConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the config file",
	Long:  "Validate the configuration file for required fields and correct format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load() calls Validate() automatically
		if _, err := config.Load(GetConfigPath()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Config is valid")
		return nil
	},
}

var validateSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Validate managed section markers in inject targets",
	Long:  "Check that every inject target has balanced BEGIN/END markers and contains its configured section.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(GetConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		return validateSections(cmd, cfg)
	},
}

func init() {
	validateCmd.AddCommand(validateConfigCmd)
	validateCmd.AddCommand(validateSectionsCmd)
	rootCmd.AddCommand(validateCmd)
}

// validateSections validates the managed sections of all inject targets.
func validateSections(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	valid := 0
	invalid := 0

	for _, inj := range cfg.Inject {
		content, err := os.ReadFile(cfg.RootPath(inj.Target))
		if err != nil {
			log.Warn("could not read %s: %v", inj.Target, err)
			invalid++
			continue
		}

		problems := workspace.ValidateManagedSections(string(content))
		if !workspace.HasManagedSection(string(content), inj.Marker) {
			problems = append(problems, fmt.Sprintf("section %q not found", inj.Marker))
		}

		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(out, "❌ %s: %s\n", inj.Target, p)
			}
			invalid++
			continue
		}

		valid++
		if IsVerbose() {
			fmt.Fprintf(out, "✅ %s\n", inj.Target)
		}
	}

	fmt.Fprintf(out, "\nValidation complete: %d valid, %d invalid\n", valid, invalid)

	if invalid > 0 {
		return fmt.Errorf("found %d invalid target(s)", invalid)
	}
	return nil
}
