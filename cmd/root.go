package cmd

import (
	"os"

	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "scss-lite",
	Short: "Minimal SCSS preprocessor and structural linter",
	Long: `scss-lite compiles a flat subset of SCSS into plain CSS.

Supported input:
  - Variable declarations ($name: value;)
  - Nested selector blocks, joined with a space
  - Plain declarations (property: value)

Every stylesheet is linted for brace balance and declaration syntax
before it is compiled; files with diagnostics are never compiled.`,
	SilenceUsage: true, // Don't print usage on errors unrelated to flags
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.LevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "scss-lite.yml", "config file path (.yml, .yaml, .json or .jsonc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// GetConfigPath returns the configured config file path.
func GetConfigPath() string {
	return cfgFile
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
