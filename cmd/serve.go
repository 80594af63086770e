package cmd

import (
	"github.com/saltyorg/scss-lite/internal/log"
	"github.com/saltyorg/scss-lite/internal/lsp"
	"github.com/saltyorg/scss-lite/internal/runtime"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server on stdio",
	Long: `Run a Language Server Protocol server on standard input and output.

Editors get the lint diagnostics of every open stylesheet, refreshed on
each change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug("Starting language server")
		return lsp.NewServer(runtime.Version).RunStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
