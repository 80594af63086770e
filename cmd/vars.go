package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/saltyorg/scss-lite/internal/inspect"
	"github.com/saltyorg/scss-lite/internal/scss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var varsFormat string

var varsCmd = &cobra.Command{
	Use:   "vars <file>",
	Short: "Print the variable table of a stylesheet",
	Long: `Print the final variable table of a stylesheet in definition order.

Values that parse as CSS colors are also shown as hex. Use "-" to read
from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		infos := inspect.Describe(scss.Parse(source).Variables)
		return printVars(cmd.OutOrStdout(), infos, varsFormat)
	},
}

func init() {
	varsCmd.Flags().StringVarP(&varsFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(varsCmd)
}

// printVars writes infos to w in the given format.
func printVars(w io.Writer, infos []inspect.VarInfo, format string) error {
	switch format {
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVALUE\tCOLOR")
		for _, v := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, v.Value, v.Color)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
