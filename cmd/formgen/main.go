package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/formgen/cmd/formgen/commands"
	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "formgen",
	Short: "Generate typed view-model accessors for MVVM forms",
	Long: `formgen - companion source generator for MVVM forms.

For every form class marked with the form annotation, formgen emits a partial
class exposing a typed property that forwards to the form's untyped data
context. Input is a symbol model exported from the compilation (YAML, TOML or
JSON); output is one "<Class>.g.cs" file per eligible form.

Available commands:
  generate - Run a generation pass
  check    - Compare a pass against committed generated files
  watch    - Regenerate whenever the model file changes
  config   - Manage formgen.toml
  version  - Show version information

Examples:
  formgen generate --model model.yaml -o Generated
  formgen check --model model.yaml --golden Generated
  formgen -vv generate --model model.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		// machine-read output should not carry ANSI colour codes
		if logger.JSONOutput {
			pterm.DisableStyling()
		}
		logger.Debugw("Logger initialized", "verbosity", logger.LevelName(verbosity), "json", jsonLogs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file, TOML, YAML or JSON by extension (default: nearest formgen.toml)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", pterm.Red("Error:"), err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", pterm.LightCyan("Hint:"), hint)
		}
		os.Exit(1)
	}
}
