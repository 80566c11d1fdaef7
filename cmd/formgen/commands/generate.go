package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/formgen/config"
	"github.com/teranos/formgen/formgen"
	"github.com/teranos/formgen/sink"
)

// GenerateCmd runs one generation pass
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate companion sources for marked forms",
	Long: `Generate a partial-class companion for every class marked with the form
annotation whose type argument is an observable model and which itself derives
from the form base.

Without an output directory, artifacts are streamed to stdout, each preceded by
a "// <name>" header line. Skipped marked classes are reported as warnings.

Examples:
  formgen generate --model model.yaml                  # Stream to stdout
  formgen generate --model model.yaml -o Generated     # Write Generated/*.g.cs
  formgen generate --model model.yaml -o Generated --prune --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return generate(cmd.Context(), cfg, generateFlags, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

type generateOptions struct {
	model  string
	output string
	strict bool
	prune  bool
}

var generateFlags generateOptions

func init() {
	GenerateCmd.Flags().StringVarP(&generateFlags.model, "model", "m", "", "Model file (.yaml, .toml or .json)")
	GenerateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "Output directory (default: output.dir from config, else stdout)")
	GenerateCmd.Flags().BoolVar(&generateFlags.strict, "strict", false, "Fail when any marked class is skipped")
	GenerateCmd.Flags().BoolVar(&generateFlags.prune, "prune", false, "Remove generated files the pass no longer produces")
}

func generate(ctx context.Context, cfg *config.Config, opts generateOptions, stdout, stderr io.Writer) error {
	gen, result, err := runPass(ctx, cfg, opts.model)
	if err != nil {
		return err
	}

	dir := opts.output
	if dir == "" {
		dir = cfg.Output.Dir
	}

	if dir == "" {
		if err := gen.Publish(result, sink.NewWriter(stdout, cfg.Emit.Newline())); err != nil {
			return err
		}
		return checkStrict(opts.strict, result)
	}

	if err := gen.Publish(result, sink.NewDir(dir)); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%s Generated %s file(s) in %s\n",
		pterm.Green("✓"), pterm.LightGreen(len(result.Artifacts)), dir)

	if opts.prune {
		removed, err := prune(result, dir, cfg.Emit.Extension)
		if err != nil {
			return err
		}
		for _, name := range removed {
			fmt.Fprintf(stderr, "  %s %s\n", pterm.Gray("removed"), name)
		}
	}

	if n := len(result.Diagnostics); n > 0 {
		fmt.Fprintf(stderr, "%s %d marked class(es) skipped\n", pterm.Yellow("!"), n)
	}
	return checkStrict(opts.strict, result)
}

func checkStrict(strict bool, result *formgen.Result) error {
	if !strict {
		return nil
	}
	return strictError(result)
}
