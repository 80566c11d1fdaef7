package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/formgen/config"
	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/formgen"
)

// CheckCmd verifies committed generated sources against a fresh pass
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated sources are up to date",
	Long: `Run a generation pass in memory and compare it byte-for-byte with the
generated files in the golden directory. Nothing is written.

Exit codes:
  0 - Generated sources are up to date
  1 - Sources are missing, differ (diff shown) or are stale, or the check failed

Examples:
  formgen check --model model.yaml --golden Generated`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return check(cmd.Context(), cfg, checkFlags, cmd.OutOrStdout())
	},
}

type checkOptions struct {
	model  string
	golden string
	strict bool
}

var checkFlags checkOptions

func init() {
	CheckCmd.Flags().StringVarP(&checkFlags.model, "model", "m", "", "Model file (.yaml, .toml or .json)")
	CheckCmd.Flags().StringVarP(&checkFlags.golden, "golden", "g", "", "Directory holding the committed generated files (default: output.dir from config)")
	CheckCmd.Flags().BoolVar(&checkFlags.strict, "strict", false, "Also fail when any marked class is skipped")
}

func check(ctx context.Context, cfg *config.Config, opts checkOptions, stdout io.Writer) error {
	golden := opts.golden
	if golden == "" {
		golden = cfg.Output.Dir
	}
	if golden == "" {
		return errors.WithHint(errors.New("no golden directory given"), "pass --golden or set output.dir")
	}

	_, result, err := runPass(ctx, cfg, opts.model)
	if err != nil {
		return err
	}

	res, err := formgen.Check(result, golden, cfg.Emit.Extension)
	if err != nil {
		return errors.Wrap(err, "failed to compare generated sources")
	}

	if res.UpToDate {
		fmt.Fprintf(stdout, "%s Generated sources are up to date (%d file(s))\n", pterm.Green("✓"), len(result.Artifacts))
		return checkStrict(opts.strict, result)
	}

	fmt.Fprintf(stdout, "%s Generated sources are out of date\n", pterm.Red("✗"))
	for _, name := range res.Missing {
		fmt.Fprintf(stdout, "  %s %s\n", pterm.Yellow("missing"), name)
	}
	for _, name := range res.Stale {
		fmt.Fprintf(stdout, "  %s %s\n", pterm.Yellow("stale"), name)
	}
	for _, d := range res.Differs {
		fmt.Fprintf(stdout, "  %s %s\n\n%s\n", pterm.Yellow("differs"), d.Name, d.Diff)
	}

	return errors.WithHint(
		errors.Newf("%d missing, %d differing, %d stale", len(res.Missing), len(res.Differs), len(res.Stale)),
		"run 'formgen generate --prune' to update")
}
