package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/formgen/config"
	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/logger"
	"github.com/teranos/formgen/watcher"
)

// WatchCmd regenerates whenever the model file changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate on every change to the model file",
	Long: `Run a generation pass, then watch the model file and run a new pass each
time it is written or replaced. Stale generated files are pruned after every
pass. Stop with Ctrl-C.

Examples:
  formgen watch --model model.yaml -o Generated`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, cfg, watchFlags, cmd.ErrOrStderr())
	},
}

var watchFlags generateOptions

func init() {
	WatchCmd.Flags().StringVarP(&watchFlags.model, "model", "m", "", "Model file (.yaml, .toml or .json)")
	WatchCmd.Flags().StringVarP(&watchFlags.output, "output", "o", "", "Output directory (default: output.dir from config)")
}

func watch(ctx context.Context, cfg *config.Config, opts generateOptions, stderr io.Writer) error {
	if opts.output == "" {
		opts.output = cfg.Output.Dir
	}
	if opts.output == "" {
		return errors.WithHint(errors.New("watch needs an output directory"), "pass -o or set output.dir")
	}
	opts.prune = true
	opts.strict = false

	pass := func(ctx context.Context) error {
		return generate(ctx, cfg, opts, io.Discard, stderr)
	}

	w, err := watcher.New(opts.model, pass)
	if err != nil {
		return err
	}

	// a broken model at startup should not stop the watcher; the next save may fix it
	if err := pass(ctx); err != nil {
		logger.Errorw("Initial generation failed", "model", opts.model, "error", err)
	}

	logger.Infow("Watching model file", "path", w.Path(), "output", opts.output)
	return w.Run(ctx)
}
