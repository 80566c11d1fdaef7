package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/formgen/config"
	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/formgen"
	"github.com/teranos/formgen/logger"
	"github.com/teranos/formgen/symbols"
)

// loadConfig reads the configuration named by the persistent --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

// runPass loads the model file and runs one generation pass over it
func runPass(ctx context.Context, cfg *config.Config, modelPath string) (*formgen.Generator, *formgen.Result, error) {
	if modelPath == "" {
		return nil, nil, errors.WithHint(errors.New("no model file given"), "pass --model path/to/model.yaml")
	}

	model, err := symbols.Load(modelPath, symbols.WithMaxDepth(cfg.Pipeline.MaxAncestryDepth))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load model %s", modelPath)
	}
	logger.Debugw("Loaded model", "path", modelPath, "types", model.Len())

	gen := formgen.NewGenerator(formgen.OptionsFromConfig(cfg), logger.Named("formgen"))
	result, err := gen.Run(ctx, model)
	if err != nil {
		return nil, nil, err
	}

	for _, d := range result.Diagnostics {
		logger.Warnw("Marked class skipped",
			"id", d.ID,
			"decl", d.Decl,
			"reason", d.Reason,
			"message", d.Message)
	}
	return gen, result, nil
}

// strictError fails a pass that skipped marked classes
func strictError(result *formgen.Result) error {
	if len(result.Diagnostics) == 0 {
		return nil
	}
	return errors.WithHint(
		errors.Newf("%d marked class(es) received no generated source", len(result.Diagnostics)),
		"fix the reported declarations or drop --strict")
}

// prune removes generated files in dir that the pass no longer produces
func prune(result *formgen.Result, dir, ext string) ([]string, error) {
	check, err := formgen.Check(result, dir, ext)
	if err != nil {
		return nil, err
	}
	for _, name := range check.Stale {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return nil, errors.Wrapf(err, "failed to remove stale %s", name)
		}
		logger.Infow("Removed stale generated file", "name", name, "dir", dir)
	}
	return check.Stale, nil
}
