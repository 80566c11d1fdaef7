package formgen

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/symbols"
)

// Sink receives generated artifacts. The sink package provides
// stdout, directory and in-memory implementations.
type Sink interface {
	AddSource(name, text string) error
}

// Result is everything one pass produced
type Result struct {
	// Artifacts sorted by name
	Artifacts []Artifact

	// Diagnostics for ineligible marked classes, in declaration order
	Diagnostics []Diagnostic

	// Candidates is the number of marked classes discovered
	Candidates int
}

// Artifact returns the artifact with the given name
func (r *Result) Artifact(name string) (Artifact, bool) {
	i := sort.Search(len(r.Artifacts), func(i int) bool { return r.Artifacts[i].Name >= name })
	if i < len(r.Artifacts) && r.Artifacts[i].Name == name {
		return r.Artifacts[i], true
	}
	return Artifact{}, false
}

// Generator runs generation passes. It holds no state between passes and
// is safe for concurrent use.
type Generator struct {
	opts    Options
	emitter *Emitter
	logger  *zap.SugaredLogger
}

// NewGenerator creates a generator. A nil logger disables logging.
func NewGenerator(opts Options, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{
		opts:    opts,
		emitter: NewEmitter(opts),
		logger:  logger,
	}
}

type outcome struct {
	verdict  Verdict
	artifact *Artifact
}

// Run executes Discovery, Validation and Emission over model.
// On error (broken invariant or cancellation) no partial result is returned.
func (g *Generator) Run(ctx context.Context, model *symbols.Model) (*Result, error) {
	var cands []Candidate
	for cand, err := range Discover(model, g.opts.Identifiers.Annotation) {
		if err != nil {
			return nil, errors.Wrap(err, "discovery failed")
		}
		cands = append(cands, cand)
	}

	outcomes := make([]outcome, len(cands))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.opts.Workers, 1))
	for i, cand := range cands {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			outcomes[i] = g.process(model, cand)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "generation pass aborted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "generation pass aborted")
	}

	result := &Result{Candidates: len(cands)}
	owners := make(map[string]symbols.TypeRef, len(cands))
	for i, out := range outcomes {
		if out.artifact == nil {
			result.Diagnostics = append(result.Diagnostics, newDiagnostic(cands[i], out.verdict, g.opts.Identifiers))
			continue
		}
		if prev, dup := owners[out.artifact.Name]; dup {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrDuplicateArtifact, "%s is produced by both %s and %s",
					out.artifact.Name, prev, out.artifact.Decl),
				"rename one of the classes; artifact names use the simple class name only")
		}
		owners[out.artifact.Name] = out.artifact.Decl
		result.Artifacts = append(result.Artifacts, *out.artifact)
	}
	sort.Slice(result.Artifacts, func(i, j int) bool { return result.Artifacts[i].Name < result.Artifacts[j].Name })

	g.logger.Infow("Generation pass complete",
		"candidates", result.Candidates,
		"artifacts", len(result.Artifacts),
		"diagnostics", len(result.Diagnostics))

	return result, nil
}

func (g *Generator) process(model *symbols.Model, cand Candidate) outcome {
	v := Validate(model, cand, g.opts.Identifiers)
	g.logger.Debugw("Validated marked class",
		"decl", cand.Decl.FullName(),
		"eligible", v.Eligible,
		"reason", v.Reason,
		"argument", v.Resolved)

	if !v.Eligible {
		return outcome{verdict: v}
	}
	a := g.emitter.Emit(cand.Decl, v.Resolved)
	return outcome{verdict: v, artifact: &a}
}

// Publish registers every artifact with the sink in name order.
// The first sink error stops publishing.
func (g *Generator) Publish(result *Result, sink Sink) error {
	for _, a := range result.Artifacts {
		if err := sink.AddSource(a.Name, a.Text); err != nil {
			return errors.Wrapf(err, "failed to add %s", a.Name)
		}
		g.logger.Debugw("Published artifact", "name", a.Name, "decl", a.Decl, "bytes", len(a.Text))
	}
	return nil
}
