package formgen

import (
	"github.com/teranos/formgen/config"
	"github.com/teranos/formgen/symbols"
)

// Identifiers are the fully-qualified names a pass matches on
type Identifiers struct {
	Annotation     symbols.TypeRef
	FormBase       symbols.TypeRef
	ObservableBase symbols.TypeRef
}

// Options configures a Generator
type Options struct {
	Identifiers Identifiers

	// Extension is the artifact suffix after ".g." (e.g. "cs")
	Extension string

	// Newline terminates every generated line
	Newline string

	// Property is the generated typed property; Member is the inherited untyped one
	Property string
	Member   string

	// Workers bounds concurrent validate/emit; 0 runs them one at a time
	Workers int
}

// OptionsFromConfig maps loaded configuration onto generator options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Identifiers: Identifiers{
			Annotation:     symbols.TypeRef(cfg.Identifiers.Annotation),
			FormBase:       symbols.TypeRef(cfg.Identifiers.FormBase),
			ObservableBase: symbols.TypeRef(cfg.Identifiers.ObservableBase),
		},
		Extension: cfg.Emit.Extension,
		Newline:   cfg.Emit.Newline(),
		Property:  cfg.Emit.Property,
		Member:    cfg.Emit.Member,
		Workers:   cfg.Pipeline.Workers,
	}
}

// DefaultOptions returns options for the default configuration
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}
