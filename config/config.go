package config

// Config represents the formgen configuration
type Config struct {
	Identifiers IdentifiersConfig `mapstructure:"identifiers" toml:"identifiers" json:"identifiers" yaml:"identifiers"`
	Emit        EmitConfig        `mapstructure:"emit" toml:"emit" json:"emit" yaml:"emit"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline" toml:"pipeline" json:"pipeline" yaml:"pipeline"`
	Output      OutputConfig      `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
}

// IdentifiersConfig holds the fully-qualified names the pipeline matches on
type IdentifiersConfig struct {
	Annotation     string `mapstructure:"annotation" toml:"annotation" json:"annotation" yaml:"annotation"`                     // marker attribute placed on form classes
	FormBase       string `mapstructure:"form_base" toml:"form_base" json:"form_base" yaml:"form_base"`                         // required ancestor of the annotated class
	ObservableBase string `mapstructure:"observable_base" toml:"observable_base" json:"observable_base" yaml:"observable_base"` // required ancestor of the generic argument
}

// EmitConfig controls the shape of generated artifacts
type EmitConfig struct {
	Extension  string `mapstructure:"extension" toml:"extension" json:"extension" yaml:"extension"`         // artifact suffix after ".g."
	LineEnding string `mapstructure:"line_ending" toml:"line_ending" json:"line_ending" yaml:"line_ending"` // "crlf" or "lf"
	Property   string `mapstructure:"property" toml:"property" json:"property" yaml:"property"`             // generated typed property
	Member     string `mapstructure:"member" toml:"member" json:"member" yaml:"member"`                     // inherited untyped member it forwards to
}

// PipelineConfig tunes the generation pass
type PipelineConfig struct {
	Workers          int `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers"`                                             // concurrent validate/emit workers (0 = sequential)
	MaxAncestryDepth int `mapstructure:"max_ancestry_depth" toml:"max_ancestry_depth" json:"max_ancestry_depth" yaml:"max_ancestry_depth"` // ancestry walk guard
}

// OutputConfig configures where artifacts are written
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"` // empty = stdout
}

// Line ending names accepted by emit.line_ending
const (
	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"
)

// Newline returns the literal line terminator for the configured line ending
func (e EmitConfig) Newline() string {
	if e.LineEnding == LineEndingLF {
		return "\n"
	}
	return "\r\n"
}

// DefaultConfigFile is the project-level config file name
const DefaultConfigFile = "formgen.toml"
