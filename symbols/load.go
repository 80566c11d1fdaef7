package symbols

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/formgen/errors"
)

// SupportedSchema is the semver constraint a model file's schema must satisfy
const SupportedSchema = "^1"

// defaultSchema applies when a model file omits the schema field
const defaultSchema = "1.0.0"

// Format identifies a model file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// File is the on-disk shape of a model export
type File struct {
	Schema string `yaml:"schema,omitempty" toml:"schema,omitempty" json:"schema,omitempty"`
	Types  []Decl `yaml:"types" toml:"types" json:"types"`
}

// FormatFromPath picks the decoder from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.WithHint(
			errors.Newf("unrecognised model file extension %q", filepath.Ext(path)),
			"use .yaml, .yml, .toml or .json")
	}
}

// Load reads and indexes a model file
func Load(path string, opts ...Option) (*Model, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model %s", path)
	}
	m, err := Parse(data, format, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model %s", path)
	}
	return m, nil
}

// Parse decodes model data in the given format and indexes it.
// Unknown fields are rejected in every format.
func Parse(data []byte, format Format, opts ...Option) (*Model, error) {
	f, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(f.Schema); err != nil {
		return nil, err
	}
	return NewModel(f.Types, opts...)
}

func decode(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.Wrap(errors.ErrInvalidModel, err.Error()), "yaml")
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.Wrap(errors.ErrInvalidModel, err.Error()), "toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.NewInvalidModelError("toml: unknown keys %s", strings.Join(keys, ", "))
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.Wrap(errors.ErrInvalidModel, err.Error()), "json")
		}

	default:
		return nil, errors.Newf("unknown model format %q", format)
	}

	return &f, nil
}

func checkSchema(schema string) error {
	if strings.TrimSpace(schema) == "" {
		schema = defaultSchema
	}
	v, err := semver.NewVersion(schema)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupportedSchema, "schema %q is not a version: %v", schema, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return errors.Wrap(err, "invalid supported schema constraint")
	}
	if !c.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedSchema, "schema %s does not satisfy %s", v, SupportedSchema),
			"re-export the model with an exporter that writes schema %s", SupportedSchema)
	}
	return nil
}
