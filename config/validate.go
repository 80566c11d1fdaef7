package config

import (
	"regexp"
	"strings"

	"github.com/teranos/formgen/errors"
)

var memberName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	ids := []struct{ key, val string }{
		{"identifiers.annotation", c.Identifiers.Annotation},
		{"identifiers.form_base", c.Identifiers.FormBase},
		{"identifiers.observable_base", c.Identifiers.ObservableBase},
	}
	for _, id := range ids {
		if strings.TrimSpace(id.val) == "" {
			return errors.Newf("%s cannot be empty", id.key)
		}
		if strings.ContainsAny(id.val, " \t\r\n") {
			return errors.Newf("%s must be a fully-qualified name without whitespace, got %q", id.key, id.val)
		}
	}

	if c.Emit.Extension == "" || strings.ContainsAny(c.Emit.Extension, "./\\") {
		return errors.Newf("emit.extension must be a bare extension like \"cs\", got %q", c.Emit.Extension)
	}
	if c.Emit.LineEnding != LineEndingCRLF && c.Emit.LineEnding != LineEndingLF {
		return errors.Newf("emit.line_ending must be %q or %q, got %q", LineEndingCRLF, LineEndingLF, c.Emit.LineEnding)
	}
	if !memberName.MatchString(c.Emit.Property) {
		return errors.Newf("emit.property must be an identifier, got %q", c.Emit.Property)
	}
	if !memberName.MatchString(c.Emit.Member) {
		return errors.Newf("emit.member must be an identifier, got %q", c.Emit.Member)
	}
	if c.Emit.Property == c.Emit.Member {
		return errors.Newf("emit.property and emit.member cannot both be %q", c.Emit.Property)
	}

	// Workers: 0 = run validation and emission inline, negative = invalid
	if c.Pipeline.Workers < 0 {
		return errors.Newf("pipeline.workers must be >= 0, got %d", c.Pipeline.Workers)
	}
	if c.Pipeline.MaxAncestryDepth <= 0 {
		return errors.Newf("pipeline.max_ancestry_depth must be > 0, got %d", c.Pipeline.MaxAncestryDepth)
	}

	return nil
}
