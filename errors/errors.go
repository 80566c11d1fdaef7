// Package errors provides error handling for formgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for CLI users
//
// Usage:
//
//	if err := model.Validate(); err != nil {
//	    return errors.Wrap(err, "failed to load symbol model")
//	}
//
//	return errors.WithHint(err, "declare the base type in the model file")
//
// Ineligible annotated declarations are not errors. They surface as
// diagnostics from the formgen package and never pass through here.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors for the generation pipeline.
// Wrap these with errors.Wrapf() to add the offending type while keeping errors.Is() working.
var (
	// ErrInvalidModel indicates the symbol model file is malformed
	ErrInvalidModel = New("invalid symbol model")

	// ErrUnsupportedSchema indicates the model schema version is outside the supported range
	ErrUnsupportedSchema = New("unsupported model schema")

	// ErrCyclicAncestry indicates a base-type chain revisits a type
	ErrCyclicAncestry = New("cyclic ancestry")

	// ErrAncestryTooDeep indicates a base-type chain exceeded the depth guard
	ErrAncestryTooDeep = New("ancestry exceeds depth limit")

	// ErrDuplicateArtifact indicates two declarations produced the same artifact name
	ErrDuplicateArtifact = New("duplicate artifact name")
)

// IsMalformedAncestry reports whether err came from a bounded ancestry walk
// that gave up (cycle or depth limit).
func IsMalformedAncestry(err error) bool {
	return err != nil && IsAny(err, ErrCyclicAncestry, ErrAncestryTooDeep)
}

// NewInvalidModelError creates an invalid-model error with a formatted message
func NewInvalidModelError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidModel, format, args...)
}
