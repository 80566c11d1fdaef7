package formgen

import (
	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/symbols"
)

// Reason explains a verdict
type Reason string

const (
	ReasonEligible              Reason = "eligible"
	ReasonMissingArgument       Reason = "missing-argument"
	ReasonArgumentNotObservable Reason = "argument-not-observable"
	ReasonNotForm               Reason = "not-form"
	ReasonMalformedAncestry     Reason = "malformed-ancestry"
)

// Verdict is the outcome of validating one candidate
type Verdict struct {
	Eligible bool
	Reason   Reason

	// Resolved is the generic argument's fully-qualified name when one was present
	Resolved symbols.TypeRef

	// Walk holds the ancestry error behind ReasonMalformedAncestry
	Walk error
}

// Validate decides whether cand gets a companion artifact. It never fails:
// a missing argument, a failed ancestry check or a malformed chain each
// produce an ineligible verdict.
func Validate(model *symbols.Model, cand Candidate, ids Identifiers) Verdict {
	if len(cand.Annotation.Arguments) != 1 || cand.Annotation.Arguments[0].IsZero() {
		return Verdict{Reason: ReasonMissingArgument}
	}
	arg := cand.Annotation.Arguments[0]

	ok, err := model.DerivesFrom(arg, ids.ObservableBase)
	if errors.IsMalformedAncestry(err) {
		return Verdict{Reason: ReasonMalformedAncestry, Resolved: arg, Walk: err}
	}
	if !ok {
		return Verdict{Reason: ReasonArgumentNotObservable, Resolved: arg}
	}

	ok, err = model.DerivesFrom(cand.Decl.FullName(), ids.FormBase)
	if errors.IsMalformedAncestry(err) {
		return Verdict{Reason: ReasonMalformedAncestry, Resolved: arg, Walk: err}
	}
	if !ok {
		return Verdict{Reason: ReasonNotForm, Resolved: arg}
	}

	return Verdict{Eligible: true, Reason: ReasonEligible, Resolved: arg}
}
