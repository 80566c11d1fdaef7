package formgen

import (
	"fmt"

	"github.com/teranos/formgen/symbols"
)

// Diagnostic IDs for ineligible marked classes
const (
	DiagNotForm               = "FG0001"
	DiagArgumentNotObservable = "FG0002"
	DiagMissingArgument       = "FG0003"
	DiagMalformedAncestry     = "FG0004"
)

// Severity of a diagnostic
type Severity string

const SeverityWarning Severity = "warning"

// Diagnostic reports a marked class that received no artifact.
// Diagnostics are informational; they never change what a pass emits.
type Diagnostic struct {
	ID       string
	Severity Severity
	Decl     symbols.TypeRef
	Reason   Reason
	Message  string
}

// String formats the diagnostic the way compilers print warnings
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.ID, d.Message)
}

func newDiagnostic(cand Candidate, v Verdict, ids Identifiers) Diagnostic {
	decl := cand.Decl.FullName()
	marker := ids.Annotation.Name()

	diag := Diagnostic{Severity: SeverityWarning, Decl: decl, Reason: v.Reason}
	switch v.Reason {
	case ReasonNotForm:
		diag.ID = DiagNotForm
		diag.Message = fmt.Sprintf("%s is marked with %s but does not derive from %s", decl, marker, ids.FormBase)
	case ReasonArgumentNotObservable:
		diag.ID = DiagArgumentNotObservable
		diag.Message = fmt.Sprintf("%s type argument %s does not derive from %s", marker, v.Resolved, ids.ObservableBase)
	case ReasonMissingArgument:
		diag.ID = DiagMissingArgument
		diag.Message = fmt.Sprintf("%s on %s must carry exactly one type argument, found %d",
			marker, decl, len(cand.Annotation.Arguments))
	case ReasonMalformedAncestry:
		diag.ID = DiagMalformedAncestry
		diag.Message = fmt.Sprintf("ancestry of %s could not be resolved: %v", decl, v.Walk)
	}
	return diag
}
