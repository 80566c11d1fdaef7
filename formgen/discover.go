package formgen

import (
	"iter"

	"github.com/teranos/formgen/errors"
	"github.com/teranos/formgen/symbols"
)

// Candidate pairs a marked class with its single marker instance
type Candidate struct {
	Decl       *symbols.Decl
	Annotation symbols.Annotation
}

// Discover lazily yields every class-shaped declaration carrying annotation,
// in ascending fully-qualified-name order. Other declaration kinds are
// skipped. A class carrying the marker more than once breaks the one-artifact
// per class invariant: the sequence yields an assertion error and stops.
func Discover(model *symbols.Model, annotation symbols.TypeRef) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		for _, d := range model.Decls() {
			if !d.IsClass() {
				continue
			}

			matches := d.AnnotationsOf(annotation)
			switch len(matches) {
			case 0:
				continue
			case 1:
				if !yield(Candidate{Decl: d, Annotation: matches[0]}, nil) {
					return
				}
			default:
				yield(Candidate{Decl: d}, errors.AssertionFailedf(
					"%s carries %d instances of %s", d.FullName(), len(matches), annotation))
				return
			}
		}
	}
}
