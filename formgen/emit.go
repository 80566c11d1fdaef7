package formgen

import (
	"github.com/teranos/formgen/symbols"
)

// Artifact is one generated text unit, keyed by a stable name
type Artifact struct {
	Name string
	Text string

	// Decl is the class the artifact augments
	Decl symbols.TypeRef
}

// ArtifactName returns "<SimpleName>.g.<ext>"
func ArtifactName(d *symbols.Decl, ext string) string {
	return d.Name + ".g." + ext
}

// Emitter renders companion artifacts
type Emitter struct {
	tmpl     *Template
	ext      string
	property string
	member   string
}

// NewEmitter builds an Emitter from generator options
func NewEmitter(opts Options) *Emitter {
	return &Emitter{
		tmpl:     NewTemplate(opts.Newline),
		ext:      opts.Extension,
		property: opts.Property,
		member:   opts.Member,
	}
}

// Emit produces the companion artifact for an eligible declaration
func (e *Emitter) Emit(d *symbols.Decl, resolved symbols.TypeRef) Artifact {
	return Artifact{
		Name: ArtifactName(d, e.ext),
		Text: e.tmpl.Render(Slots{
			Namespace:    d.Namespace,
			DeclName:     d.Name,
			ResolvedType: resolved.String(),
			Property:     e.property,
			Member:       e.member,
		}),
		Decl: d.FullName(),
	}
}
