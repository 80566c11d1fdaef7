package symbols

import "strings"

// RootType is the implicit root of every class hierarchy. It never appears
// in an ancestry chain.
const RootType TypeRef = "System.Object"

// TypeRef is a fully-qualified type name such as "MyApp.MyViewModel".
type TypeRef string

// String returns the fully-qualified display name
func (r TypeRef) String() string {
	return string(r)
}

// IsZero reports whether the reference is empty
func (r TypeRef) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

// Namespace returns everything before the last top-level dot.
// Dots inside generic brackets are ignored.
func (r TypeRef) Namespace() string {
	if i := lastTopLevelDot(string(r)); i >= 0 {
		return string(r)[:i]
	}
	return ""
}

// Name returns the simple name (after the last top-level dot)
func (r TypeRef) Name() string {
	if i := lastTopLevelDot(string(r)); i >= 0 {
		return string(r)[i+1:]
	}
	return string(r)
}

func lastTopLevelDot(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '>', ']':
			depth++
		case '<', '[':
			depth--
		case '.':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Kind is the declaration shape reported by the host
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindStruct    Kind = "struct"
	KindEnum      Kind = "enum"
	KindRecord    Kind = "record"
	KindDelegate  Kind = "delegate"
)

// Valid reports whether k is one of the known declaration kinds
func (k Kind) Valid() bool {
	switch k {
	case KindClass, KindInterface, KindStruct, KindEnum, KindRecord, KindDelegate:
		return true
	}
	return false
}

// Annotation is one attribute instance attached to a declaration
type Annotation struct {
	// Type is the fully-qualified attribute type
	Type TypeRef `yaml:"type" toml:"type" json:"type"`

	// Arguments are the resolved generic type arguments, in declaration order
	Arguments []TypeRef `yaml:"arguments,omitempty" toml:"arguments,omitempty" json:"arguments,omitempty"`
}

// Decl is a single type declaration
type Decl struct {
	Name        string       `yaml:"name" toml:"name" json:"name"`
	Namespace   string       `yaml:"namespace,omitempty" toml:"namespace,omitempty" json:"namespace,omitempty"`
	Kind        Kind         `yaml:"kind,omitempty" toml:"kind,omitempty" json:"kind,omitempty"`
	Base        TypeRef      `yaml:"base,omitempty" toml:"base,omitempty" json:"base,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" toml:"annotations,omitempty" json:"annotations,omitempty"`
}

// FullName returns the fully-qualified name of the declaration
func (d *Decl) FullName() TypeRef {
	if d.Namespace == "" {
		return TypeRef(d.Name)
	}
	return TypeRef(d.Namespace + "." + d.Name)
}

// IsClass reports whether the declaration is class-shaped
func (d *Decl) IsClass() bool {
	return d.Kind == KindClass
}

// AnnotationsOf returns every annotation instance of the given type
func (d *Decl) AnnotationsOf(annotation TypeRef) []Annotation {
	var matches []Annotation
	for _, a := range d.Annotations {
		if a.Type == annotation {
			matches = append(matches, a)
		}
	}
	return matches
}
