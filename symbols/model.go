package symbols

import (
	"sort"
	"strings"

	"github.com/teranos/formgen/errors"
)

// DefaultMaxAncestryDepth bounds every ancestry walk. Real hierarchies
// (WinForms Form sits six levels below object) stay well under it.
const DefaultMaxAncestryDepth = 64

// Model is an immutable, indexed set of declarations
type Model struct {
	decls    map[TypeRef]*Decl
	order    []TypeRef
	bases    map[TypeRef]TypeRef
	maxDepth int
}

// Option configures a Model at construction time
type Option func(*Model)

// WithMaxDepth overrides DefaultMaxAncestryDepth. Values <= 0 are ignored.
func WithMaxDepth(depth int) Option {
	return func(m *Model) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// NewModel indexes decls. Declarations are copied; the caller's slice is not retained.
func NewModel(decls []Decl, opts ...Option) (*Model, error) {
	m := &Model{
		decls:    make(map[TypeRef]*Decl, len(decls)),
		order:    make([]TypeRef, 0, len(decls)),
		bases:    make(map[TypeRef]TypeRef, len(decls)),
		maxDepth: DefaultMaxAncestryDepth,
	}
	for _, opt := range opts {
		opt(m)
	}

	for i := range decls {
		d := decls[i]
		d.Name = strings.TrimSpace(d.Name)
		d.Namespace = strings.TrimSpace(d.Namespace)
		if d.Name == "" {
			return nil, errors.NewInvalidModelError("declaration #%d has no name", i)
		}
		if d.Kind == "" {
			d.Kind = KindClass
		}
		if !d.Kind.Valid() {
			return nil, errors.NewInvalidModelError("declaration %s has unknown kind %q", d.FullName(), d.Kind)
		}
		for j, a := range d.Annotations {
			if a.Type.IsZero() {
				return nil, errors.NewInvalidModelError("declaration %s annotation #%d has no type", d.FullName(), j)
			}
		}

		full := d.FullName()
		if _, dup := m.decls[full]; dup {
			return nil, errors.NewInvalidModelError("declaration %s declared twice", full)
		}
		m.decls[full] = &d
		m.order = append(m.order, full)
		if !d.Base.IsZero() && d.Base != RootType {
			m.bases[full] = d.Base
		}
	}

	sort.Slice(m.order, func(i, j int) bool { return m.order[i] < m.order[j] })
	return m, nil
}

// Len returns the number of declarations
func (m *Model) Len() int {
	return len(m.order)
}

// MaxDepth returns the ancestry depth guard in effect
func (m *Model) MaxDepth() int {
	return m.maxDepth
}

// Lookup returns the declaration with the given fully-qualified name
func (m *Model) Lookup(ref TypeRef) (*Decl, bool) {
	d, ok := m.decls[ref]
	return d, ok
}

// Decls returns all declarations ordered by fully-qualified name.
// The returned pointers must be treated as read-only.
func (m *Model) Decls() []*Decl {
	out := make([]*Decl, len(m.order))
	for i, ref := range m.order {
		out[i] = m.decls[ref]
	}
	return out
}

// Base returns the direct base type of ref, if the model knows one
func (m *Model) Base(ref TypeRef) (TypeRef, bool) {
	b, ok := m.bases[ref]
	return b, ok
}

// Ancestors returns the base-type chain of ref, nearest first, excluding ref
// itself and RootType. The walk stops at the first type the model has no base
// for. A revisited type yields ErrCyclicAncestry; a chain longer than the
// depth guard yields ErrAncestryTooDeep. In both cases the partial chain is
// returned alongside the error.
func (m *Model) Ancestors(ref TypeRef) ([]TypeRef, error) {
	var chain []TypeRef
	err := m.walk(ref, func(t TypeRef) bool {
		chain = append(chain, t)
		return true
	})
	return chain, err
}

// DerivesFrom reports whether base appears in the ancestry of ref. The walk
// stops at the first match, so a cycle or depth overflow above base does not
// matter. A malformed chain that never reaches base reports false together
// with the walk error.
func (m *Model) DerivesFrom(ref, base TypeRef) (bool, error) {
	found := false
	err := m.walk(ref, func(t TypeRef) bool {
		found = t == base
		return !found
	})
	if found {
		return true, nil
	}
	return false, err
}

// walk visits the ancestors of ref nearest first until visit returns false
func (m *Model) walk(ref TypeRef, visit func(TypeRef) bool) error {
	visited := map[TypeRef]struct{}{ref: {}}
	depth := 0

	cur, ok := m.bases[ref]
	for ok {
		if _, seen := visited[cur]; seen {
			return errors.Wrapf(errors.ErrCyclicAncestry, "%s revisits %s", ref, cur)
		}
		if depth >= m.maxDepth {
			return errors.Wrapf(errors.ErrAncestryTooDeep, "%s exceeds %d levels", ref, m.maxDepth)
		}
		visited[cur] = struct{}{}
		depth++
		if !visit(cur) {
			return nil
		}
		cur, ok = m.bases[cur]
	}
	return nil
}
