// Package symbols is formgen's read-only view of a host compilation.
//
// The host (an exporter running next to the real compiler) writes a model
// file listing every declared type, its direct base type and the annotations
// attached to it with their generic arguments already resolved. Nothing here
// parses source text.
//
// # Ancestry
//
// Base types are kept in an explicit adjacency map (type -> direct base).
// Ancestors walks that map iteratively with a visited set and a depth guard,
// so a misbehaving exporter that writes a cycle produces ErrCyclicAncestry
// instead of a hang. Types that are referenced but not declared (framework
// types loaded from metadata the exporter chose not to list) end the chain.
//
// A Model is immutable once built and safe for concurrent readers.
package symbols
