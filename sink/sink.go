// Package sink registers generated artifacts with their destination.
//
// Every sink implements formgen.Sink (AddSource(name, text) error). Memory
// keeps artifacts for tests and check mode, Dir writes one file per artifact,
// Writer streams them to stdout with a header line per artifact.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/teranos/formgen/errors"
)

// Memory collects artifacts in memory. Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	sources map[string]string
}

// NewMemory returns an empty in-memory sink
func NewMemory() *Memory {
	return &Memory{sources: make(map[string]string)}
}

// AddSource records an artifact. Registering the same name twice is an error.
func (m *Memory) AddSource(name, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.sources[name]; dup {
		return errors.Wrapf(errors.ErrDuplicateArtifact, "%s already registered", name)
	}
	m.sources[name] = text
	return nil
}

// Get returns the text registered under name
func (m *Memory) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.sources[name]
	return text, ok
}

// Names returns the registered artifact names, sorted
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered artifacts
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sources)
}

// Dir writes each artifact to <root>/<name>
type Dir struct {
	root    string
	written []string
}

// NewDir returns a sink writing into root, creating it on first write
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// AddSource writes the artifact file, replacing any previous content
func (d *Dir) AddSource(name, text string) error {
	if name != filepath.Base(name) {
		return errors.Newf("artifact name %q must not contain a path", name)
	}
	if err := os.MkdirAll(d.root, 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	path := filepath.Join(d.root, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	d.written = append(d.written, path)
	return nil
}

// Written returns the paths written so far, in write order
func (d *Dir) Written() []string {
	return append([]string(nil), d.written...)
}

// Root returns the output directory
func (d *Dir) Root() string {
	return d.root
}

// Writer streams artifacts to w, each preceded by a "// <name>" header line.
// Header and separator use the same line ending as the artifacts.
type Writer struct {
	w       io.Writer
	newline string
}

// NewWriter returns a sink writing to w with the given line ending.
// An empty newline means "\n".
func NewWriter(w io.Writer, newline string) *Writer {
	if newline == "" {
		newline = "\n"
	}
	return &Writer{w: w, newline: newline}
}

// AddSource writes the header line and the artifact text followed by a blank line
func (s *Writer) AddSource(name, text string) error {
	nl := s.newline
	if _, err := fmt.Fprintf(s.w, "// %s%s%s%s%s", name, nl, text, nl, nl); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
