// Package export serializes palettes to text, JSON, CSS, GIMP and Adobe
// swatch formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jmylchreest/blockhue/internal/compression"
	"github.com/jmylchreest/blockhue/internal/palette"
)

// ErrUnknownFormat is returned for a format name or file extension with no
// registered exporter.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter writes a palette in one format. Export only fails when w does;
// an empty palette yields a valid document with no entries.
type Exporter interface {
	// Name returns the format name (e.g., "json", "gpl").
	Name() string

	// Extension returns the file extension including the dot.
	Extension() string

	// Description returns a human-readable description of the format.
	Description() string

	// Export writes p to w.
	Export(w io.Writer, p palette.Palette) error
}

// Registry holds exporters by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// Default returns a registry with every built-in format, using the embedded
// templates.
func Default() *Registry {
	return WithTemplates(NewLoader("", nil))
}

// WithTemplates returns a registry with every built-in format, rendering the
// templated formats through l.
func WithTemplates(l *Loader) *Registry {
	r := NewRegistry()
	r.Register(NewText(l))
	r.Register(JSON{})
	r.Register(NewCSS(l))
	r.Register(GPL{})
	r.Register(ACO{})
	return r
}

// Register adds an exporter, replacing any with the same name.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Lookup is Get with an error naming the valid formats.
func (r *Registry) Lookup(name string) (Exporter, error) {
	if e, ok := r.Get(name); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownFormat, name, strings.Join(r.List(), ", "))
}

// List returns the registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ForPath picks the exporter whose extension matches path, ignoring any
// compression suffix.
func (r *Registry) ForPath(path string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(compression.StripExtension(path)))
	for _, name := range r.List() {
		if e := r.exporters[name]; e.Extension() == ext {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no exporter for %q", ErrUnknownFormat, filepath.Base(path))
}

// WriteFile exports p to path, compressing it when the name ends in .gz or
// .xz.
func WriteFile(path string, e Exporter, p palette.Palette) (err error) {
	w, err := compression.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := e.Export(w, p); err != nil {
		return fmt.Errorf("failed to export %s: %w", e.Name(), err)
	}
	return nil
}

// entryName returns the label used for an entry, falling back to its
// position when the palette has no name for it.
func entryName(e palette.Entry, i int) string {
	if name := strings.TrimSpace(e.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Color %d", i+1)
}

// singleLine flattens newlines so a value cannot break a line-oriented
// format.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
