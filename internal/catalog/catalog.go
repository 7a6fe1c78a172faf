// Package catalog holds the read-only set of blocks the palette engine
// draws from, and the colour searches over it.
package catalog

import (
	"slices"
	"strings"

	"github.com/jmylchreest/blockhue/internal/colour"
)

// DefaultNamespace is assumed for identifiers given without one.
const DefaultNamespace = "minecraft"

// Element is one block in the catalog. Colour is nil when the block has no
// measured surface colour.
type Element struct {
	ID     string
	Name   string
	Colour *colour.Colour
}

// HasColour reports whether the element has a measured colour.
func (e Element) HasColour() bool {
	return e.Colour != nil
}

// DisplayName returns Name, or a name derived from the ID when Name is empty.
func (e Element) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return DisplayName(e.ID)
}

// Catalog is a read-only view over a set of elements.
type Catalog interface {
	// Lookup finds an element by identifier. Identifiers without a
	// namespace are looked up in DefaultNamespace.
	Lookup(id string) (Element, bool)
	// Elements returns every element ordered by ID.
	Elements() []Element
}

// Static is an in-memory Catalog. It is built once and never modified, so it
// is safe for concurrent use.
type Static struct {
	elements []Element
	byID     map[string]int
}

// New builds a Static catalog. IDs are normalised to carry a namespace; when
// an ID appears more than once the first element wins.
func New(elements ...Element) *Static {
	s := &Static{
		elements: make([]Element, 0, len(elements)),
		byID:     make(map[string]int, len(elements)),
	}

	for _, e := range elements {
		e.ID = NormaliseID(e.ID)
		if e.ID == "" {
			continue
		}
		if _, dup := s.byID[e.ID]; dup {
			continue
		}
		if e.Colour != nil {
			c := *e.Colour
			e.Colour = &c
		}
		s.elements = append(s.elements, e)
		s.byID[e.ID] = -1
	}

	slices.SortFunc(s.elements, func(a, b Element) int {
		return strings.Compare(a.ID, b.ID)
	})
	for i, e := range s.elements {
		s.byID[e.ID] = i
	}

	return s
}

// Lookup implements Catalog.
func (s *Static) Lookup(id string) (Element, bool) {
	i, ok := s.byID[NormaliseID(id)]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

// Elements implements Catalog. The returned slice is a copy.
func (s *Static) Elements() []Element {
	return slices.Clone(s.elements)
}

// Len returns the number of elements.
func (s *Static) Len() int {
	return len(s.elements)
}

// NormaliseID lower-cases an identifier, trims it and adds DefaultNamespace
// when it has none.
func NormaliseID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return ""
	}
	if !strings.Contains(id, ":") {
		return DefaultNamespace + ":" + id
	}
	return id
}

// DisplayName turns an identifier into a title-cased name:
// "minecraft:oak_log" becomes "Oak Log".
func DisplayName(id string) string {
	if _, after, ok := strings.Cut(id, ":"); ok {
		id = after
	}
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
