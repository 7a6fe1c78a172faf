// Package palette builds colour palettes for block builds: themed
// gradients, biome and architectural block sets, colour-theory schemes,
// distinct subsets and gradients snapped to real blocks.
package palette

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
)

var (
	// ErrUnknownTheme is returned for a theme or style name not in the tables.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrNoMatchingElements is returned when a theme resolves to no usable
	// catalog elements.
	ErrNoMatchingElements = errors.New("no matching elements in catalog")

	// ErrInvalidCount is returned for a colour count that is too small.
	ErrInvalidCount = errors.New("invalid colour count")

	// ErrUnknownElement is returned when an element ID is not in the catalog.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUncolouredElement is returned when an element has no colour.
	ErrUncolouredElement = errors.New("element has no colour")
)

// Role suggests how much of a build an entry should cover.
type Role int

const (
	// Primary is the main building material.
	Primary Role = iota
	// Secondary supports the primary with trim and medium-scale features.
	Secondary
	// Accent is used sparingly for detail and contrast.
	Accent
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Accent:
		return "Accent"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Theme classifies how a palette was built.
type Theme int

// Palette themes.
const (
	Gradient Theme = iota
	Monochrome
	Complementary
	Analogous
	Triadic
	Natural
	Architectural
	Seasonal
	Distinct
)

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case Gradient:
		return "Gradient"
	case Monochrome:
		return "Monochrome"
	case Complementary:
		return "Complementary"
	case Analogous:
		return "Analogous"
	case Triadic:
		return "Triadic"
	case Natural:
		return "Natural"
	case Architectural:
		return "Architectural"
	case Seasonal:
		return "Seasonal"
	case Distinct:
		return "Distinct"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// Entry is one colour in a palette. Element is nil for a free colour that
// is not tied to a catalog block; Colour is always set.
type Entry struct {
	Name    string
	Colour  colour.Colour
	Element *catalog.Element
	Role    Role
	Usage   string
}

// ID returns the element ID, or "" for a free colour.
func (e Entry) ID() string {
	if e.Element == nil {
		return ""
	}
	return e.Element.ID
}

// Palette is an ordered set of entries, unique by colour.
type Palette struct {
	Name        string
	Description string
	Theme       Theme
	Entries     []Entry
}

// Len returns the number of entries.
func (p Palette) Len() int {
	return len(p.Entries)
}

// Colours returns the entry colours in order.
func (p Palette) Colours() []colour.Colour {
	out := make([]colour.Colour, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Colour
	}
	return out
}

// SortedByHue returns a copy of the palette with entries ordered by hue.
func (p Palette) SortedByHue() Palette {
	return p.sorted(func(a, b Entry) bool { return a.Colour.HSL().H < b.Colour.HSL().H })
}

// SortedByLightness returns a copy of the palette with entries ordered from
// dark to light.
func (p Palette) SortedByLightness() Palette {
	return p.sorted(func(a, b Entry) bool { return a.Colour.HSL().L < b.Colour.HSL().L })
}

func (p Palette) sorted(less func(a, b Entry) bool) Palette {
	out := p
	out.Entries = slices.Clone(p.Entries)
	slices.SortStableFunc(out.Entries, func(a, b Entry) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// builder accumulates entries, dropping any whose colour is already present.
type builder struct {
	entries []Entry
	seen    map[string]bool
}

func newBuilder(capacity int) *builder {
	return &builder{
		entries: make([]Entry, 0, capacity),
		seen:    make(map[string]bool, capacity),
	}
}

func (b *builder) add(e Entry) bool {
	hex := e.Colour.Hex()
	if b.seen[hex] {
		return false
	}
	b.seen[hex] = true
	b.entries = append(b.entries, e)
	return true
}

func (b *builder) has(c colour.Colour) bool {
	return b.seen[c.Hex()]
}

// elementEntry makes an entry for a coloured catalog element.
func elementEntry(e catalog.Element, role Role) Entry {
	el := e
	return Entry{
		Name:    e.DisplayName(),
		Colour:  *e.Colour,
		Element: &el,
		Role:    role,
		Usage:   UsageNotes(e.ID, role),
	}
}

// colourEntry makes an entry for a free colour.
func colourEntry(name string, c colour.Colour, role Role) Entry {
	return Entry{
		Name:   name,
		Colour: c,
		Role:   role,
		Usage:  colourUsage(role),
	}
}

// roleByThirds gives the first third of n positions Primary, the middle
// third Secondary and the rest Accent.
func roleByThirds(i, n int) Role {
	switch {
	case i*3 < n:
		return Primary
	case i*3 < 2*n:
		return Secondary
	default:
		return Accent
	}
}
