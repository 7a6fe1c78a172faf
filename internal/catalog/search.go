package catalog

import (
	"math"
	"slices"
	"strings"

	"github.com/jmylchreest/blockhue/internal/colour"
)

// Match is an element with its Oklab distance to a search target.
type Match struct {
	Element  Element
	Distance float64
}

// FindByColourRange returns up to limit coloured elements whose Oklab
// distance to target is at most tolerance, nearest first. Equal distances
// are ordered by ID. An empty result is not an error.
func FindByColourRange(c Catalog, target colour.Colour, tolerance float64, limit int) []Element {
	matches := FindMatches(c, target, tolerance, limit)
	out := make([]Element, len(matches))
	for i, m := range matches {
		out[i] = m.Element
	}
	return out
}

// FindMatches is FindByColourRange with the distances included.
func FindMatches(c Catalog, target colour.Colour, tolerance float64, limit int) []Match {
	if limit <= 0 || c == nil || math.IsNaN(tolerance) {
		return []Match{}
	}

	var matches []Match
	for _, e := range c.Elements() {
		if e.Colour == nil {
			continue
		}
		if d := colour.Distance(target, *e.Colour); d <= tolerance {
			matches = append(matches, Match{Element: e, Distance: d})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return strings.Compare(a.Element.ID, b.Element.ID)
		}
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		return []Match{}
	}
	return matches
}

// Nearest returns the coloured element closest to target. It reports false
// when the catalog has no coloured elements.
func Nearest(c Catalog, target colour.Colour) (Element, bool) {
	found := FindByColourRange(c, target, math.Inf(1), 1)
	if len(found) == 0 {
		return Element{}, false
	}
	return found[0], true
}

// NearestFiltered is Nearest restricted to elements accepted by keep.
func NearestFiltered(c Catalog, target colour.Colour, keep func(Element) bool) (Element, bool) {
	if keep == nil {
		return Nearest(c, target)
	}
	return Nearest(filtered{Catalog: c, keep: keep}, target)
}

// Coloured returns the elements that have a colour, ordered by ID.
func Coloured(c Catalog) []Element {
	var out []Element
	for _, e := range c.Elements() {
		if e.Colour != nil {
			out = append(out, e)
		}
	}
	return out
}

type filtered struct {
	Catalog
	keep func(Element) bool
}

func (f filtered) Elements() []Element {
	all := f.Catalog.Elements()
	out := all[:0]
	for _, e := range all {
		if f.keep(e) {
			out = append(out, e)
		}
	}
	return out
}
