package colour

import (
	"cmp"
	"slices"
)

// SortByHue returns a copy of colours ordered by HSL hue, then lightness.
func SortByHue(colours []Colour) []Colour {
	sorted := slices.Clone(colours)
	slices.SortStableFunc(sorted, func(a, b Colour) int {
		if c := cmp.Compare(a.hsl.H, b.hsl.H); c != 0 {
			return c
		}
		return cmp.Compare(a.hsl.L, b.hsl.L)
	})
	return sorted
}

// SortByLightness returns a copy of colours ordered dark to light by Oklab L.
func SortByLightness(colours []Colour) []Colour {
	sorted := slices.Clone(colours)
	slices.SortStableFunc(sorted, func(a, b Colour) int {
		return cmp.Compare(a.oklab.L, b.oklab.L)
	})
	return sorted
}
