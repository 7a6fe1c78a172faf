package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/gradient"
)

// Generator builds palettes against a read-only catalog. Every method is a
// pure function of its arguments and the catalog, so a Generator can be
// shared between goroutines.
type Generator struct {
	Catalog catalog.Catalog
	Filter  Filter
}

// NewGenerator returns a Generator over c that allows every block.
func NewGenerator(c catalog.Catalog) Generator {
	return Generator{Catalog: c}
}

func (g Generator) source() catalog.Catalog {
	if g.Catalog == nil {
		return catalog.New()
	}
	return g.Catalog
}

func (g Generator) allows(e catalog.Element) bool {
	return g.Filter.AllowsElement(e)
}

// Themed runs a named theme's anchor colours through the gradient engine.
// method overrides the default Linear Oklab interpolation when non-nil.
func (g Generator) Themed(name string, count int, method *gradient.Method) (Palette, error) {
	t, ok := themedGradients[normaliseName(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTheme, name, strings.Join(ThemedNames(), ", "))
	}
	if count < 2 {
		return Palette{}, fmt.Errorf("%w: themed palettes need at least 2 colours, got %d", ErrInvalidCount, count)
	}

	m := gradient.LinearOklab
	if method != nil {
		m = *method
	}

	colours, err := gradient.Interpolate(t.anchors, count, m)
	if err != nil {
		return Palette{}, err
	}

	b := newBuilder(len(colours))
	for i, c := range colours {
		b.add(colourEntry(fmt.Sprintf("%s %d", t.title, i+1), c, roleByThirds(i, len(colours))))
	}

	return Palette{
		Name:        t.title + " Gradient",
		Description: t.description,
		Theme:       t.theme,
		Entries:     b.entries,
	}, nil
}

// Gradient runs arbitrary stop colours through the gradient engine,
// naming the results "Step N".
func (g Generator) Gradient(stops []colour.Colour, steps int, m gradient.Method) (Palette, error) {
	colours, err := gradient.Interpolate(stops, steps, m)
	if err != nil {
		return Palette{}, err
	}

	b := newBuilder(len(colours))
	for i, c := range colours {
		b.add(colourEntry(fmt.Sprintf("Step %d", i+1), c, roleByThirds(i, len(colours))))
	}

	return Palette{
		Name:        "Custom Gradient",
		Description: fmt.Sprintf("A %d step %s gradient through %d colours", steps, m, len(stops)),
		Theme:       Gradient,
		Entries:     b.entries,
	}, nil
}

// Natural builds a biome palette from the fixed block table for that biome.
func (g Generator) Natural(biome string) (Palette, error) {
	key := normaliseName(biome)
	if alias, ok := naturalAliases[key]; ok {
		key = alias
	}
	set, ok := naturalSets[key]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTheme, biome, strings.Join(NaturalThemes(), ", "))
	}
	return g.fromBlockSet(set, Natural)
}

// Architectural builds a building style palette from the fixed block table
// for that style.
func (g Generator) Architectural(style string) (Palette, error) {
	set, ok := architecturalSets[normaliseName(style)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownTheme, style, strings.Join(ArchitecturalStyles(), ", "))
	}
	return g.fromBlockSet(set, Architectural)
}

// fromBlockSet resolves table rows in order, skipping blocks that are
// missing, uncoloured or filtered out.
func (g Generator) fromBlockSet(set blockSet, theme Theme) (Palette, error) {
	cat := g.source()
	b := newBuilder(len(set.rows))

	for _, row := range set.rows {
		e, ok := cat.Lookup(row.id)
		if !ok || !e.HasColour() || !g.allows(e) {
			continue
		}
		b.add(elementEntry(e, row.role))
	}

	if len(b.entries) == 0 {
		return Palette{}, fmt.Errorf("%w: %s", ErrNoMatchingElements, set.title)
	}

	return Palette{
		Name:        set.title,
		Description: set.description,
		Theme:       theme,
		Entries:     b.entries,
	}, nil
}

const (
	monoLow  = 0.1
	monoHigh = 0.9
)

// Monochrome returns count tones of base with its hue and saturation held
// fixed and lightness rising from dark to light. Odd counts place the base
// lightness exactly at the midpoint.
func (g Generator) Monochrome(base colour.Colour, count int) (Palette, error) {
	if count < 1 {
		return Palette{}, fmt.Errorf("%w: monochrome palettes need at least 1 colour, got %d", ErrInvalidCount, count)
	}

	hsl := base.HSL()
	levels := monochromeLevels(hsl.L, count)
	mid := (count - 1) / 2

	b := newBuilder(count)
	for i, l := range levels {
		role := Secondary
		switch {
		case count%2 == 1 && i == mid:
			role = Primary
		case i == 0 || i == count-1:
			role = Accent
		}
		b.add(colourEntry(fmt.Sprintf("Tone %d", i+1), colour.FromHSL(hsl.H, hsl.S, l), role))
	}

	return Palette{
		Name:        base.Hex() + " Monochrome",
		Description: fmt.Sprintf("%d tonal variations of %s from dark to light", len(b.entries), base.Hex()),
		Theme:       Monochrome,
		Entries:     b.entries,
	}, nil
}

// monochromeLevels spreads count lightness values over [monoLow, monoHigh],
// widened so the base lies inside. For odd counts the base is the
// exact midpoint, with each half spaced evenly.
func monochromeLevels(base float64, count int) []float64 {
	low := math.Min(monoLow, base/2)
	high := math.Max(monoHigh, (1+base)/2)

	levels := make([]float64, count)
	if count == 1 {
		levels[0] = base
		return levels
	}

	// Black and white cannot sit strictly inside the range.
	if count%2 == 0 || base <= low || base >= high {
		for i := range levels {
			levels[i] = low + (high-low)*float64(i)/float64(count-1)
		}
		return levels
	}

	mid := (count - 1) / 2
	for i := 0; i < mid; i++ {
		levels[i] = low + (base-low)*float64(i)/float64(mid)
		levels[count-1-i] = high - (high-base)*float64(i)/float64(mid)
	}
	levels[mid] = base
	return levels
}

const (
	neutralSaturation = 0.08
	neutralOffset     = 0.3
)

// Complementary returns base, its complement (hue + 180) and two
// low-saturation neutrals either side of the base lightness.
func (g Generator) Complementary(base colour.Colour) (Palette, error) {
	hsl := base.HSL()
	clamp := func(l float64) float64 { return math.Max(0.05, math.Min(0.95, l)) }

	b := newBuilder(4)
	b.add(colourEntry("Base", base, Primary))
	b.add(colourEntry("Complement", colour.FromHSL(hsl.H+180, hsl.S, hsl.L), Accent))
	b.add(colourEntry("Dark Neutral", colour.FromHSL(hsl.H, neutralSaturation, clamp(hsl.L-neutralOffset)), Secondary))
	b.add(colourEntry("Light Neutral", colour.FromHSL(hsl.H, neutralSaturation, clamp(hsl.L+neutralOffset)), Secondary))

	return Palette{
		Name:        base.Hex() + " Complementary",
		Description: fmt.Sprintf("A high contrast scheme built on %s and its complement", base.Hex()),
		Theme:       Complementary,
		Entries:     b.entries,
	}, nil
}

// Analogous returns base with its neighbours 30 and 60 degrees either side.
func (g Generator) Analogous(base colour.Colour) (Palette, error) {
	hsl := base.HSL()
	rot := func(deg float64) colour.Colour { return colour.FromHSL(hsl.H+deg, hsl.S, hsl.L) }

	b := newBuilder(5)
	b.add(colourEntry("Base", base, Primary))
	b.add(colourEntry("Analogous +30", rot(30), Secondary))
	b.add(colourEntry("Analogous -30", rot(-30), Secondary))
	b.add(colourEntry("Analogous +60", rot(60), Accent))
	b.add(colourEntry("Analogous -60", rot(-60), Accent))

	return Palette{
		Name:        base.Hex() + " Analogous",
		Description: fmt.Sprintf("Neighbouring hues around %s for a harmonious blend", base.Hex()),
		Theme:       Analogous,
		Entries:     b.entries,
	}, nil
}

// Triadic returns base and the two hues 120 degrees away.
func (g Generator) Triadic(base colour.Colour) (Palette, error) {
	hsl := base.HSL()

	b := newBuilder(3)
	b.add(colourEntry("Base", base, Primary))
	b.add(colourEntry("Triadic +120", colour.FromHSL(hsl.H+120, hsl.S, hsl.L), Secondary))
	b.add(colourEntry("Triadic +240", colour.FromHSL(hsl.H+240, hsl.S, hsl.L), Accent))

	return Palette{
		Name:        base.Hex() + " Triadic",
		Description: fmt.Sprintf("Three evenly spaced hues starting from %s", base.Hex()),
		Theme:       Triadic,
		Entries:     b.entries,
	}, nil
}

// SelectDistinct picks up to k colours from candidates that are as far
// apart as possible. It starts from the darkest candidate by Oklab
// lightness and repeatedly adds the candidate whose nearest selected colour
// is furthest away. Ties go to the earlier candidate. Duplicate colours are
// considered once.
func SelectDistinct(candidates []colour.Colour, k int) ([]colour.Colour, error) {
	idx, err := selectDistinct(candidates, k)
	if err != nil {
		return nil, err
	}
	out := make([]colour.Colour, len(idx))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out, nil
}

// selectDistinct returns candidate indices in selection order.
func selectDistinct(candidates []colour.Colour, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: distinct selection needs at least 1 colour, got %d", ErrInvalidCount, k)
	}

	seen := make(map[string]bool, len(candidates))
	var pool []int
	for i, c := range candidates {
		if !seen[c.Hex()] {
			seen[c.Hex()] = true
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return []int{}, nil
	}

	first := 0
	for p := 1; p < len(pool); p++ {
		if candidates[pool[p]].Oklab().L < candidates[pool[first]].Oklab().L {
			first = p
		}
	}

	selected := []int{pool[first]}
	// nearest[p] is the distance from pool[p] to its closest selected colour.
	nearest := make([]float64, len(pool))
	used := make([]bool, len(pool))
	used[first] = true
	for p := range pool {
		nearest[p] = colour.Distance(candidates[pool[p]], candidates[pool[first]])
	}

	for len(selected) < k && len(selected) < len(pool) {
		best := -1
		for p := range pool {
			if used[p] {
				continue
			}
			if best < 0 || nearest[p] > nearest[best] {
				best = p
			}
		}

		used[best] = true
		selected = append(selected, pool[best])
		for p := range pool {
			if d := colour.Distance(candidates[pool[p]], candidates[pool[best]]); d < nearest[p] {
				nearest[p] = d
			}
		}
	}

	return selected, nil
}

// Distinct builds a palette of up to k mutually distant free colours.
func (g Generator) Distinct(candidates []colour.Colour, k int) (Palette, error) {
	picked, err := SelectDistinct(candidates, k)
	if err != nil {
		return Palette{}, err
	}

	b := newBuilder(len(picked))
	for i, c := range picked {
		b.add(colourEntry(fmt.Sprintf("Distinct %d", i+1), c, roleByThirds(i, len(picked))))
	}

	return Palette{
		Name:        "Distinct Colours",
		Description: fmt.Sprintf("%d colours chosen to be as far apart as possible", len(b.entries)),
		Theme:       Distinct,
		Entries:     b.entries,
	}, nil
}

// DistinctFromCatalog picks up to k mutually distant blocks from the
// coloured, filter-allowed catalog elements.
func (g Generator) DistinctFromCatalog(k int) (Palette, error) {
	var elements []catalog.Element
	for _, e := range catalog.Coloured(g.source()) {
		if g.allows(e) {
			elements = append(elements, e)
		}
	}
	if len(elements) == 0 {
		return Palette{}, fmt.Errorf("%w: no coloured blocks to choose from", ErrNoMatchingElements)
	}

	candidates := make([]colour.Colour, len(elements))
	for i, e := range elements {
		candidates[i] = *e.Colour
	}

	idx, err := selectDistinct(candidates, k)
	if err != nil {
		return Palette{}, err
	}

	b := newBuilder(len(idx))
	for i, j := range idx {
		b.add(elementEntry(elements[j], roleByThirds(i, len(idx))))
	}

	return Palette{
		Name:        "Distinct Blocks",
		Description: fmt.Sprintf("%d blocks chosen to be as far apart in colour as possible", len(b.entries)),
		Theme:       Distinct,
		Entries:     b.entries,
	}, nil
}

// BlockGradient interpolates between two catalog blocks and snaps every
// intermediate colour to the nearest allowed block. When no block is
// available the raw colour is kept. Intermediates that repeat a colour
// already in the palette, or the end block's colour, are dropped.
func (g Generator) BlockGradient(startID, endID string, steps int, m gradient.Method) (Palette, error) {
	start, err := g.colouredElement(startID)
	if err != nil {
		return Palette{}, err
	}
	end, err := g.colouredElement(endID)
	if err != nil {
		return Palette{}, err
	}

	colours, err := gradient.Between(*start.Colour, *end.Colour, steps, m)
	if err != nil {
		return Palette{}, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}

	cat := g.source()
	b := newBuilder(steps)
	b.add(elementEntry(start, Primary))

	for i, c := range colours[1 : len(colours)-1] {
		var entry Entry
		if e, ok := catalog.NearestFiltered(cat, c, g.allows); ok {
			entry = elementEntry(e, Secondary)
		} else {
			entry = colourEntry(fmt.Sprintf("Step %d", i+2), c, Secondary)
		}
		if entry.Colour.Equal(*end.Colour) {
			continue
		}
		b.add(entry)
	}

	if !b.has(*end.Colour) {
		b.add(elementEntry(end, Accent))
	}

	return Palette{
		Name:        fmt.Sprintf("%s to %s Gradient", start.DisplayName(), end.DisplayName()),
		Description: fmt.Sprintf("A smooth gradient from %s to %s using %d blocks", start.DisplayName(), end.DisplayName(), len(b.entries)),
		Theme:       Gradient,
		Entries:     b.entries,
	}, nil
}

func (g Generator) colouredElement(id string) (catalog.Element, error) {
	e, ok := g.source().Lookup(id)
	if !ok {
		return catalog.Element{}, fmt.Errorf("%w: %s", ErrUnknownElement, id)
	}
	if !e.HasColour() {
		return catalog.Element{}, fmt.Errorf("%w: %s", ErrUncolouredElement, e.ID)
	}
	return e, nil
}

// Snap replaces every free colour in p with the nearest allowed catalog
// block, keeping its role. Entries that collapse onto a colour already in
// the palette are dropped; free colours are kept when no block is available.
func (g Generator) Snap(p Palette) Palette {
	cat := g.source()
	b := newBuilder(len(p.Entries))

	for _, entry := range p.Entries {
		if entry.Element == nil {
			if e, ok := catalog.NearestFiltered(cat, entry.Colour, g.allows); ok {
				entry = elementEntry(e, entry.Role)
			}
		}
		b.add(entry)
	}

	out := p
	out.Entries = b.entries
	return out
}
