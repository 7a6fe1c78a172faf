package palette

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/gradient"
)

const epsilon = 1e-9

func assertEntries(t *testing.T, p Palette, wantIDs []string, wantRoles []Role) {
	t.Helper()
	if p.Len() != len(wantIDs) {
		t.Fatalf("got %d entries %v, want %d", p.Len(), entryIDs(p), len(wantIDs))
	}
	for i, e := range p.Entries {
		if e.ID() != wantIDs[i] {
			t.Errorf("entry %d = %q, want %q", i, e.ID(), wantIDs[i])
		}
		if e.Role != wantRoles[i] {
			t.Errorf("entry %d role = %v, want %v", i, e.Role, wantRoles[i])
		}
	}
}

func entryIDs(p Palette) []string {
	ids := make([]string, p.Len())
	for i, e := range p.Entries {
		ids[i] = e.ID()
		if ids[i] == "" {
			ids[i] = e.Colour.Hex()
		}
	}
	return ids
}

func TestNaturalForest(t *testing.T) {
	g := NewGenerator(testCatalog())

	for _, name := range []string{"forest", "Forest", " woods "} {
		t.Run(name, func(t *testing.T) {
			p, err := g.Natural(name)
			if err != nil {
				t.Fatalf("Natural() error = %v", err)
			}
			if p.Name != "Forest Biome" || p.Theme != Natural {
				t.Errorf("Natural() = %q (%v)", p.Name, p.Theme)
			}
			assertEntries(t, p,
				[]string{"minecraft:oak_log", "minecraft:grass_block"},
				[]Role{Primary, Secondary})

			if p.Entries[0].Colour.Hex() != "#8B7355" || p.Entries[1].Colour.Hex() != "#7CFC00" {
				t.Errorf("colours = %s, %s", p.Entries[0].Colour.Hex(), p.Entries[1].Colour.Hex())
			}
			if p.Entries[0].Usage != UsageNotes("minecraft:oak_log", Primary) {
				t.Errorf("usage = %q", p.Entries[0].Usage)
			}
		})
	}
}

func TestNaturalErrors(t *testing.T) {
	g := NewGenerator(testCatalog())

	if _, err := g.Natural("swamp"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Natural(swamp) error = %v, want ErrUnknownTheme", err)
	}
	if _, err := g.Natural("nether"); !errors.Is(err, ErrNoMatchingElements) {
		t.Errorf("Natural(nether) error = %v, want ErrNoMatchingElements", err)
	}
	if _, err := (Generator{}).Natural("forest"); !errors.Is(err, ErrNoMatchingElements) {
		t.Errorf("Natural() on empty catalog error = %v, want ErrNoMatchingElements", err)
	}
}

func TestNaturalSkipsUncolouredElements(t *testing.T) {
	cat := catalog.New(
		catalog.Element{ID: "minecraft:water"},
		catalog.Element{ID: "minecraft:prismarine", Colour: hex("#63AB9E")},
	)

	p, err := NewGenerator(cat).Natural("ocean")
	if err != nil {
		t.Fatalf("Natural() error = %v", err)
	}
	assertEntries(t, p, []string{"minecraft:prismarine"}, []Role{Secondary})
}

func TestNaturalWithFilter(t *testing.T) {
	g := Generator{Catalog: testCatalog(), Filter: SolidBlocksOnly()}

	p, err := g.Natural("desert")
	if err != nil {
		t.Fatalf("Natural() error = %v", err)
	}
	// sand falls, sandstone does not.
	assertEntries(t, p, []string{"minecraft:sandstone"}, []Role{Secondary})
}

func TestArchitectural(t *testing.T) {
	g := NewGenerator(testCatalog())

	tests := []struct {
		style     string
		wantIDs   []string
		wantRoles []Role
	}{
		{
			style:     "medieval",
			wantIDs:   []string{"minecraft:cobblestone", "minecraft:oak_log"},
			wantRoles: []Role{Primary, Accent},
		},
		{
			style:     "RUSTIC",
			wantIDs:   []string{"minecraft:cobblestone", "minecraft:stone"},
			wantRoles: []Role{Secondary, Accent},
		},
		{
			style:     "modern",
			wantIDs:   []string{"minecraft:glass"},
			wantRoles: []Role{Secondary},
		},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			p, err := g.Architectural(tt.style)
			if err != nil {
				t.Fatalf("Architectural() error = %v", err)
			}
			if p.Theme != Architectural {
				t.Errorf("Theme = %v, want Architectural", p.Theme)
			}
			assertEntries(t, p, tt.wantIDs, tt.wantRoles)
		})
	}

	if _, err := g.Architectural("brutalist"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Architectural(brutalist) error = %v, want ErrUnknownTheme", err)
	}
	if _, err := g.Architectural("industrial"); !errors.Is(err, ErrNoMatchingElements) {
		t.Errorf("Architectural(industrial) error = %v, want ErrNoMatchingElements", err)
	}
}

func TestThemed(t *testing.T) {
	g := NewGenerator(nil)

	for _, name := range ThemedNames() {
		t.Run(name, func(t *testing.T) {
			p, err := g.Themed(name, 7, nil)
			if err != nil {
				t.Fatalf("Themed() error = %v", err)
			}
			if p.Len() != 7 {
				t.Fatalf("Themed() returned %d entries, want 7", p.Len())
			}

			anchors := themedGradients[name].anchors
			if !p.Entries[0].Colour.Equal(anchors[0]) {
				t.Errorf("first = %s, want %s", p.Entries[0].Colour.Hex(), anchors[0].Hex())
			}
			if !p.Entries[6].Colour.Equal(anchors[len(anchors)-1]) {
				t.Errorf("last = %s, want %s", p.Entries[6].Colour.Hex(), anchors[len(anchors)-1].Hex())
			}

			wantRoles := []Role{Primary, Primary, Primary, Secondary, Secondary, Accent, Accent}
			for i, e := range p.Entries {
				if e.Role != wantRoles[i] {
					t.Errorf("entry %d role = %v, want %v", i, e.Role, wantRoles[i])
				}
				if e.Element != nil {
					t.Errorf("entry %d should be a free colour", i)
				}
			}
		})
	}
}

func TestThemedMethodOverride(t *testing.T) {
	g := NewGenerator(nil)
	m := gradient.LinearRGB

	oklab, err := g.Themed("sunset", 5, nil)
	if err != nil {
		t.Fatalf("Themed() error = %v", err)
	}
	rgb, err := g.Themed("sunset", 5, &m)
	if err != nil {
		t.Fatalf("Themed() error = %v", err)
	}

	// Five steps over five anchors land exactly on the anchors whatever the
	// method.
	for i := range oklab.Entries {
		if !oklab.Entries[i].Colour.Equal(rgb.Entries[i].Colour) {
			t.Errorf("entry %d: oklab %s, rgb %s", i, oklab.Entries[i].Colour.Hex(), rgb.Entries[i].Colour.Hex())
		}
	}

	more, _ := g.Themed("sunset", 9, &m)
	less, _ := g.Themed("sunset", 9, nil)
	if more.Entries[1].Colour.Equal(less.Entries[1].Colour) {
		t.Errorf("rgb and oklab interpolation both gave %s", more.Entries[1].Colour.Hex())
	}
}

func TestThemedErrors(t *testing.T) {
	g := NewGenerator(nil)

	if _, err := g.Themed("vapourwave", 5, nil); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Themed(vapourwave) error = %v, want ErrUnknownTheme", err)
	}
	if _, err := g.Themed("fire", 1, nil); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("Themed(fire, 1) error = %v, want ErrInvalidCount", err)
	}
}

func TestGradient(t *testing.T) {
	g := NewGenerator(nil)
	stops := []colour.Colour{colour.MustParseHex("#FF0000"), colour.MustParseHex("#0000FF")}

	p, err := g.Gradient(stops, 3, gradient.LinearRGB)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	if p.Name != "Custom Gradient" || p.Theme != Gradient {
		t.Errorf("Gradient() = %q (%v)", p.Name, p.Theme)
	}

	want := []string{"#FF0000", "#800080", "#0000FF"}
	if got := entryIDs(p); len(got) != len(want) {
		t.Fatalf("Gradient() = %v, want %v", got, want)
	}
	for i, e := range p.Entries {
		if e.Colour.Hex() != want[i] {
			t.Errorf("entry %d = %s, want %s", i, e.Colour.Hex(), want[i])
		}
		if e.Element != nil {
			t.Errorf("entry %d is tied to %s, want a free colour", i, e.ID())
		}
	}
	if p.Entries[0].Name != "Step 1" || p.Entries[2].Role != Accent {
		t.Errorf("entries = %q %v, %q %v", p.Entries[0].Name, p.Entries[0].Role, p.Entries[2].Name, p.Entries[2].Role)
	}

	if _, err := g.Gradient(stops[:1], 3, gradient.LinearRGB); !errors.Is(err, gradient.ErrInvalidStops) {
		t.Errorf("Gradient() with one stop error = %v, want ErrInvalidStops", err)
	}
	if _, err := g.Gradient(stops, 1, gradient.LinearRGB); !errors.Is(err, gradient.ErrInvalidStepCount) {
		t.Errorf("Gradient() with one step error = %v, want ErrInvalidStepCount", err)
	}
}

func TestMonochrome(t *testing.T) {
	base := colour.MustParseHex("#3366CC")
	p, err := NewGenerator(nil).Monochrome(base, 5)
	if err != nil {
		t.Fatalf("Monochrome() error = %v", err)
	}
	if p.Len() != 5 {
		t.Fatalf("Monochrome() returned %d entries, want 5", p.Len())
	}

	want := base.HSL()
	prev := -1.0
	for i, e := range p.Entries {
		hsl := e.Colour.HSL()
		if math.Abs(hsl.H-want.H) > epsilon || math.Abs(hsl.S-want.S) > epsilon {
			t.Errorf("entry %d: H=%v S=%v, want H=%v S=%v", i, hsl.H, hsl.S, want.H, want.S)
		}
		if hsl.L <= prev {
			t.Errorf("entry %d: lightness %v not above %v", i, hsl.L, prev)
		}
		prev = hsl.L
	}

	if mid := p.Entries[2].Colour.HSL().L; math.Abs(mid-want.L) > epsilon {
		t.Errorf("middle lightness = %v, want base %v", mid, want.L)
	}

	wantRoles := []Role{Accent, Secondary, Primary, Secondary, Accent}
	for i, e := range p.Entries {
		if e.Role != wantRoles[i] {
			t.Errorf("entry %d role = %v, want %v", i, e.Role, wantRoles[i])
		}
	}
}

func TestMonochromeLevels(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		count int
		want  []float64
	}{
		{name: "mid grey odd", base: 0.5, count: 5, want: []float64{0.1, 0.3, 0.5, 0.7, 0.9}},
		{name: "even", base: 0.5, count: 2, want: []float64{0.1, 0.9}},
		{name: "single", base: 0.42, count: 1, want: []float64{0.42}},
		{name: "dark base widens range", base: 0.1, count: 3, want: []float64{0.05, 0.1, 0.9}},
		{name: "black", base: 0, count: 3, want: []float64{0, 0.45, 0.9}},
		{name: "white", base: 1, count: 3, want: []float64{0.1, 0.55, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := monochromeLevels(tt.base, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("monochromeLevels() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > epsilon {
					t.Errorf("monochromeLevels() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestMonochromeInvalidCount(t *testing.T) {
	_, err := NewGenerator(nil).Monochrome(colour.MustParseHex("#123456"), 0)
	if !errors.Is(err, ErrInvalidCount) {
		t.Errorf("Monochrome(0) error = %v, want ErrInvalidCount", err)
	}
}

func TestComplementary(t *testing.T) {
	tests := []struct {
		base       string
		complement string
	}{
		{base: "#FF0000", complement: "#00FFFF"},
		{base: "#3366CC", complement: "#CC9933"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			base := colour.MustParseHex(tt.base)
			p, err := NewGenerator(nil).Complementary(base)
			if err != nil {
				t.Fatalf("Complementary() error = %v", err)
			}
			if p.Len() != 4 {
				t.Fatalf("Complementary() returned %d entries, want 4", p.Len())
			}
			if !p.Entries[0].Colour.Equal(base) {
				t.Errorf("first entry = %s, want base", p.Entries[0].Colour.Hex())
			}

			comp := p.Entries[1].Colour
			if comp.Hex() != tt.complement {
				t.Errorf("complement = %s, want %s", comp.Hex(), tt.complement)
			}
			b, c := base.HSL(), comp.HSL()
			if d := colour.HueDistance(b.H, c.H); math.Abs(d-180) > epsilon {
				t.Errorf("hue delta = %v, want 180", d)
			}
			if math.Abs(b.S-c.S) > epsilon || math.Abs(b.L-c.L) > epsilon {
				t.Errorf("complement S/L = %v/%v, base %v/%v", c.S, c.L, b.S, b.L)
			}

			for _, n := range p.Entries[2:] {
				if s := n.Colour.HSL().S; math.Abs(s-neutralSaturation) > epsilon {
					t.Errorf("%s saturation = %v, want %v", n.Name, s, neutralSaturation)
				}
			}
		})
	}
}

func TestAnalogousAndTriadic(t *testing.T) {
	g := NewGenerator(nil)
	base := colour.MustParseHex("#FF0000")

	an, err := g.Analogous(base)
	if err != nil {
		t.Fatalf("Analogous() error = %v", err)
	}
	wantDeltas := []float64{0, 30, 30, 60, 60}
	if an.Len() != len(wantDeltas) {
		t.Fatalf("Analogous() returned %d entries", an.Len())
	}
	for i, e := range an.Entries {
		if d := colour.HueDistance(0, e.Colour.HSL().H); math.Abs(d-wantDeltas[i]) > epsilon {
			t.Errorf("entry %d hue delta = %v, want %v", i, d, wantDeltas[i])
		}
	}

	tri, err := g.Triadic(base)
	if err != nil {
		t.Fatalf("Triadic() error = %v", err)
	}
	want := []string{"#FF0000", "#00FF00", "#0000FF"}
	for i, e := range tri.Entries {
		if e.Colour.Hex() != want[i] {
			t.Errorf("Triadic entry %d = %s, want %s", i, e.Colour.Hex(), want[i])
		}
	}
}

func greyRamp() []colour.Colour {
	var out []colour.Colour
	for _, v := range []uint8{130, 0, 20, 200, 45, 255, 70, 100, 160, 230} {
		out = append(out, colour.FromRGB(v, v, v))
	}
	return out
}

func minPairwise(cs []colour.Colour) float64 {
	best := math.Inf(1)
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			best = math.Min(best, colour.Distance(cs[i], cs[j]))
		}
	}
	return best
}

func TestSelectDistinctIsMaximal(t *testing.T) {
	candidates := greyRamp()
	picked, err := SelectDistinct(candidates, 3)
	if err != nil {
		t.Fatalf("SelectDistinct() error = %v", err)
	}
	if len(picked) != 3 {
		t.Fatalf("SelectDistinct() returned %d colours, want 3", len(picked))
	}
	if picked[0].Hex() != "#000000" {
		t.Errorf("first pick = %s, want the darkest candidate", picked[0].Hex())
	}

	got := minPairwise(picked)
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			for k := j + 1; k < len(candidates); k++ {
				alt := minPairwise([]colour.Colour{candidates[i], candidates[j], candidates[k]})
				if alt > got+epsilon {
					t.Fatalf("subset {%s %s %s} has min distance %v > selected %v",
						candidates[i].Hex(), candidates[j].Hex(), candidates[k].Hex(), alt, got)
				}
			}
		}
	}
}

func TestSelectDistinctEdgeCases(t *testing.T) {
	red := colour.MustParseHex("#FF0000")
	blue := colour.MustParseHex("#0000FF")

	if _, err := SelectDistinct([]colour.Colour{red}, 0); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("k=0 error = %v, want ErrInvalidCount", err)
	}

	got, err := SelectDistinct(nil, 3)
	if err != nil || len(got) != 0 {
		t.Errorf("empty candidates = %v, %v", got, err)
	}

	got, _ = SelectDistinct([]colour.Colour{red, red, blue, red}, 5)
	if len(got) != 2 {
		t.Errorf("duplicates should be considered once, got %d colours", len(got))
	}
}

func TestSelectDistinctIsDeterministic(t *testing.T) {
	first, _ := SelectDistinct(greyRamp(), 4)
	for i := 0; i < 5; i++ {
		again, _ := SelectDistinct(greyRamp(), 4)
		for j := range first {
			if !again[j].Equal(first[j]) {
				t.Fatalf("run %d differs at %d: %s vs %s", i, j, again[j].Hex(), first[j].Hex())
			}
		}
	}
}

func TestDistinctFromCatalog(t *testing.T) {
	g := NewGenerator(testCatalog())

	p, err := g.DistinctFromCatalog(3)
	if err != nil {
		t.Fatalf("DistinctFromCatalog() error = %v", err)
	}
	if p.Len() != 3 || p.Theme != Distinct {
		t.Fatalf("DistinctFromCatalog() = %d entries (%v)", p.Len(), p.Theme)
	}
	if p.Entries[0].ID() != "minecraft:black_wool" {
		t.Errorf("first pick = %s, want black_wool", p.Entries[0].ID())
	}
	for _, e := range p.Entries {
		if e.Element == nil {
			t.Errorf("%s is not a catalog block", e.Name)
		}
	}

	g.Filter = Filter{Exclude: []string{"wool"}}
	p, err = g.DistinctFromCatalog(3)
	if err != nil {
		t.Fatalf("DistinctFromCatalog() with filter error = %v", err)
	}
	for _, e := range p.Entries {
		if Categorise(e.ID()) == MaterialFabric {
			t.Errorf("filtered palette contains %s", e.ID())
		}
	}

	if _, err := NewGenerator(nil).DistinctFromCatalog(3); !errors.Is(err, ErrNoMatchingElements) {
		t.Errorf("empty catalog error = %v, want ErrNoMatchingElements", err)
	}
}

func TestDistinctFreeColours(t *testing.T) {
	p, err := NewGenerator(nil).Distinct(greyRamp(), 3)
	if err != nil {
		t.Fatalf("Distinct() error = %v", err)
	}
	if p.Len() != 3 || p.Entries[0].Role != Primary || p.Entries[2].Role != Accent {
		t.Errorf("Distinct() = %+v", p.Entries)
	}
}

func greyCatalog() *catalog.Static {
	return catalog.New(
		catalog.Element{ID: "minecraft:black_wool", Colour: hex("#141519")},
		catalog.Element{ID: "minecraft:white_wool", Colour: hex("#E9ECEC")},
		catalog.Element{ID: "minecraft:stone", Colour: hex("#7D7D7D")},
		catalog.Element{ID: "minecraft:cobblestone", Colour: hex("#7A7A7A")},
		catalog.Element{ID: "minecraft:water"},
	)
}

func TestBlockGradient(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "nearest block",
			wantIDs: []string{"minecraft:black_wool", "minecraft:stone", "minecraft:white_wool"},
		},
		{
			name:    "filtered",
			filter:  Filter{Include: []string{"cobblestone", "wool"}},
			wantIDs: []string{"minecraft:black_wool", "minecraft:cobblestone", "minecraft:white_wool"},
		},
		{
			name:    "no allowed block keeps raw colour",
			filter:  Filter{Include: []string{"diamond"}},
			wantIDs: []string{"minecraft:black_wool", "#7F8183", "minecraft:white_wool"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Generator{Catalog: greyCatalog(), Filter: tt.filter}
			p, err := g.BlockGradient("black_wool", "minecraft:white_wool", 3, gradient.LinearRGB)
			if err != nil {
				t.Fatalf("BlockGradient() error = %v", err)
			}
			ids := entryIDs(p)
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("BlockGradient() = %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("BlockGradient() = %v, want %v", ids, tt.wantIDs)
					break
				}
			}
			if p.Entries[0].Role != Primary || p.Entries[len(p.Entries)-1].Role != Accent {
				t.Errorf("endpoint roles = %v, %v", p.Entries[0].Role, p.Entries[len(p.Entries)-1].Role)
			}
			if p.Name != "Black Wool to White Wool Gradient" {
				t.Errorf("Name = %q", p.Name)
			}
		})
	}
}

func TestBlockGradientCollapsesRepeats(t *testing.T) {
	g := NewGenerator(greyCatalog())

	p, err := g.BlockGradient("black_wool", "white_wool", 12, gradient.LinearOklab)
	if err != nil {
		t.Fatalf("BlockGradient() error = %v", err)
	}
	seen := map[string]bool{}
	for _, e := range p.Entries {
		if seen[e.Colour.Hex()] {
			t.Errorf("duplicate colour %s", e.Colour.Hex())
		}
		seen[e.Colour.Hex()] = true
	}
	if p.Len() > 4 {
		t.Errorf("BlockGradient() = %v, want at most the 4 coloured blocks", entryIDs(p))
	}
	if last := p.Entries[p.Len()-1]; last.ID() != "minecraft:white_wool" {
		t.Errorf("last entry = %s, want white_wool", last.ID())
	}
}

func TestBlockGradientErrors(t *testing.T) {
	g := NewGenerator(greyCatalog())

	tests := []struct {
		name    string
		start   string
		end     string
		steps   int
		wantErr error
	}{
		{name: "unknown start", start: "gold_block", end: "stone", steps: 3, wantErr: ErrUnknownElement},
		{name: "unknown end", start: "stone", end: "gold_block", steps: 3, wantErr: ErrUnknownElement},
		{name: "uncoloured", start: "water", end: "stone", steps: 3, wantErr: ErrUncolouredElement},
		{name: "too few steps", start: "stone", end: "white_wool", steps: 1, wantErr: ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.BlockGradient(tt.start, tt.end, tt.steps, gradient.LinearRGB)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("BlockGradient() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	g := NewGenerator(greyCatalog())
	free := Palette{
		Name: "greys",
		Entries: []Entry{
			colourEntry("dark", colour.MustParseHex("#101010"), Primary),
			colourEntry("mid", colour.MustParseHex("#808080"), Secondary),
			colourEntry("mid2", colour.MustParseHex("#7E7E7E"), Secondary),
			colourEntry("light", colour.MustParseHex("#F0F0F0"), Accent),
		},
	}

	got := g.Snap(free)
	want := []string{"minecraft:black_wool", "minecraft:stone", "minecraft:white_wool"}
	ids := entryIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("Snap() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Snap() = %v, want %v", ids, want)
			break
		}
	}
	if got.Entries[2].Role != Accent || got.Name != "greys" {
		t.Errorf("Snap() lost role or name: %+v", got)
	}
	if free.Entries[0].Element != nil {
		t.Error("Snap() modified its input")
	}
}
