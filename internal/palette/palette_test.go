package palette

import (
	"testing"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
)

func hex(s string) *colour.Colour {
	c := colour.MustParseHex(s)
	return &c
}

// testCatalog holds a handful of blocks spanning the forest, medieval and
// desert tables, plus some wool for colour searches.
func testCatalog() *catalog.Static {
	return catalog.New(
		catalog.Element{ID: "minecraft:oak_log", Colour: hex("#8B7355")},
		catalog.Element{ID: "minecraft:grass_block", Colour: hex("#7CFC00")},
		catalog.Element{ID: "minecraft:cobblestone", Colour: hex("#7A7A7A")},
		catalog.Element{ID: "minecraft:stone", Colour: hex("#7D7D7D")},
		catalog.Element{ID: "minecraft:sand", Colour: hex("#DBCFA3")},
		catalog.Element{ID: "minecraft:sandstone", Colour: hex("#D8CB9B")},
		catalog.Element{ID: "minecraft:white_wool", Colour: hex("#E9ECEC")},
		catalog.Element{ID: "minecraft:black_wool", Colour: hex("#141519")},
		catalog.Element{ID: "minecraft:red_wool", Colour: hex("#A12722")},
		catalog.Element{ID: "minecraft:blue_wool", Colour: hex("#35399D")},
		catalog.Element{ID: "minecraft:glass", Colour: hex("#C0E0E4")},
		catalog.Element{ID: "minecraft:water"},
	)
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{Primary, "Primary"},
		{Secondary, "Secondary"},
		{Accent, "Accent"},
		{Role(9), "Role(9)"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", int(tt.role), got, tt.want)
		}
	}
}

func TestRoleByThirds(t *testing.T) {
	tests := []struct {
		n    int
		want []Role
	}{
		{1, []Role{Primary}},
		{2, []Role{Primary, Secondary}},
		{3, []Role{Primary, Secondary, Accent}},
		{5, []Role{Primary, Primary, Secondary, Accent, Accent}},
		{6, []Role{Primary, Primary, Secondary, Secondary, Accent, Accent}},
	}

	for _, tt := range tests {
		for i, want := range tt.want {
			if got := roleByThirds(i, tt.n); got != want {
				t.Errorf("roleByThirds(%d, %d) = %v, want %v", i, tt.n, got, want)
			}
		}
	}
}

func TestBuilderDropsDuplicateColours(t *testing.T) {
	b := newBuilder(3)
	if !b.add(colourEntry("a", colour.MustParseHex("#112233"), Primary)) {
		t.Fatal("first add should succeed")
	}
	if b.add(colourEntry("b", colour.MustParseHex("#112233"), Accent)) {
		t.Error("duplicate colour should be dropped")
	}
	b.add(colourEntry("c", colour.MustParseHex("#445566"), Accent))

	if len(b.entries) != 2 || b.entries[0].Name != "a" || b.entries[1].Name != "c" {
		t.Errorf("entries = %+v", b.entries)
	}
}

func TestPaletteSorting(t *testing.T) {
	p := Palette{Entries: []Entry{
		colourEntry("blue", colour.MustParseHex("#0000FF"), Primary),
		colourEntry("white", colour.MustParseHex("#FFFFFF"), Primary),
		colourEntry("red", colour.MustParseHex("#FF0000"), Primary),
		colourEntry("green", colour.MustParseHex("#00FF00"), Primary),
	}}

	names := func(p Palette) []string {
		out := make([]string, p.Len())
		for i, e := range p.Entries {
			out[i] = e.Name
		}
		return out
	}

	byHue := names(p.SortedByHue())
	// white and red both have hue 0; the stable sort keeps white first.
	wantHue := []string{"white", "red", "green", "blue"}
	for i := range wantHue {
		if byHue[i] != wantHue[i] {
			t.Fatalf("SortedByHue() = %v, want %v", byHue, wantHue)
		}
	}

	byLight := names(p.SortedByLightness())
	if byLight[len(byLight)-1] != "white" {
		t.Errorf("SortedByLightness() = %v, want white last", byLight)
	}

	if p.Entries[0].Name != "blue" {
		t.Error("sorting must not modify the original palette")
	}
}

func TestEntryID(t *testing.T) {
	e, _ := testCatalog().Lookup("oak_log")
	entry := elementEntry(e, Primary)
	if entry.ID() != "minecraft:oak_log" {
		t.Errorf("ID() = %q", entry.ID())
	}
	if entry.Name != "Oak Log" {
		t.Errorf("Name = %q, want Oak Log", entry.Name)
	}
	if free := colourEntry("x", colour.MustParseHex("#000000"), Accent); free.ID() != "" {
		t.Errorf("free colour ID() = %q, want empty", free.ID())
	}
}

func TestUsageNotes(t *testing.T) {
	tests := []struct {
		id   string
		role Role
		want string
	}{
		{"minecraft:stone_bricks", Primary, "Excellent for foundations, walls, and main structures"},
		{"minecraft:oak_planks", Primary, "Great for frames, floors, and warm architectural elements"},
		{"minecraft:white_concrete", Primary, "Perfect for modern builds and large surfaces"},
		{"minecraft:red_wool", Primary, "Versatile block suitable for various building applications"},
		{"minecraft:cobblestone", Secondary, "Use for detailing, trim, and structural accents"},
		{"minecraft:spruce_log", Secondary, "Ideal for stairs, slabs, and secondary features"},
		{"minecraft:glass", Secondary, "Good for supporting elements and medium-scale features"},
		{"minecraft:gold_block", Accent, "Use sparingly for highlights, borders, and eye-catching details"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := UsageNotes(tt.id, tt.role); got != tt.want {
				t.Errorf("UsageNotes(%q, %v) = %q, want %q", tt.id, tt.role, got, tt.want)
			}
		})
	}
}

func TestCategorise(t *testing.T) {
	tests := map[string]Material{
		"minecraft:stone_bricks": MaterialStone,
		"minecraft:dark_oak_log": MaterialWood,
		"minecraft:terracotta":   MaterialConcrete,
		"minecraft:lime_carpet":  MaterialFabric,
		"minecraft:tinted_glass": MaterialGlass,
		"minecraft:copper_block": MaterialMetal,
		"minecraft:sponge":       MaterialOther,
	}

	for id, want := range tests {
		if got := Categorise(id); got != want {
			t.Errorf("Categorise(%q) = %q, want %q", id, got, want)
		}
	}
}
