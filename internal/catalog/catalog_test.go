package catalog

import (
	"testing"

	"github.com/jmylchreest/blockhue/internal/colour"
)

func hex(s string) *colour.Colour {
	c := colour.MustParseHex(s)
	return &c
}

func testCatalog() *Static {
	return New(
		Element{ID: "minecraft:stone", Colour: hex("#7D7D7D")},
		Element{ID: "oak_log", Name: "Oak Log", Colour: hex("#8B7355")},
		Element{ID: "minecraft:grass_block", Colour: hex("#7CFC00")},
		Element{ID: "minecraft:red_wool", Colour: hex("#A12722")},
		Element{ID: "minecraft:air"},
		Element{ID: "minecraft:water"},
	)
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		id     string
		wantID string
		found  bool
	}{
		{"minecraft:oak_log", "minecraft:oak_log", true},
		{"oak_log", "minecraft:oak_log", true},
		{"  Minecraft:Stone ", "minecraft:stone", true},
		{"stone", "minecraft:stone", true},
		{"air", "minecraft:air", true},
		{"minecraft:diamond_block", "", false},
		{"other:stone", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := c.Lookup(tt.id)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.id, ok, tt.found)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("Lookup(%q).ID = %q, want %q", tt.id, got.ID, tt.wantID)
			}
		})
	}
}

func TestElementsSortedByID(t *testing.T) {
	els := testCatalog().Elements()
	if len(els) != 6 {
		t.Fatalf("len = %d, want 6", len(els))
	}
	for i := 1; i < len(els); i++ {
		if els[i-1].ID >= els[i].ID {
			t.Errorf("Elements() not sorted: %q before %q", els[i-1].ID, els[i].ID)
		}
	}
}

func TestElementsIsACopy(t *testing.T) {
	c := testCatalog()
	els := c.Elements()
	els[0].ID = "changed"
	if c.Elements()[0].ID == "changed" {
		t.Error("Elements() exposed internal storage")
	}
}

func TestNewKeepsFirstDuplicate(t *testing.T) {
	c := New(
		Element{ID: "stone", Colour: hex("#7D7D7D")},
		Element{ID: "minecraft:stone", Colour: hex("#000000")},
		Element{ID: ""},
	)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	e, _ := c.Lookup("stone")
	if e.Colour.Hex() != "#7D7D7D" {
		t.Errorf("duplicate replaced first element: %s", e.Colour.Hex())
	}
}

func TestNewCopiesColour(t *testing.T) {
	col := colour.MustParseHex("#112233")
	c := New(Element{ID: "stone", Colour: &col})
	col = colour.MustParseHex("#FFFFFF")

	e, _ := c.Lookup("stone")
	if e.Colour.Hex() != "#112233" {
		t.Errorf("catalog colour changed with caller's variable: %s", e.Colour.Hex())
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"minecraft:oak_log":             "Oak Log",
		"oak_log":                       "Oak Log",
		"minecraft:light_gray_concrete": "Light Gray Concrete",
		"mod:thing":                     "Thing",
		"":                              "",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}

	c := testCatalog()
	log, _ := c.Lookup("oak_log")
	if log.DisplayName() != "Oak Log" {
		t.Errorf("named element DisplayName() = %q", log.DisplayName())
	}
	grass, _ := c.Lookup("grass_block")
	if grass.DisplayName() != "Grass Block" {
		t.Errorf("derived DisplayName() = %q", grass.DisplayName())
	}
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(testCatalog())
	if s.Total != 6 || s.Coloured != 4 {
		t.Errorf("ComputeStats() = %+v, want 6 total, 4 coloured", s)
	}
	if s.Coverage < 66.66 || s.Coverage > 66.67 {
		t.Errorf("Coverage = %v, want ~66.67", s.Coverage)
	}

	if empty := ComputeStats(New()); empty.Coverage != 0 || empty.Total != 0 {
		t.Errorf("ComputeStats(empty) = %+v", empty)
	}
}

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if c.Len() < 100 {
		t.Errorf("Builtin() has %d blocks, want at least 100", c.Len())
	}
	for _, id := range []string{"oak_log", "grass_block", "cobblestone", "white_concrete", "end_stone"} {
		e, ok := c.Lookup(id)
		if !ok || !e.HasColour() {
			t.Errorf("Builtin() missing coloured %s", id)
		}
	}
	if water, ok := c.Lookup("water"); !ok || water.HasColour() {
		t.Error("Builtin() water should be present without a colour")
	}
}
