package catalog

import (
	"math"
	"testing"

	"github.com/jmylchreest/blockhue/internal/colour"
)

func TestFindByColourRangeOrdering(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}
	target := colour.MustParseHex("#8B7355")

	got := FindByColourRange(c, target, 50, 5)
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("len = %d, want 1..5", len(got))
	}

	prev := -1.0
	for _, e := range got {
		if !e.HasColour() {
			t.Fatalf("%s has no colour", e.ID)
		}
		d := colour.Distance(target, *e.Colour)
		if d > 50 {
			t.Errorf("%s distance %v exceeds tolerance", e.ID, d)
		}
		if d < prev {
			t.Errorf("%s distance %v after %v", e.ID, d, prev)
		}
		prev = d
	}
}

func TestFindByColourRangeTolerance(t *testing.T) {
	c := testCatalog()

	t.Run("inclusive bound", func(t *testing.T) {
		got := FindByColourRange(c, colour.MustParseHex("#7D7D7D"), 0, 10)
		if len(got) != 1 || got[0].ID != "minecraft:stone" {
			t.Errorf("exact match at tolerance 0 = %v", got)
		}

		red := colour.MustParseHex("#FF0000")
		d := colour.Distance(red, colour.MustParseHex("#A12722"))
		got = FindByColourRange(c, red, d, 10)
		found := false
		for _, e := range got {
			if e.ID == "minecraft:red_wool" {
				found = true
			}
		}
		if !found {
			t.Errorf("element at exactly the tolerance was excluded: %v", got)
		}
	})

	t.Run("no match is empty", func(t *testing.T) {
		got := FindByColourRange(c, colour.MustParseHex("#0000FF"), 0.01, 10)
		if got == nil || len(got) != 0 {
			t.Errorf("FindByColourRange() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		got := FindByColourRange(c, colour.MustParseHex("#7D7D7D"), math.Inf(1), 0)
		if len(got) != 0 {
			t.Errorf("limit 0 returned %d elements", len(got))
		}
	})

	t.Run("uncoloured excluded", func(t *testing.T) {
		got := FindByColourRange(c, colour.MustParseHex("#7D7D7D"), math.Inf(1), 100)
		if len(got) != 4 {
			t.Errorf("got %d elements, want the 4 coloured ones", len(got))
		}
	})
}

func TestFindByColourRangeTiesByID(t *testing.T) {
	c := New(
		Element{ID: "minecraft:b", Colour: hex("#808080")},
		Element{ID: "minecraft:c", Colour: hex("#808080")},
		Element{ID: "minecraft:a", Colour: hex("#808080")},
	)

	got := FindByColourRange(c, colour.MustParseHex("#000000"), math.Inf(1), 3)
	want := []string{"minecraft:a", "minecraft:b", "minecraft:c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFindMatchesDistances(t *testing.T) {
	c := testCatalog()
	target := colour.MustParseHex("#7CFC00")

	got := FindMatches(c, target, math.Inf(1), 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Element.ID != "minecraft:grass_block" || got[0].Distance != 0 {
		t.Errorf("first match = %s at %v", got[0].Element.ID, got[0].Distance)
	}
}

func TestNearest(t *testing.T) {
	c := testCatalog()

	e, ok := Nearest(c, colour.MustParseHex("#8A7254"))
	if !ok || e.ID != "minecraft:oak_log" {
		t.Errorf("Nearest() = %s, %v; want oak_log", e.ID, ok)
	}

	if _, ok := Nearest(New(Element{ID: "air"}), colour.MustParseHex("#FFFFFF")); ok {
		t.Error("Nearest() on an uncoloured catalog should report false")
	}

	e, ok = NearestFiltered(c, colour.MustParseHex("#8A7254"), func(e Element) bool {
		return e.ID != "minecraft:oak_log"
	})
	if !ok || e.ID == "minecraft:oak_log" {
		t.Errorf("NearestFiltered() = %s, should skip oak_log", e.ID)
	}
}

func TestColoured(t *testing.T) {
	got := Coloured(testCatalog())
	if len(got) != 4 {
		t.Fatalf("Coloured() = %d elements, want 4", len(got))
	}
	for _, e := range got {
		if !e.HasColour() {
			t.Errorf("%s has no colour", e.ID)
		}
	}
}
