package colour

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	colours := []Colour{
		MustParseHex("#FF0000"),
		MustParseHex("#00FF00"),
		MustParseHex("#0000FF"),
		MustParseHex("#8B7355"),
		MustParseHex("#7CFC00"),
		MustParseHex("#808080"),
		FromHSL(350, 1, 0.5),
	}

	for _, a := range colours {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%s, %s) = %v, want 0", a, a, d)
		}
		for _, b := range colours {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%s, %s) = %v but Distance(%s, %s) = %v", a, b, Distance(a, b), b, a, Distance(b, a))
			}
		}
	}
}

func TestDistanceBlackWhite(t *testing.T) {
	d := Distance(FromRGB(0, 0, 0), FromRGB(255, 255, 255))
	if math.Abs(d-1) > 1e-4 {
		t.Errorf("Distance(black, white) = %v, want ~1", d)
	}
}

func TestDistanceIsPerceptual(t *testing.T) {
	// Two greens differing only in the green channel look closer than a
	// blue pair with the same RGB delta.
	greens := Distance(FromRGB(0, 200, 0), FromRGB(0, 230, 0))
	blues := Distance(FromRGB(0, 0, 200), FromRGB(0, 0, 230))
	if greens == blues {
		t.Errorf("Oklab distance should differ for equal RGB deltas, got %v for both", greens)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{90, 270, 180},
		{370, 10, 0},
		{45, 45, 0},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > epsilon {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	black := FromRGB(0, 0, 0)
	white := FromRGB(255, 255, 255)

	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-6 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, black); math.Abs(got-21) > 1e-6 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); math.Abs(got-1) > 1e-9 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
}

func TestSortByHue(t *testing.T) {
	in := []Colour{
		MustParseHex("#0000FF"),
		MustParseHex("#FF0000"),
		MustParseHex("#00FF00"),
	}

	got := SortByHue(in)
	want := []string{"#FF0000", "#00FF00", "#0000FF"}
	for i := range want {
		if got[i].Hex() != want[i] {
			t.Errorf("SortByHue()[%d] = %s, want %s", i, got[i].Hex(), want[i])
		}
	}

	if in[0].Hex() != "#0000FF" {
		t.Error("SortByHue modified its input")
	}
}

func TestSortByLightness(t *testing.T) {
	in := []Colour{
		MustParseHex("#FFFFFF"),
		MustParseHex("#000000"),
		MustParseHex("#808080"),
	}

	got := SortByLightness(in)
	want := []string{"#000000", "#808080", "#FFFFFF"}
	for i := range want {
		if got[i].Hex() != want[i] {
			t.Errorf("SortByLightness()[%d] = %s, want %s", i, got[i].Hex(), want[i])
		}
	}
}
