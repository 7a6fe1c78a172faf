package colour

import "math"

// Distance returns the Euclidean distance between two colours in Oklab space.
// It is the perceptual metric used for every similarity decision in blockhue.
func Distance(a, b Colour) float64 {
	dl := a.oklab.L - b.oklab.L
	da := a.oklab.A - b.oklab.A
	db := a.oklab.B - b.oklab.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(wrapHue(h1) - wrapHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
func Luminance(c Colour) float64 {
	lin := rgbToLinear(c.rgb)
	return 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2]
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colours,
// between 1 and 21.
func ContrastRatio(c1, c2 Colour) float64 {
	l1, l2 := Luminance(c1), Luminance(c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
