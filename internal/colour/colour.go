// Package colour provides the colour value type used throughout blockhue and
// the conversions between sRGB, HSL, Oklab and CIE Lab.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// HSL holds hue in degrees [0, 360), saturation and lightness in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Lab holds a three-component lightness/opponent colour. It is used for both
// Oklab and CIE Lab values.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Colour is an immutable colour value. All four representations are computed
// once on construction and always describe the same colour.
type Colour struct {
	rgb   [3]uint8
	hsl   HSL
	oklab Lab
	lab   Lab
}

// FromRGB creates a Colour from 8-bit sRGB channels.
func FromRGB(r, g, b uint8) Colour {
	rgb := [3]uint8{r, g, b}
	lin := rgbToLinear(rgb)
	return Colour{
		rgb:   rgb,
		hsl:   rgbToHSL(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0),
		oklab: linearToOklab(lin),
		lab:   linearToLab(lin),
	}
}

// FromHSL creates a Colour from hue (degrees, any value), saturation and
// lightness. Hue is wrapped into [0, 360); saturation and lightness are
// clamped to [0, 1].
func FromHSL(h, s, l float64) Colour {
	hsl := HSL{H: wrapHue(h), S: clamp01(s), L: clamp01(l)}
	if hsl.S == 0 {
		hsl.H = 0
	}
	r, g, b := hslToRGB(hsl.H, hsl.S, hsl.L)
	lin := [3]float64{srgbToLinear(r), srgbToLinear(g), srgbToLinear(b)}
	return Colour{
		rgb:   quantize(r, g, b),
		hsl:   hsl,
		oklab: linearToOklab(lin),
		lab:   linearToLab(lin),
	}
}

// FromOklab creates a Colour from Oklab coordinates. Values outside the sRGB
// gamut are clamped in linear light before the other representations are
// derived; the Oklab value itself is kept as given.
func FromOklab(l, a, b float64) Colour {
	ok := Lab{L: l, A: a, B: b}
	return fromLinear(clampLinear(oklabToLinear(ok)), func(c *Colour) { c.oklab = ok })
}

// FromLab creates a Colour from CIE Lab (D65) coordinates. Values outside the
// sRGB gamut are clamped in linear light; the Lab value itself is kept as given.
func FromLab(l, a, b float64) Colour {
	lab := Lab{L: l, A: a, B: b}
	return fromLinear(clampLinear(labToLinear(lab)), func(c *Colour) { c.lab = lab })
}

// fromLinear derives every representation from a linear-light triple, then
// lets keep overwrite the representation the caller supplied.
func fromLinear(lin [3]float64, keep func(*Colour)) Colour {
	r, g, b := linearToSRGB(lin[0]), linearToSRGB(lin[1]), linearToSRGB(lin[2])
	c := Colour{
		rgb:   quantize(r, g, b),
		hsl:   rgbToHSL(r, g, b),
		oklab: linearToOklab(lin),
		lab:   linearToLab(lin),
	}
	keep(&c)
	return c
}

// RGB returns the 8-bit sRGB channels.
func (c Colour) RGB() [3]uint8 {
	return c.rgb
}

// HSL returns the HSL representation.
func (c Colour) HSL() HSL {
	return c.hsl
}

// Oklab returns the Oklab representation.
func (c Colour) Oklab() Lab {
	return c.oklab
}

// Lab returns the CIE Lab (D65) representation.
func (c Colour) Lab() Lab {
	return c.lab
}

// Hex returns the canonical "#RRGGBB" form. It is the identity of a Colour.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.rgb[0], c.rgb[1], c.rgb[2])
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Hex()
}

// Equal reports whether two colours have the same hex identity.
func (c Colour) Equal(other Colour) bool {
	return c.rgb == other.rgb
}

// RGBA implements color.Color with full opacity.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.rgb[0], G: c.rgb[1], B: c.rgb[2], A: 255}.RGBA()
}

// FromColor converts any color.Color, ignoring alpha.
func FromColor(c color.Color) Colour {
	if cc, ok := c.(Colour); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// quantize rounds [0,1] sRGB channels to 8 bits.
func quantize(r, g, b float64) [3]uint8 {
	return [3]uint8{toByte(r), toByte(g), toByte(b)}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
