package colour

import "math"

// D65 reference white used for CIE Lab.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883

	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// srgbToLinear converts a single sRGB component [0,1] to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func rgbToLinear(rgb [3]uint8) [3]float64 {
	return [3]float64{
		srgbToLinear(float64(rgb[0]) / 255.0),
		srgbToLinear(float64(rgb[1]) / 255.0),
		srgbToLinear(float64(rgb[2]) / 255.0),
	}
}

func clampLinear(lin [3]float64) [3]float64 {
	return [3]float64{clamp01(lin[0]), clamp01(lin[1]), clamp01(lin[2])}
}

// linearToOklab converts linear sRGB to Oklab.
func linearToOklab(lin [3]float64) Lab {
	r, g, b := lin[0], lin[1], lin[2]

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	return Lab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// oklabToLinear converts Oklab to (possibly out of gamut) linear sRGB.
func oklabToLinear(ok Lab) [3]float64 {
	lp := ok.L + 0.3963377774*ok.A + 0.2158037573*ok.B
	mp := ok.L - 0.1055613458*ok.A - 0.0638541728*ok.B
	sp := ok.L - 0.0894841775*ok.A - 1.2914855480*ok.B

	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp

	return [3]float64{
		+4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// linearToLab converts linear sRGB to CIE Lab via XYZ (D65).
func linearToLab(lin [3]float64) Lab {
	r, g, b := lin[0], lin[1], lin[2]

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx, fy, fz := labF(x/whiteX), labF(y/whiteY), labF(z/whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labToLinear converts CIE Lab (D65) to (possibly out of gamut) linear sRGB.
func labToLinear(lab Lab) [3]float64 {
	fy := (lab.L + 16) / 116
	fx := fy + lab.A/500
	fz := fy - lab.B/200

	x := whiteX * labFInv(fx)
	y := whiteY * labFInv(fy)
	z := whiteZ * labFInv(fz)

	return [3]float64{
		3.2404542*x - 1.5371385*y - 0.4985314*z,
		-0.9692660*x + 1.8760108*y + 0.0415560*z,
		0.0556434*x - 0.2040259*y + 1.0572252*z,
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// rgbToHSL converts [0,1] sRGB channels to HSL.
// Achromatic colours report hue 0.
func rgbToHSL(r, g, b float64) HSL {
	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return HSL{H: wrapHue(h * 60), S: clamp01(s), L: l}
}

// hslToRGB converts HSL to [0,1] sRGB channels.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return hueToRGB(p, q, h+120), hueToRGB(p, q, h), hueToRGB(p, q, h-120)
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = wrapHue(t)

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}
