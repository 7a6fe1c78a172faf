// Package gradient interpolates sequences of colours between two or more
// stops in a choice of colour spaces.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/blockhue/internal/colour"
)

var (
	// ErrInvalidStepCount is returned when fewer than two steps are requested.
	ErrInvalidStepCount = errors.New("gradient needs at least 2 steps")

	// ErrInvalidStops is returned when fewer than two stops are given.
	ErrInvalidStops = errors.New("gradient needs at least 2 stops")
)

// Method selects the colour space and curve used between stops.
type Method int

const (
	// LinearRGB interpolates sRGB channels linearly.
	LinearRGB Method = iota
	// LinearHSL interpolates HSL with the hue taking the shortest arc.
	LinearHSL
	// LinearOklab interpolates in Oklab, giving perceptually even steps.
	LinearOklab
	// CubicBezier eases through sRGB along a cubic Bézier curve.
	CubicBezier
)

// String returns the method name used on the command line.
func (m Method) String() string {
	switch m {
	case LinearRGB:
		return "rgb"
	case LinearHSL:
		return "hsl"
	case LinearOklab:
		return "oklab"
	case CubicBezier:
		return "bezier"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ValidMethods returns every interpolation method.
func ValidMethods() []Method {
	return []Method{LinearRGB, LinearHSL, LinearOklab, CubicBezier}
}

// ParseMethod converts a method name to a Method. Names are case-insensitive
// and accept a "linear-" prefix, so "oklab" and "linear-oklab" are the same.
func ParseMethod(s string) (Method, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "linear-")
	switch name {
	case "rgb":
		return LinearRGB, nil
	case "hsl":
		return LinearHSL, nil
	case "oklab":
		return LinearOklab, nil
	case "bezier", "cubic-bezier":
		return CubicBezier, nil
	}
	return 0, fmt.Errorf("unknown gradient method: %s (valid: rgb, hsl, oklab, bezier)", s)
}

// Interpolate returns exactly steps colours running from stops[0] to the last
// stop. The first and last results are the stops themselves.
//
// With more than two stops the steps-1 intervals are shared equally between
// segments and the remainder goes to the final segment, so interior stops
// appear verbatim in the output. When there are fewer intervals than
// segments the stops are sampled instead.
func Interpolate(stops []colour.Colour, steps int, m Method) ([]colour.Colour, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStops, len(stops))
	}
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStepCount, steps)
	}

	lerp, err := interpolator(m)
	if err != nil {
		return nil, err
	}

	segments := len(stops) - 1
	intervals := steps - 1

	if intervals < segments {
		return sampleStops(stops, steps), nil
	}

	out := make([]colour.Colour, 0, steps)
	out = append(out, stops[0])

	per := intervals / segments
	for seg := 0; seg < segments; seg++ {
		n := per
		if seg == segments-1 {
			n += intervals % segments
		}
		from, to := stops[seg], stops[seg+1]
		for i := 1; i < n; i++ {
			out = append(out, lerp(from, to, float64(i)/float64(n)))
		}
		out = append(out, to)
	}

	return out, nil
}

// Between is Interpolate for a single pair of stops.
func Between(from, to colour.Colour, steps int, m Method) ([]colour.Colour, error) {
	return Interpolate([]colour.Colour{from, to}, steps, m)
}

func sampleStops(stops []colour.Colour, steps int) []colour.Colour {
	out := make([]colour.Colour, steps)
	last := float64(len(stops) - 1)
	for i := range out {
		idx := int(math.Round(float64(i) * last / float64(steps-1)))
		out[i] = stops[idx]
	}
	return out
}

type lerpFunc func(from, to colour.Colour, t float64) colour.Colour

func interpolator(m Method) (lerpFunc, error) {
	switch m {
	case LinearRGB:
		return lerpRGB, nil
	case LinearHSL:
		return lerpHSL, nil
	case LinearOklab:
		return lerpOklab, nil
	case CubicBezier:
		return bezierRGB, nil
	default:
		return nil, fmt.Errorf("unknown gradient method %d", int(m))
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func lerpRGB(from, to colour.Colour, t float64) colour.Colour {
	a, b := from.RGB(), to.RGB()
	return colour.FromRGB(
		channel(lerp(float64(a[0]), float64(b[0]), t)),
		channel(lerp(float64(a[1]), float64(b[1]), t)),
		channel(lerp(float64(a[2]), float64(b[2]), t)),
	)
}

func lerpHSL(from, to colour.Colour, t float64) colour.Colour {
	a, b := from.HSL(), to.HSL()

	// A grey has no meaningful hue, so it borrows the other end's.
	ha, hb := a.H, b.H
	switch {
	case a.S == 0 && b.S != 0:
		ha = hb
	case b.S == 0 && a.S != 0:
		hb = ha
	}

	return colour.FromHSL(lerpHue(ha, hb, t), lerp(a.S, b.S, t), lerp(a.L, b.L, t))
}

// lerpHue moves along the shorter arc of the hue circle. A difference of
// exactly 180 degrees goes forwards.
func lerpHue(from, to, t float64) float64 {
	diff := to - from
	switch {
	case diff > 180:
		diff -= 360
	case diff < -180:
		diff += 360
	}
	return from + diff*t
}

func lerpOklab(from, to colour.Colour, t float64) colour.Colour {
	a, b := from.Oklab(), to.Oklab()
	return colour.FromOklab(lerp(a.L, b.L, t), lerp(a.A, b.A, t), lerp(a.B, b.B, t))
}

// bezierRGB evaluates a cubic Bézier per sRGB channel with control points at
// 10% and 90% of the straight line between the ends.
func bezierRGB(from, to colour.Colour, t float64) colour.Colour {
	a, b := from.RGB(), to.RGB()
	var out [3]uint8
	for i := range out {
		p0, p3 := float64(a[i]), float64(b[i])
		p1 := lerp(p0, p3, 0.1)
		p2 := lerp(p0, p3, 0.9)
		u := 1 - t
		out[i] = channel(u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3)
	}
	return colour.FromRGB(out[0], out[1], out[2])
}
