package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB or #RGB colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// ParseHex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB" (case-insensitive).
func ParseHex(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("%w: %q (expected 6 hex digits)", ErrInvalidHex, s)
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		rgb[i] = hi<<4 | lo
	}

	return FromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// MustParseHex is like ParseHex but panics on error. It is intended for
// static tables.
func MustParseHex(s string) Colour {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
