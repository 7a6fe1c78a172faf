package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var (
	black = FromRGB(0, 0, 0)
	white = FromRGB(255, 255, 255)
)

// Swatch returns a solid block of width spaces on a c background.
// A width of zero or less uses the default of 8.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchText returns text centred on a c background, in black or white,
// whichever contrasts more. Text longer than width is truncated.
func SwatchText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := white
	if ContrastRatio(c, black) > ContrastRatio(c, white) {
		fg = black
	}

	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	pad := width - len(runes)
	body := strings.Repeat(" ", pad/2) + string(runes) + strings.Repeat(" ", pad-pad/2)

	return background(c) + foreground(fg) + body + ansiReset
}

func background(c Colour) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.rgb[0], c.rgb[1], c.rgb[2], ansiSuffix)
}

func foreground(c Colour) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.rgb[0], c.rgb[1], c.rgb[2], ansiSuffix)
}
