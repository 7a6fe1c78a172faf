package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jmylchreest/blockhue/internal/palette"
)

// GPL writes a GIMP palette.
type GPL struct{}

// Name implements Exporter.
func (GPL) Name() string { return "gpl" }

// Extension implements Exporter.
func (GPL) Extension() string { return ".gpl" }

// Description implements Exporter.
func (GPL) Description() string { return "GIMP / Inkscape / Krita palette" }

// Export implements Exporter.
func (GPL) Export(w io.Writer, p palette.Palette) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "GIMP Palette")
	fmt.Fprintf(bw, "Name: %s\n", singleLine(p.Name))
	fmt.Fprintln(bw, "Columns: 0")
	fmt.Fprintln(bw, "#")

	for i, e := range p.Entries {
		rgb := e.Colour.RGB()
		fmt.Fprintf(bw, "%3d %3d %3d\t%s\n", rgb[0], rgb[1], rgb[2], singleLine(entryName(e, i)))
	}

	return bw.Flush()
}
