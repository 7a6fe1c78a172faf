package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/export"
	"github.com/jmylchreest/blockhue/internal/palette"
)

// outputFlags are shared by every command that writes a palette.
type outputFlags struct {
	output string
	sort   string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("format", "f", "", "export format (text, json, css, gpl, aco; default from config or the --output extension)")
	flags.StringVarP(&o.output, "output", "o", "", "output file, optionally .gz/.xz/.bz2 (default: stdout)")
	flags.StringVar(&o.sort, "sort", "none", "entry order (none, hue, lightness)")
	flags.Bool("preview", true, "show colour swatches when writing text to a terminal")
}

// writePalette exports p to the --output file, or to stdout. Text going to a
// terminal is rendered as a swatch table when previews are enabled.
func (a *app) writePalette(cmd *cobra.Command, o *outputFlags, p palette.Palette) error {
	p, err := sortPalette(p, o.sort)
	if err != nil {
		return err
	}

	reg := a.registry()
	e, err := a.exporterFor(cmd, reg, o.output)
	if err != nil {
		return err
	}

	if o.output != "" {
		if err := export.WriteFile(o.output, e, p); err != nil {
			return err
		}
		a.logger.Info("wrote palette", "path", o.output, "format", e.Name(), "colours", p.Len())
		return nil
	}

	out := cmd.OutOrStdout()
	if a.cfg.Preview && e.Name() == "text" && isTerminal(out) {
		return writePreview(out, p)
	}
	return e.Export(out, p)
}

// exporterFor picks the exporter: an explicit --format wins, then the output
// file extension, then the configured default.
func (a *app) exporterFor(cmd *cobra.Command, reg *export.Registry, output string) (export.Exporter, error) {
	if output != "" && !cmd.Flags().Changed("format") {
		e, err := reg.ForPath(output)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, export.ErrUnknownFormat) {
			return nil, err
		}
		a.logger.Debug("no exporter for output extension, using configured format", "path", output, "format", a.cfg.Format)
	}
	return reg.Lookup(a.cfg.Format)
}

func sortPalette(p palette.Palette, order string) (palette.Palette, error) {
	switch order {
	case "", "none":
		return p, nil
	case "hue":
		return p.SortedByHue(), nil
	case "lightness":
		return p.SortedByLightness(), nil
	default:
		return p, fmt.Errorf("invalid sort order: %s (valid: none, hue, lightness)", order)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders the preview block used in tables.
func swatch(c colour.Colour) string {
	return colour.Swatch(c, 4)
}

// writePreview prints p as a table with a swatch per entry.
func writePreview(w io.Writer, p palette.Palette) error {
	table := NewTable([]string{"Colour", "Name", "Block", "Role", "Usage"})
	table.SetColumnMaxWidth(4, 60)
	for _, e := range p.Entries {
		table.AddRow([]string{colour.SwatchText(e.Colour, e.Colour.Hex(), 9), e.Name, e.ID(), e.Role.String(), e.Usage})
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s", p.Name, p.Description, table.Render())
	return err
}
