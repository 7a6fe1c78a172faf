package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/config"
	"github.com/jmylchreest/blockhue/internal/gradient"
)

// registerGradientFlags adds the step count and interpolation flags read
// through the configuration.
func registerGradientFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().IntP("steps", "n", def.Steps, "number of colours in the gradient (at least 2)")
	cmd.Flags().StringP("method", "m", def.Method, "interpolation method (rgb, hsl, oklab, bezier)")
}

// registerSnapFlags adds --snap and the block filter it honours.
func registerSnapFlags(cmd *cobra.Command, snap *bool) {
	flags := cmd.PersistentFlags()
	flags.BoolVar(snap, "snap", false, "replace free colours with the nearest catalog block")
	flags.String("filter", config.Default().Filter, "block filter (none, solid, decorative, structural)")
}

func newGradientCmd(a *app) *cobra.Command {
	var (
		out  outputFlags
		snap bool
	)

	cmd := &cobra.Command{
		Use:   "gradient <colour|block> <colour|block>...",
		Short: "Interpolate a gradient through two or more colours",
		Long: `Interpolate a gradient through two or more colours.

Stops are hex colours (#RRGGBB or #RGB) or catalog block IDs. With more
than two stops each segment gets an equal share of the steps and the
remainder goes to the last segment.

Examples:
  # Seven step Oklab gradient from red to blue
  blockhue gradient "#FF0000" "#0000FF"

  # HSL gradient through three stops, as CSS variables
  blockhue gradient -m hsl -n 9 -f css "#FF0000" "#00FF00" "#0000FF"

  # Stone to gold gradient snapped to solid blocks
  blockhue gradient --snap --filter solid stone gold_block`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			m, err := gradient.ParseMethod(a.cfg.Method)
			if err != nil {
				return err
			}

			stops := make([]colour.Colour, len(args))
			for i, arg := range args {
				if stops[i], err = a.resolveColour(arg); err != nil {
					return err
				}
			}

			p, err := g.Gradient(stops, a.cfg.Steps, m)
			if err != nil {
				return err
			}
			if snap {
				p = g.Snap(p)
			}
			return a.writePalette(cmd, &out, p)
		},
	}

	registerGradientFlags(cmd)
	out.register(cmd)
	registerSnapFlags(cmd, &snap)

	return cmd
}
