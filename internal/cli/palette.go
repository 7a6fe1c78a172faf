package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/gradient"
	"github.com/jmylchreest/blockhue/internal/palette"
)

// paletteFunc builds a palette from the positional arguments.
type paletteFunc func(g palette.Generator, args []string) (palette.Palette, error)

func newPaletteCmd(a *app) *cobra.Command {
	var (
		out  outputFlags
		snap bool
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate block palettes",
		Long: `Generate block palettes from themes, block sets and colour theory.

Colour arguments are hex colours (#RRGGBB or #RGB) or catalog block IDs.
Free colours can be replaced with the nearest catalog block using --snap,
limited to the blocks allowed by --filter.

Examples:
  # Sunset gradient as a GIMP palette
  blockhue palette themed sunset -o sunset.gpl

  # Desert biome blocks without falling blocks
  blockhue palette natural desert --filter solid

  # Complementary scheme for a block, snapped to real blocks
  blockhue palette complementary oak_planks --snap

  # Eight blocks as far apart in colour as possible
  blockhue palette distinct -n 8 --filter solid`,
	}

	out.register(cmd)
	registerSnapFlags(cmd, &snap)

	// run wraps a builder with snapping and output.
	run := func(build paletteFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			p, err := build(g, args)
			if err != nil {
				return err
			}
			if snap {
				p = g.Snap(p)
			}
			return a.writePalette(cmd, &out, p)
		}
	}

	// scheme adapts a single-colour colour-theory builder.
	scheme := func(fn func(palette.Generator, colour.Colour) (palette.Palette, error)) paletteFunc {
		return func(g palette.Generator, args []string) (palette.Palette, error) {
			base, err := a.resolveColour(args[0])
			if err != nil {
				return palette.Palette{}, err
			}
			return fn(g, base)
		}
	}

	themedCmd := &cobra.Command{
		Use:   "themed <name>",
		Short: "Gradient through a named theme's colours (see 'blockhue themes')",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(g palette.Generator, args []string) (palette.Palette, error) {
			m, err := gradient.ParseMethod(a.cfg.Method)
			if err != nil {
				return palette.Palette{}, err
			}
			return g.Themed(args[0], a.cfg.Steps, &m)
		}),
	}
	registerGradientFlags(themedCmd)

	naturalCmd := &cobra.Command{
		Use:   "natural <biome>",
		Short: "Blocks for a biome (forest, desert, ocean, mountain, nether, end)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(g palette.Generator, args []string) (palette.Palette, error) {
			return g.Natural(args[0])
		}),
	}

	architecturalCmd := &cobra.Command{
		Use:   "architectural <style>",
		Short: "Blocks for a building style (medieval, modern, rustic, industrial)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(g palette.Generator, args []string) (palette.Palette, error) {
			return g.Architectural(args[0])
		}),
	}

	var monoCount int
	monochromeCmd := &cobra.Command{
		Use:   "monochrome <colour|block>",
		Short: "Tones of one colour from dark to light",
		Args:  cobra.ExactArgs(1),
		RunE: run(scheme(func(g palette.Generator, base colour.Colour) (palette.Palette, error) {
			return g.Monochrome(base, monoCount)
		})),
	}
	monochromeCmd.Flags().IntVarP(&monoCount, "count", "n", 5, "number of tones")

	complementaryCmd := &cobra.Command{
		Use:   "complementary <colour|block>",
		Short: "A colour, its complement and two neutrals",
		Args:  cobra.ExactArgs(1),
		RunE:  run(scheme(palette.Generator.Complementary)),
	}

	analogousCmd := &cobra.Command{
		Use:   "analogous <colour|block>",
		Short: "A colour and its neighbours 30 and 60 degrees around the hue wheel",
		Args:  cobra.ExactArgs(1),
		RunE:  run(scheme(palette.Generator.Analogous)),
	}

	triadicCmd := &cobra.Command{
		Use:   "triadic <colour|block>",
		Short: "Three colours spaced 120 degrees apart",
		Args:  cobra.ExactArgs(1),
		RunE:  run(scheme(palette.Generator.Triadic)),
	}

	var distinctCount int
	distinctCmd := &cobra.Command{
		Use:   "distinct [colour|block]...",
		Short: "Colours as far apart as possible, from the arguments or the catalog",
		RunE: run(func(g palette.Generator, args []string) (palette.Palette, error) {
			if len(args) == 0 {
				return g.DistinctFromCatalog(distinctCount)
			}
			candidates := make([]colour.Colour, len(args))
			for i, arg := range args {
				c, err := a.resolveColour(arg)
				if err != nil {
					return palette.Palette{}, err
				}
				candidates[i] = c
			}
			return g.Distinct(candidates, distinctCount)
		}),
	}
	distinctCmd.Flags().IntVarP(&distinctCount, "count", "n", 8, "number of colours to pick")

	blockGradientCmd := &cobra.Command{
		Use:   "block-gradient <start-block> <end-block>",
		Short: "Gradient between two blocks, snapped to the nearest blocks",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(g palette.Generator, args []string) (palette.Palette, error) {
			m, err := gradient.ParseMethod(a.cfg.Method)
			if err != nil {
				return palette.Palette{}, err
			}
			return g.BlockGradient(args[0], args[1], a.cfg.Steps, m)
		}),
	}
	registerGradientFlags(blockGradientCmd)

	cmd.AddCommand(
		themedCmd,
		naturalCmd,
		architecturalCmd,
		monochromeCmd,
		complementaryCmd,
		analogousCmd,
		triadicCmd,
		distinctCmd,
		blockGradientCmd,
	)

	return cmd
}
