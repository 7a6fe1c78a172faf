package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/catalog"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		tolerance float64
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search <colour|block>",
		Short: "Find catalog blocks close to a colour",
		Long: `Find catalog blocks close to a colour.

Distances are Euclidean in Oklab, where 0.02 is barely visible and 0.1 is
a clearly different shade. Results are nearest first.

Examples:
  # Blocks within the default tolerance of a brick red
  blockhue search "#A0522D"

  # The five blocks closest to stone, however far
  blockhue search stone -t 1 -n 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.resolveColour(args[0])
			if err != nil {
				return err
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			matches := catalog.FindMatches(cat, target, tolerance, limit)
			a.logger.Debug("searched catalog", "target", target.Hex(), "tolerance", tolerance, "matches", len(matches))

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				_, err := fmt.Fprintf(out, "No blocks within %.3f of %s\n", tolerance, target.Hex())
				return err
			}

			preview := a.cfg.Preview && isTerminal(out)
			headers := []string{"Block", "Name", "Colour", "Distance"}
			if preview {
				headers = append([]string{""}, headers...)
			}
			table := NewTable(headers)
			for _, m := range matches {
				row := []string{m.Element.ID, m.Element.DisplayName(), m.Element.Colour.Hex(), fmt.Sprintf("%.4f", m.Distance)}
				if preview {
					row = append([]string{swatch(*m.Element.Colour)}, row...)
				}
				table.AddRow(row)
			}

			_, err = fmt.Fprint(out, table.Render())
			return err
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0.1, "maximum Oklab distance")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of results")
	cmd.Flags().Bool("preview", true, "show colour swatches when writing to a terminal")

	return cmd
}
