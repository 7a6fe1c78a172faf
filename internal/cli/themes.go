package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/gradient"
	"github.com/jmylchreest/blockhue/internal/palette"
)

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes, block sets, filters, methods and export formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gradients := make([]string, 0, len(gradient.ValidMethods()))
			for _, m := range gradient.ValidMethods() {
				gradients = append(gradients, m.String())
			}
			extractions := make([]string, 0, len(extract.ValidMethods()))
			for _, m := range extract.ValidMethods() {
				extractions = append(extractions, m.String())
			}

			table := NewTable([]string{"Kind", "Names", "Used by"})
			table.SetColumnMaxWidth(1, 48)
			table.AddRow([]string{"Themed gradients", strings.Join(palette.ThemedNames(), ", "), "palette themed"})
			table.AddRow([]string{"Biomes", strings.Join(palette.NaturalThemes(), ", "), "palette natural"})
			table.AddRow([]string{"Building styles", strings.Join(palette.ArchitecturalStyles(), ", "), "palette architectural"})
			table.AddRow([]string{"Block filters", strings.Join(palette.FilterNames(), ", "), "--filter"})
			table.AddRow([]string{"Gradient methods", strings.Join(gradients, ", "), "--method"})
			table.AddRow([]string{"Extraction methods", strings.Join(extractions, ", "), "--extraction"})
			table.AddRow([]string{"Export formats", strings.Join(a.registry().List(), ", "), "--format"})

			_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}
