package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/config"
	"github.com/jmylchreest/blockhue/internal/export"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage the text and CSS export templates",
		Long: `Manage the text and CSS export templates.

The text and css formats are rendered from Go templates. A file with the
same name in the template directory replaces the built-in one. Use
'templates dump' to copy the built-in templates there for editing.`,
	}
	cmd.PersistentFlags().String("templates", config.Default().Templates, "template override directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and whether each is overridden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := export.NewLoader(a.cfg.Templates, a.logger)
			names, err := loader.Embedded()
			if err != nil {
				return err
			}

			table := NewTable([]string{"Template", "Source"})
			for _, name := range names {
				_, custom, err := loader.Load(name)
				if err != nil {
					return err
				}
				source := "built-in"
				if custom {
					source = loader.CustomPath(name)
				}
				table.AddRow([]string{name, source})
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Copy the built-in templates to the template directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, err := export.NewLoader(a.cfg.Templates, a.logger).Dump(force)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
	dumpCmd.Flags().BoolVar(&force, "force", false, "overwrite existing templates")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}
