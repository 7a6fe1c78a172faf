package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/image"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, convert and build block catalogs",
		Long: `Inspect, convert and build block catalogs.

A catalog is a list of block IDs with their measured colours. The built-in
catalog is used unless --catalog names a snapshot file. Snapshots are JSON,
YAML or TOML, chosen by extension, and may be compressed with .gz, .xz or
.bz2.`,
	}

	cmd.AddCommand(
		newCatalogStatsCmd(a),
		newCatalogMissingCmd(a),
		newCatalogSaveCmd(a),
		newCatalogBuildCmd(a),
	)
	return cmd
}

func newCatalogStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many blocks have a colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			s := catalog.ComputeStats(cat)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Blocks:   %d\nColoured: %d\nCoverage: %.1f%%\n", s.Total, s.Coloured, s.Coverage)
			return err
		},
	}
}

func newCatalogMissingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List blocks without a measured colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			table := NewTable([]string{"Block", "Name"})
			missing := 0
			for _, e := range cat.Elements() {
				if e.HasColour() {
					continue
				}
				table.AddRow([]string{e.ID, e.DisplayName()})
				missing++
			}

			out := cmd.OutOrStdout()
			if missing == 0 {
				_, err := fmt.Fprintln(out, "Every block has a colour")
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n%d blocks without a colour\n", table.Render(), missing)
			return err
		},
	}
}

func newCatalogSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <path>",
		Short: "Write the current catalog to a snapshot file",
		Long: `Write the current catalog to a snapshot file.

The encoding and compression come from the file name, so this converts
between formats:

  blockhue catalog save blocks.toml
  blockhue --catalog blocks.toml catalog save blocks.json.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			if err := catalog.Save(args[0], cat, a.logger); err != nil {
				return err
			}
			a.logger.Info("saved catalog", "path", args[0], "blocks", cat.Len())
			return nil
		},
	}
}

func newCatalogBuildCmd(a *app) *cobra.Command {
	var (
		textures textureFlags
		output   string
		merge    bool
	)

	cmd := &cobra.Command{
		Use:   "build <texture|dir|pack>...",
		Short: "Measure block colours from textures and save a catalog",
		Long: `Measure block colours from textures and save a catalog.

Textures are grouped by block: face and state suffixes such as _top, _side
and _on are dropped and the namespace is taken from assets/<namespace>/ in
the path. The colours of every texture of a block are averaged.

With --merge (the default) the current catalog is kept and measured colours
replace or add to it.

Examples:
  # Build a catalog from a resource pack
  blockhue catalog build pack.zip -o blocks.yaml

  # Fill in a modded catalog from extracted textures, compressed
  blockhue --catalog mod.json catalog build -r assets/mod/textures/block -o mod.json.xz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCatalogBuild(args, textures, output, merge)
		},
	}

	textures.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file to write (.json, .yaml or .toml, optionally compressed)")
	cmd.Flags().BoolVar(&merge, "merge", true, "keep the blocks of the current catalog")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) runCatalogBuild(args []string, textures textureFlags, output string, merge bool) error {
	if _, ok := catalog.EncodingFor(output); !ok {
		return fmt.Errorf("cannot determine catalog encoding from %q (expected .json, .yaml, .yml or .toml)", output)
	}

	groups := make(map[string][]texture)
	count := 0
	err := a.walkTextures(args, textures, func(t texture) error {
		id := catalog.NormaliseID(image.TextureID(t.Path))
		groups[id] = append(groups[id], t)
		count++
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.Debug("grouped textures", "textures", count, "blocks", len(groups))

	var base []catalog.Element
	if merge {
		cat, err := a.catalog()
		if err != nil {
			return err
		}
		base = cat.Elements()
	}
	names := make(map[string]string, len(base))
	for _, e := range base {
		names[e.ID] = e.Name
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	measured := make([]catalog.Element, 0, len(ids))
	for _, id := range ids {
		c, err := a.measure(groups[id])
		if errors.Is(err, extract.ErrEmptyInput) {
			a.logger.Warn("no visible pixels, leaving block uncoloured", "block", id)
			continue
		}
		if err != nil {
			return err
		}
		measured = append(measured, catalog.Element{ID: id, Name: names[id], Colour: &c})
	}

	// New keeps the first element per ID, so measured colours win.
	built := catalog.New(append(measured, base...)...)
	if err := catalog.Save(output, built, a.logger); err != nil {
		return err
	}

	s := catalog.ComputeStats(built)
	a.logger.Info("built catalog", "path", output, "textures", count, "measured", len(measured), "blocks", s.Total, "coverage", fmt.Sprintf("%.1f%%", s.Coverage))
	return nil
}

// measure extracts one colour for a block from all of its textures. The
// seed for clustering comes from the first texture.
func (a *app) measure(textures []texture) (colour.Colour, error) {
	opts, err := a.extractOptions(textures[0])
	if err != nil {
		return colour.Colour{}, err
	}
	rasters := make([]extract.Raster, len(textures))
	for i, t := range textures {
		rasters[i] = t.Raster
	}
	return extract.Variants(rasters, opts)
}
