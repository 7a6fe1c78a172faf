package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/image"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		textures textureFlags
		nearest  bool
	)

	cmd := &cobra.Command{
		Use:   "extract <texture|dir|pack>...",
		Short: "Measure the representative colour of block textures",
		Long: `Measure the representative colour of block textures.

Each argument may be an image file, a directory of textures or a zip/tar
resource pack. Animated texture strips are cropped to their first frame.

Supported image formats: PNG, JPEG, GIF, WebP

Examples:
  # Average colour of one texture
  blockhue extract stone.png

  # Dominant k-means colour of every texture in a pack
  blockhue extract --extraction clustering --k 4 pack.zip

  # Edge-weighted colours for a texture folder, with the closest known block
  blockhue extract -m edge-weighted -r textures/block`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args, textures, nearest)
		},
	}

	textures.register(cmd)
	cmd.Flags().BoolVar(&nearest, "nearest", true, "show the closest catalog block for each colour")
	cmd.Flags().Bool("preview", true, "show colour swatches when writing to a terminal")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string, textures textureFlags, nearest bool) error {
	var cat catalog.Catalog
	if nearest {
		c, err := a.catalog()
		if err != nil {
			return err
		}
		cat = c
	}

	preview := a.cfg.Preview && isTerminal(cmd.OutOrStdout())
	headers := []string{"Texture", "Block", "Colour"}
	if nearest {
		headers = append(headers, "Nearest", "Distance")
	}
	if preview {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers)

	count := 0
	err := a.walkTextures(args, textures, func(t texture) error {
		opts, err := a.extractOptions(t)
		if err != nil {
			return err
		}
		c, err := extract.Colour(t.Raster, opts)
		if err != nil {
			a.logger.Warn("no colour extracted", "path", t.Path, "error", err)
			return nil
		}
		count++

		row := []string{t.Path, image.TextureID(t.Path), c.Hex()}
		if nearest {
			row = append(row, nearestColumns(cat, c)...)
		}
		if preview {
			row = append([]string{swatch(c)}, row...)
		}
		table.AddRow(row)
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Debug("extracted texture colours", "count", count, "method", a.cfg.Extraction)
	if count == 0 {
		return fmt.Errorf("no colours extracted: %w", extract.ErrEmptyInput)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return err
}

func nearestColumns(cat catalog.Catalog, c colour.Colour) []string {
	e, ok := catalog.Nearest(cat, c)
	if !ok {
		return []string{"-", "-"}
	}
	return []string{e.ID, fmt.Sprintf("%.4f", colour.Distance(c, *e.Colour))}
}
