package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/compression"
	"github.com/jmylchreest/blockhue/internal/config"
	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/image"
	"github.com/jmylchreest/blockhue/internal/seed"
)

// texture is one decoded texture. Path names archive entries as
// "<archive>!<entry>".
type texture struct {
	Path   string
	Raster extract.Raster
}

// textureFlags are shared by the commands that read textures.
type textureFlags struct {
	recursive  bool
	firstFrame bool
}

func (f *textureFlags) register(cmd *cobra.Command) {
	def := config.Default()
	flags := cmd.Flags()
	flags.BoolVarP(&f.recursive, "recursive", "r", false, "scan directories recursively")
	flags.BoolVar(&f.firstFrame, "first-frame", true, "use only the first frame of animated texture strips")
	flags.StringP("extraction", "m", def.Extraction, "extraction method (average, most-frequent, clustering, edge-weighted)")
	flags.Int("bins", def.Bins, "histogram bins per channel for most-frequent extraction")
	flags.Int("k", def.K, "cluster count for clustering extraction")
	flags.String("seed-mode", def.SeedMode, "clustering seed mode (content, filepath, manual, random)")
	flags.Int64("seed", def.Seed, "clustering seed for the manual seed mode")
}

// walkTextures decodes every texture named by paths. Each path may be an
// image file, a directory of images or a zip/tar resource pack. Files that
// fail to decode inside directories and archives are logged and skipped;
// a file named directly must decode.
func (a *app) walkTextures(paths []string, f textureFlags, fn func(texture) error) error {
	loader := image.NewLoader(a.logger)
	loader.FirstFrame = f.firstFrame

	for _, path := range paths {
		path = config.ExpandPath(path)

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		switch {
		case info.IsDir():
			files, err := image.ScanDirectory(path, f.recursive)
			if err != nil {
				return err
			}
			a.logger.Debug("scanned directory", "path", path, "textures", len(files))
			for _, file := range files {
				r, err := loader.LoadRaster(file)
				if err != nil {
					a.logger.Warn("skipping texture", "path", file, "error", err)
					continue
				}
				if err := fn(texture{Path: file, Raster: r}); err != nil {
					return err
				}
			}

		case compression.IsArchive(path):
			err := compression.Walk(path, image.IsImageFile, func(name string, rd io.Reader) error {
				entry := path + "!" + name
				r, err := loader.DecodeRaster(rd, entry)
				if err != nil {
					a.logger.Warn("skipping texture", "path", entry, "error", err)
					return nil
				}
				return fn(texture{Path: entry, Raster: r})
			}, compression.DefaultMaxBytes)
			if err != nil {
				return err
			}

		default:
			r, err := loader.LoadRaster(path)
			if err != nil {
				return err
			}
			if err := fn(texture{Path: path, Raster: r}); err != nil {
				return err
			}
		}
	}

	return nil
}

// extractOptions returns the configured extraction options with the seed
// derived for t.
func (a *app) extractOptions(t texture) (extract.Options, error) {
	opts, err := a.cfg.ExtractOptions()
	if err != nil {
		return opts, err
	}
	if opts.Method != extract.Clustering {
		return opts, nil
	}

	sc, err := a.cfg.SeedConfig()
	if err != nil {
		return opts, err
	}
	opts.Seed, err = seed.Calculate(t.Raster, t.Path, sc)
	if err != nil {
		return opts, fmt.Errorf("failed to derive seed for %s: %w", t.Path, err)
	}
	a.logger.Trace("derived clustering seed", "path", t.Path, "mode", sc.Mode, "seed", opts.Seed)
	return opts, nil
}
