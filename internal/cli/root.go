// Package cli provides the command-line interface for blockhue.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/blockhue/internal/catalog"
	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/config"
	"github.com/jmylchreest/blockhue/internal/export"
	"github.com/jmylchreest/blockhue/internal/logging"
	"github.com/jmylchreest/blockhue/internal/palette"
	"github.com/jmylchreest/blockhue/internal/version"
)

// app carries the state shared by every command of one root command.
type app struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    config.Config
	logger hclog.Logger
	cat    *catalog.Static
}

// NewRootCmd builds the blockhue command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "blockhue",
		Short: "Colour and palette tools for block builds",
		Long: `blockhue measures block texture colours and builds palettes from them.

It generates themed gradients, biome and architectural block sets and
colour-theory schemes, finds blocks close to a colour, snaps free colours
to real blocks and exports palettes as text, JSON, CSS, GIMP or Photoshop
swatches.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: search "+config.DefaultDir()+")")
	rootCmd.PersistentFlags().String("catalog", "", "catalog snapshot (.json, .yaml or .toml, optionally .gz/.xz/.bz2; default: built-in)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newExtractCmd(a),
		newGradientCmd(a),
		newPaletteCmd(a),
		newSearchCmd(a),
		newThemesCmd(a),
		newCatalogCmd(a),
		newTemplatesCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup layers the configuration and creates the logger before any
// command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose && a.quiet {
		return errors.New("--verbose and --quiet cannot be used together")
	}
	a.logger = logging.New(a.verbose, a.quiet, cmd.ErrOrStderr())

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded", "config", a.configPath, "catalog", cfg.Catalog, "format", cfg.Format, "filter", cfg.Filter)
	return nil
}

// catalog loads the configured catalog once.
func (a *app) catalog() (*catalog.Static, error) {
	if a.cat != nil {
		return a.cat, nil
	}

	var (
		c   *catalog.Static
		err error
	)
	if a.cfg.Catalog == "" {
		c, err = catalog.Builtin()
	} else {
		c, err = catalog.Load(a.cfg.Catalog, a.logger)
	}
	if err != nil {
		return nil, err
	}

	a.cat = c
	return c, nil
}

// generator returns a palette generator over the configured catalog and
// filter.
func (a *app) generator() (palette.Generator, error) {
	c, err := a.catalog()
	if err != nil {
		return palette.Generator{}, err
	}
	filter, err := palette.ParseFilter(a.cfg.Filter)
	if err != nil {
		return palette.Generator{}, err
	}
	return palette.Generator{Catalog: c, Filter: filter}, nil
}

// registry returns the exporters with template overrides from the
// configured template directory.
func (a *app) registry() *export.Registry {
	return export.WithTemplates(export.NewLoader(a.cfg.Templates, a.logger))
}

// resolveColour reads a colour argument, either a hex colour or the ID of a
// coloured catalog block.
func (a *app) resolveColour(arg string) (colour.Colour, error) {
	if c, err := colour.ParseHex(arg); err == nil {
		return c, nil
	}

	cat, err := a.catalog()
	if err != nil {
		return colour.Colour{}, err
	}
	e, ok := cat.Lookup(arg)
	if !ok {
		return colour.Colour{}, fmt.Errorf("%q is neither a hex colour nor a known block: %w", arg, palette.ErrUnknownElement)
	}
	if !e.HasColour() {
		return colour.Colour{}, fmt.Errorf("%w: %s", palette.ErrUncolouredElement, e.ID)
	}
	return *e.Colour, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		// No configuration is loaded for version.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
