// Package config layers blockhue settings from defaults, a config file,
// BLOCKHUE_* environment variables and command line flags, in that order
// of increasing precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/blockhue/internal/export"
	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/gradient"
	"github.com/jmylchreest/blockhue/internal/palette"
	"github.com/jmylchreest/blockhue/internal/seed"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "BLOCKHUE_"

// Config holds the user-tunable settings shared by the commands.
type Config struct {
	// Catalog is a catalog snapshot path; empty selects the built-in catalog.
	Catalog string `toml:"catalog" yaml:"catalog" json:"catalog"`
	// Format is the default export format.
	Format string `toml:"format" yaml:"format" json:"format"`
	// Steps is the default gradient and themed palette length.
	Steps int `toml:"steps" yaml:"steps" json:"steps"`
	// Method is the default gradient interpolation.
	Method string `toml:"method" yaml:"method" json:"method"`
	// Extraction is the default texture colour extraction method.
	Extraction string `toml:"extraction" yaml:"extraction" json:"extraction"`
	// Bins is the histogram bin count for most-frequent extraction.
	Bins int `toml:"bins" yaml:"bins" json:"bins"`
	// K is the cluster count for k-means extraction.
	K int `toml:"k" yaml:"k" json:"k"`
	// SeedMode selects how the k-means seed is derived.
	SeedMode string `toml:"seed_mode" yaml:"seed_mode" json:"seed_mode"`
	// Seed is the k-means seed for the manual seed mode.
	Seed int64 `toml:"seed" yaml:"seed" json:"seed"`
	// Filter is the block filter preset applied to generated palettes.
	Filter string `toml:"filter" yaml:"filter" json:"filter"`
	// Templates is the directory searched for export template overrides.
	Templates string `toml:"templates" yaml:"templates" json:"templates"`
	// Preview prints colour swatches when writing to a terminal.
	Preview bool `toml:"preview" yaml:"preview" json:"preview"`
}

// Default returns the built-in settings.
func Default() Config {
	opts := extract.DefaultOptions(extract.Average)
	return Config{
		Format:     "text",
		Steps:      7,
		Method:     gradient.LinearOklab.String(),
		Extraction: opts.Method.String(),
		Bins:       opts.Bins,
		K:          opts.K,
		SeedMode:   string(seed.ModeContent),
		Filter:     "none",
		Templates:  export.DefaultTemplateDir(),
		Preview:    true,
	}
}

// FileNames lists the config file names searched in the config directory,
// in order.
func FileNames() []string {
	return []string{"config.toml", "config.yaml", "config.yml", "config.json"}
}

// DefaultDir returns $XDG_CONFIG_HOME/blockhue or its platform equivalent.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "blockhue")
}

// FindFile returns the first config file present in dir, or "" when there
// is none.
func FindFile(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range FileNames() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load returns the defaults overlaid with the config file at path. An empty
// path searches DefaultDir and silently keeps the defaults when no file
// exists there; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = FindFile(DefaultDir())
		if path == "" {
			return cfg, nil
		}
	}

	if err := cfg.LoadFile(path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays the settings in a TOML, YAML or JSON file, chosen by
// extension. Keys missing from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	path = ExpandPath(path)

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q (use .toml, .yaml or .json)", ext)
	}

	c.Catalog = ExpandPath(c.Catalog)
	c.Templates = ExpandPath(c.Templates)
	return nil
}

// ApplyEnv overlays BLOCKHUE_* variables read through lookup, usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	for _, f := range c.fields() {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(f.name, "-", "_"))
		if v, ok := lookup(name); ok {
			if err := f.set(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// ApplyFlags overlays every flag in fs that matches a setting and was set
// on the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var errs []error
	for _, f := range c.fields() {
		flag := fs.Lookup(f.name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := f.set(flag.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("--%s: %w", f.name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	var errs []error

	if _, err := export.Default().Lookup(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := gradient.ParseMethod(c.Method); err != nil {
		errs = append(errs, err)
	}
	if _, err := seed.ParseMode(c.SeedMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := palette.ParseFilter(c.Filter); err != nil {
		errs = append(errs, err)
	}
	if c.Steps < 2 {
		errs = append(errs, fmt.Errorf("steps must be at least 2, got %d", c.Steps))
	}
	if _, err := c.ExtractOptions(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ExtractOptions returns the extraction options for these settings. The
// seed is left for the caller to derive per texture.
func (c Config) ExtractOptions() (extract.Options, error) {
	m, err := extract.ParseMethod(c.Extraction)
	if err != nil {
		return extract.Options{}, err
	}
	opts := extract.DefaultOptions(m)
	opts.Bins = c.Bins
	opts.K = c.K
	return opts, opts.Validate()
}

// SeedConfig returns the seed settings for texture extraction.
func (c Config) SeedConfig() (seed.Config, error) {
	mode, err := seed.ParseMode(c.SeedMode)
	if err != nil {
		return seed.Config{}, err
	}
	value := c.Seed
	return seed.Config{Mode: mode, Value: &value}, nil
}

// field binds one setting to its flag name and a string parser.
type field struct {
	name string
	set  func(string) error
}

func (c *Config) fields() []field {
	str := func(p *string) func(string) error {
		return func(v string) error { *p = v; return nil }
	}
	path := func(p *string) func(string) error {
		return func(v string) error { *p = ExpandPath(v); return nil }
	}
	integer := func(p *int) func(string) error {
		return func(v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid integer %q", v)
			}
			*p = n
			return nil
		}
	}

	return []field{
		{"catalog", path(&c.Catalog)},
		{"format", str(&c.Format)},
		{"steps", integer(&c.Steps)},
		{"method", str(&c.Method)},
		{"extraction", str(&c.Extraction)},
		{"bins", integer(&c.Bins)},
		{"k", integer(&c.K)},
		{"seed-mode", str(&c.SeedMode)},
		{"seed", func(v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q", v)
			}
			c.Seed = n
			return nil
		}},
		{"filter", str(&c.Filter)},
		{"templates", path(&c.Templates)},
		{"preview", func(v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid boolean %q", v)
			}
			c.Preview = b
			return nil
		}},
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
