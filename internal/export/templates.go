package export

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/blockhue/internal/palette"
)

//go:embed *.tmpl
var templates embed.FS

// Loader reads export templates, preferring a file of the same name in a
// custom directory over the embedded default.
type Loader struct {
	customDir string
	logger    hclog.Logger
}

// NewLoader creates a loader. An empty customDir disables overrides; a nil
// logger discards output.
func NewLoader(customDir string, logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{
		customDir: customDir,
		logger:    logger,
	}
}

// DefaultTemplateDir returns the user template directory,
// $XDG_CONFIG_HOME/blockhue/templates or its platform equivalent.
func DefaultTemplateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "blockhue", "templates")
}

// Load returns the template content and whether it came from the custom
// directory.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customDir != "" {
		customPath := l.CustomPath(filename)
		// #nosec G304 -- path is the configured template directory plus a fixed name.
		if content, err := os.ReadFile(customPath); err == nil {
			l.logger.Debug("using custom template", "path", customPath)
			return content, true, nil
		}
	}

	content, err = templates.ReadFile(filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	l.logger.Debug("using embedded template", "name", filename)
	return content, false, nil
}

// CustomPath returns where an override for filename would live.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customDir, filename)
}

// Embedded lists the embedded template names.
func (l *Loader) Embedded() ([]string, error) {
	var names []string
	err := fs.WalkDir(templates, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// Dump copies every embedded template into the custom directory so it can
// be edited. Existing files are kept unless force is set. It returns the
// paths written.
func (l *Loader) Dump(force bool) ([]string, error) {
	if l.customDir == "" {
		return nil, fmt.Errorf("no custom template directory configured")
	}

	names, err := l.Embedded()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.customDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", l.customDir, err)
	}

	var written []string
	var skipped []string
	for _, name := range names {
		path := l.CustomPath(name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				skipped = append(skipped, path)
				continue
			}
		}

		content, err := templates.ReadFile(name)
		if err != nil {
			return written, fmt.Errorf("failed to read embedded template %q: %w", name, err)
		}
		// #nosec G306 -- templates are user-editable config, not secrets.
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return written, fmt.Errorf("failed to write template to %q: %w", path, err)
		}
		l.logger.Info("wrote template", "path", path)
		written = append(written, path)
	}

	if len(skipped) > 0 {
		return written, fmt.Errorf("custom templates already exist (use --force to overwrite): %s", strings.Join(skipped, ", "))
	}
	return written, nil
}

// templateFuncs returns the functions available to export templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc":     func(i int) int { return i + 1 },
		"hex":     func(e palette.Entry) string { return e.Colour.Hex() },
		"rgb":     rgbFunc,
		"label":   entryName,
		"line":    singleLine,
		"toLower": strings.ToLower,
		"toUpper": strings.ToUpper,
	}
}

func rgbFunc(e palette.Entry) string {
	rgb := e.Colour.RGB()
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])
}

// templated renders a palette through a named template.
type templated struct {
	name        string
	extension   string
	description string
	file        string
	loader      *Loader
}

func (t templated) Name() string        { return t.name }
func (t templated) Extension() string   { return t.extension }
func (t templated) Description() string { return t.description }

func (t templated) Export(w io.Writer, p palette.Palette) error {
	loader := t.loader
	if loader == nil {
		loader = NewLoader("", nil)
	}

	content, _, err := loader.Load(t.file)
	if err != nil {
		return err
	}

	tmpl, err := template.New(t.file).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", t.name, err)
	}

	// Render to a buffer so a template error never leaves partial output.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", t.name, err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// NewText returns the plain text listing exporter.
func NewText(l *Loader) Exporter {
	return templated{
		name:        "text",
		extension:   ".txt",
		description: "Plain text block list with usage notes",
		file:        "text.tmpl",
		loader:      l,
	}
}

// NewCSS returns the CSS custom property exporter.
func NewCSS(l *Loader) Exporter {
	return templated{
		name:        "css",
		extension:   ".css",
		description: "CSS custom properties (--color-N)",
		file:        "css.tmpl",
		loader:      l,
	}
}
