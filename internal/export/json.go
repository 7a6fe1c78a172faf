package export

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/blockhue/internal/palette"
)

// JSON writes an indented JSON document.
type JSON struct{}

type jsonPalette struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Theme       string      `json:"theme"`
	Blocks      []jsonEntry `json:"blocks"`
}

type jsonEntry struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Role  string `json:"role"`
	Usage string `json:"usage"`
}

// Name implements Exporter.
func (JSON) Name() string { return "json" }

// Extension implements Exporter.
func (JSON) Extension() string { return ".json" }

// Description implements Exporter.
func (JSON) Description() string { return "JSON document with block IDs, colours, roles and usage" }

// Export implements Exporter.
func (JSON) Export(w io.Writer, p palette.Palette) error {
	doc := jsonPalette{
		Name:        p.Name,
		Description: p.Description,
		Theme:       p.Theme.String(),
		Blocks:      make([]jsonEntry, 0, len(p.Entries)),
	}
	for i, e := range p.Entries {
		doc.Blocks = append(doc.Blocks, jsonEntry{
			ID:    e.ID(),
			Name:  entryName(e, i),
			Color: e.Colour.Hex(),
			Role:  e.Role.String(),
			Usage: e.Usage,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
