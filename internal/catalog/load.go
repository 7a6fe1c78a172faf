package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/blockhue/internal/colour"
	"github.com/jmylchreest/blockhue/internal/compression"
)

// Encoding is a snapshot serialisation format.
type Encoding string

// Supported snapshot encodings.
const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// EncodingFor picks an encoding from a file name, ignoring any compression
// extension. Unknown extensions report false.
func EncodingFor(name string) (Encoding, bool) {
	switch strings.ToLower(filepath.Ext(compression.StripExtension(name))) {
	case ".json":
		return EncodingJSON, true
	case ".yaml", ".yml":
		return EncodingYAML, true
	case ".toml":
		return EncodingTOML, true
	default:
		return "", false
	}
}

// Snapshot is the on-disk form of a catalog.
type Snapshot struct {
	Version int      `json:"version" yaml:"version" toml:"version"`
	Blocks  []Record `json:"blocks" yaml:"blocks" toml:"blocks"`
}

// Record is one block in a snapshot. Color is a hex string and is empty for
// blocks without a measured colour.
type Record struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// SnapshotVersion is written by Encode.
const SnapshotVersion = 1

// Decode reads a snapshot and builds a catalog from it.
func Decode(r io.Reader, enc Encoding) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var snap Snapshot
	switch enc {
	case EncodingJSON:
		err = json.Unmarshal(data, &snap)
	case EncodingYAML:
		err = yaml.Unmarshal(data, &snap)
	case EncodingTOML:
		err = toml.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("unsupported catalog encoding: %q", enc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", strings.ToUpper(string(enc)), err)
	}

	return FromSnapshot(snap)
}

// FromSnapshot converts snapshot records into a catalog.
func FromSnapshot(snap Snapshot) (*Static, error) {
	elements := make([]Element, 0, len(snap.Blocks))
	for i, rec := range snap.Blocks {
		if strings.TrimSpace(rec.ID) == "" {
			return nil, fmt.Errorf("block %d: id is required", i)
		}

		e := Element{ID: rec.ID, Name: rec.Name}
		if rec.Color != "" {
			c, err := colour.ParseHex(rec.Color)
			if err != nil {
				return nil, fmt.Errorf("block %s: %w", rec.ID, err)
			}
			e.Colour = &c
		}
		elements = append(elements, e)
	}
	return New(elements...), nil
}

// ToSnapshot converts a catalog into its on-disk form.
func ToSnapshot(c Catalog) Snapshot {
	elements := c.Elements()
	snap := Snapshot{Version: SnapshotVersion, Blocks: make([]Record, len(elements))}
	for i, e := range elements {
		rec := Record{ID: e.ID, Name: e.Name}
		if e.Colour != nil {
			rec.Color = e.Colour.Hex()
		}
		snap.Blocks[i] = rec
	}
	return snap
}

// Encode writes c as a snapshot.
func Encode(w io.Writer, c Catalog, enc Encoding) error {
	snap := ToSnapshot(c)

	var (
		data []byte
		err  error
	)
	switch enc {
	case EncodingJSON:
		data, err = json.MarshalIndent(snap, "", "  ")
		data = append(data, '\n')
	case EncodingYAML:
		var buf bytes.Buffer
		ye := yaml.NewEncoder(&buf)
		ye.SetIndent(2)
		if err = ye.Encode(snap); err == nil {
			err = ye.Close()
		}
		data = buf.Bytes()
	case EncodingTOML:
		data, err = toml.Marshal(snap)
	default:
		return fmt.Errorf("unsupported catalog encoding: %q", enc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Load reads a snapshot file. The encoding comes from the extension and
// .gz, .xz and .bz2 files are decompressed on the fly.
func Load(path string, logger hclog.Logger) (*Static, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	enc, ok := EncodingFor(path)
	if !ok {
		return nil, fmt.Errorf("cannot determine catalog encoding from %q (expected .json, .yaml, .yml or .toml)", path)
	}

	f, err := compression.Open(path, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	stats := ComputeStats(c)
	logger.Debug("loaded catalog", "path", path, "encoding", enc, "blocks", stats.Total, "coloured", stats.Coloured)
	return c, nil
}

// Save writes c to path, choosing the encoding and compression from the
// extension.
func Save(path string, c Catalog, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	enc, ok := EncodingFor(path)
	if !ok {
		return fmt.Errorf("cannot determine catalog encoding from %q (expected .json, .yaml, .yml or .toml)", path)
	}

	w, err := compression.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(w, c, enc); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to save catalog %s: %w", path, err)
	}

	logger.Debug("saved catalog", "path", path, "encoding", enc)
	return nil
}
