package export

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/jmylchreest/blockhue/internal/palette"
)

// ACO writes an Adobe Color Swatch file: a version 1 section followed by a
// version 2 section carrying the same colours with UTF-16 names. All words
// are big-endian.
type ACO struct{}

const (
	acoSpaceRGB = 0
	// acoScale maps an 8-bit channel onto the full 16-bit range.
	acoScale = 257
)

// Name implements Exporter.
func (ACO) Name() string { return "aco" }

// Extension implements Exporter.
func (ACO) Extension() string { return ".aco" }

// Description implements Exporter.
func (ACO) Description() string { return "Adobe Photoshop colour swatches" }

// Export implements Exporter.
func (ACO) Export(w io.Writer, p palette.Palette) error {
	entries := p.Entries
	if len(entries) > math.MaxUint16 {
		entries = entries[:math.MaxUint16]
	}

	var buf bytes.Buffer
	put := func(v any) {
		// Writes to a bytes.Buffer cannot fail.
		_ = binary.Write(&buf, binary.BigEndian, v)
	}

	for _, version := range []uint16{1, 2} {
		put(version)
		put(uint16(len(entries))) // #nosec G115 -- capped at MaxUint16 above.

		for i, e := range entries {
			rgb := e.Colour.RGB()
			put([5]uint16{
				acoSpaceRGB,
				uint16(rgb[0]) * acoScale,
				uint16(rgb[1]) * acoScale,
				uint16(rgb[2]) * acoScale,
				0,
			})

			if version == 2 {
				name := utf16Name(singleLine(entryName(e, i)))
				put(uint32(len(name)/2 + 1)) // #nosec G115 -- names are short.
				buf.Write(name)
				put(uint16(0))
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// utf16Name encodes s as UTF-16BE without a byte order mark.
func utf16Name(s string) []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(strings.ToValidUTF8(s, "�")))
	if err != nil {
		return nil
	}
	return out
}
