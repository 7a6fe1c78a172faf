package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed data/blocks.yaml
var builtinYAML []byte

// Builtin returns a catalog of common vanilla blocks with approximate
// colours. Every call returns a fresh catalog.
func Builtin() (*Static, error) {
	return Decode(bytes.NewReader(builtinYAML), EncodingYAML)
}
