// Package compression opens and writes gzip, xz and bzip2 streams and walks
// zip and tar archives, with a cap on how much decompressed data is read.
package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// DefaultMaxBytes caps decompressed output at 256MB.
const DefaultMaxBytes int64 = 256 * 1024 * 1024

// ErrUnsupportedFormat is returned when a stream format cannot be read or written.
var ErrUnsupportedFormat = errors.New("unsupported compression format")

// Format identifies a single-stream compression format.
type Format int

const (
	// None is an uncompressed stream.
	None Format = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Xz is the xz container with LZMA2.
	Xz
	// Bzip2 is bzip2. It can be read but not written.
	Bzip2
)

// String returns the canonical file extension without the dot, or "none".
func (f Format) String() string {
	switch f {
	case Gzip:
		return "gz"
	case Xz:
		return "xz"
	case Bzip2:
		return "bz2"
	default:
		return "none"
	}
}

// DetectFormat returns the compression format implied by a file name.
func DetectFormat(name string) Format {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return Gzip
	case strings.HasSuffix(lower, ".xz"), strings.HasSuffix(lower, ".txz"):
		return Xz
	case strings.HasSuffix(lower, ".bz2"), strings.HasSuffix(lower, ".tbz"), strings.HasSuffix(lower, ".tbz2"):
		return Bzip2
	default:
		return None
	}
}

// StripExtension removes a trailing compression extension, so
// "blocks.json.xz" becomes "blocks.json".
func StripExtension(name string) string {
	for _, ext := range []string{".gz", ".xz", ".bz2"} {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// NewReader wraps r with a decompressor for f. Closing the result releases
// the decompressor but not r.
func NewReader(r io.Reader, f Format) (io.ReadCloser, error) {
	switch f {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzr, nil
	case Xz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return io.NopCloser(xzr), nil
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
}

// NewWriter wraps w with a compressor for f. The result must be closed to
// flush the stream; closing does not close w.
func NewWriter(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Xz:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	default:
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// File is an opened, possibly decompressed, file.
type File struct {
	io.Reader
	// Name is the file name with any compression extension removed. It is
	// used to pick a decoder for the content.
	Name string

	decomp io.Closer
	file   *os.File
}

// Close releases the decompressor and the underlying file.
func (f *File) Close() error {
	derr := f.decomp.Close()
	ferr := f.file.Close()
	if derr != nil {
		return derr
	}
	return ferr
}

// Open opens path and transparently decompresses it based on its extension.
// At most maxBytes of decompressed data can be read; maxBytes <= 0 uses
// DefaultMaxBytes.
func Open(path string, maxBytes int64) (*File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	file, err := os.Open(path) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	rc, err := NewReader(file, DetectFormat(path))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &File{
		Reader: NewLimitedReader(rc, maxBytes),
		Name:   StripExtension(path),
		decomp: rc,
		file:   file,
	}, nil
}

// Create creates path and returns a writer that compresses according to
// the path's extension. Closing it flushes the compressor and closes the file.
func Create(path string) (io.WriteCloser, error) {
	format := DetectFormat(path)
	if format == Bzip2 {
		return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)
	}

	file, err := os.Create(path) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	wc, err := NewWriter(file, format)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &fileWriter{WriteCloser: wc, file: file}, nil
}

type fileWriter struct {
	io.WriteCloser
	file *os.File
}

func (w *fileWriter) Close() error {
	werr := w.WriteCloser.Close()
	ferr := w.file.Close()
	if werr != nil {
		return fmt.Errorf("failed to flush compressed stream: %w", werr)
	}
	return ferr
}
