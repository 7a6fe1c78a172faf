// Package image loads block textures and hands them to the extractor as
// rasters.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/blockhue/internal/extract"
	"github.com/jmylchreest/blockhue/internal/logging"
)

// ErrNoImages is returned when a directory holds no supported textures.
var ErrNoImages = errors.New("no supported image files found")

// Loader loads textures from the local filesystem.
type Loader struct {
	// FirstFrame crops animated texture strips (height a multiple of the
	// width) to their top frame.
	FirstFrame bool

	logger hclog.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger hclog.Logger) *Loader {
	return &Loader{
		FirstFrame: true,
		logger:     logging.OrNull(logger),
	}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *Loader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified texture path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return l.decode(file, path)
}

// LoadRaster loads a texture file as a raster.
func (l *Loader) LoadRaster(path string) (extract.Raster, error) {
	img, err := l.Load(path)
	if err != nil {
		return extract.Raster{}, err
	}
	return extract.FromImage(img), nil
}

// DecodeRaster decodes a texture from r, such as an archive entry. name is
// only used for logging and errors.
func (l *Loader) DecodeRaster(r io.Reader, name string) (extract.Raster, error) {
	img, err := l.decode(r, name)
	if err != nil {
		return extract.Raster{}, err
	}
	return extract.FromImage(img), nil
}

func (l *Loader) decode(r io.Reader, name string) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s (format: %s): %w", name, format, err)
	}

	b := img.Bounds()
	l.logger.Debug("decoded texture", "name", name, "format", format, "width", b.Dx(), "height", b.Dy())

	if l.FirstFrame {
		if frame, ok := firstFrame(img); ok {
			l.logger.Debug("using first animation frame", "name", name, "frames", b.Dy()/b.Dx())
			return frame, nil
		}
	}
	return img, nil
}

// firstFrame returns the top square of a vertical animation strip.
func firstFrame(img image.Image) (image.Image, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h <= w || h%w != 0 {
		return nil, false
	}

	frame := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+w)
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(frame), true
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, w))
	draw.Draw(out, out.Bounds(), img, frame.Min, draw.Src)
	return out, true
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectory returns the supported image files under dir, sorted. With
// recursive set it descends into subdirectories.
func ScanDirectory(dir string, recursive bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if IsImageFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in directory: %s", ErrNoImages, dir)
	}

	slices.Sort(files)
	return files, nil
}

// TextureID derives a block ID from a texture file name, dropping the
// extension and the usual face or state suffixes, so
// "assets/minecraft/textures/block/oak_log_top.png" becomes
// "minecraft:oak_log".
func TextureID(path string) string {
	name := strings.TrimSuffix(filepath.Base(filepath.ToSlash(path)), filepath.Ext(path))
	for _, suffix := range textureSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok && trimmed != "" {
			name = trimmed
			break
		}
	}

	namespace := "minecraft"
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, p := range parts {
		if p == "assets" && i+1 < len(parts) {
			namespace = parts[i+1]
			break
		}
	}
	return namespace + ":" + name
}

var textureSuffixes = []string{
	"_top", "_bottom", "_side", "_front", "_back", "_end", "_inner",
	"_outer", "_on", "_off", "_still", "_flow",
}
