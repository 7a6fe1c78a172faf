// Package seed derives the random seed used for k-means colour extraction,
// so clustering is reproducible for the same texture.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jmylchreest/blockhue/internal/extract"
)

// Mode determines how the seed is generated.
type Mode string

const (
	// ModeContent hashes the pixel data (default, deterministic by content).
	ModeContent Mode = "content"
	// ModeFilepath hashes the absolute file path (deterministic by location).
	ModeFilepath Mode = "filepath"
	// ModeManual uses a user-provided value.
	ModeManual Mode = "manual"
	// ModeRandom uses a fresh random seed on every run.
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed for a raster loaded from path.
func Calculate(r extract.Raster, path string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent, "":
		return ContentSeed(r)
	case ModeFilepath:
		if path == "" {
			return 0, fmt.Errorf("texture path is required for filepath seed mode")
		}
		return FilepathSeed(path), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return RandomSeed()
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the raster's dimensions and pixels. Large rasters are
// sampled on a grid of roughly 100x100 points.
func ContentSeed(r extract.Raster) (int64, error) {
	if r.Width <= 0 || r.Height <= 0 || r.Channels <= 0 {
		return 0, fmt.Errorf("raster is empty")
	}
	if len(r.Pix) < r.Width*r.Height*r.Channels {
		return 0, fmt.Errorf("raster buffer too short: %d bytes for %dx%dx%d", len(r.Pix), r.Width, r.Height, r.Channels)
	}

	hasher := sha256.New()

	header := make([]byte, 12)
	binary.LittleEndian.PutUint32(header[0:4], uint32(r.Width))     // #nosec G115 -- checked positive above
	binary.LittleEndian.PutUint32(header[4:8], uint32(r.Height))    // #nosec G115 -- checked positive above
	binary.LittleEndian.PutUint32(header[8:12], uint32(r.Channels)) // #nosec G115 -- checked positive above
	hasher.Write(header)

	step := max(r.Width/100, r.Height/100, 1)
	for y := 0; y < r.Height; y += step {
		for x := 0; x < r.Width; x += step {
			i := (y*r.Width + x) * r.Channels
			hasher.Write(r.Pix[i : i+r.Channels])
		}
	}

	return sum64(hasher.Sum(nil)), nil
}

// FilepathSeed hashes the absolute form of path.
func FilepathSeed(path string) int64 {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	// Archive entries ("pack.zip!assets/...") are hashed as given.
	if strings.Contains(path, "!") {
		abs = path
	}
	hash := sha256.Sum256([]byte(abs))
	return sum64(hash[:])
}

// RandomSeed returns a non-deterministic seed.
func RandomSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return sum64(buf[:]), nil
}

func sum64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b[:8])) // #nosec G115 -- hash bits reinterpreted as a seed
}

// ValidModes returns the valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeFilepath, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, filepath, manual, random)", s)
}
