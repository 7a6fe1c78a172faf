package compression

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// WalkFunc is called for each matching archive entry. Returning fs.SkipAll
// stops the walk without error.
type WalkFunc func(name string, r io.Reader) error

// IsArchive reports whether name is a zip, jar or (compressed) tar archive.
func IsArchive(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".zip", ".jar", ".tar", ".tar.gz", ".tgz", ".tar.xz", ".txz", ".tar.bz2", ".tbz", ".tbz2"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Walk calls fn for every regular file in the archive at archivePath whose
// name satisfies match, in archive order. Each entry is limited to maxBytes
// of decompressed data (DefaultMaxBytes when maxBytes <= 0). Entry names are
// slash-separated and must be relative paths without "..".
func Walk(archivePath string, match func(name string) bool, fn WalkFunc, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if match == nil {
		match = func(string) bool { return true }
	}

	lower := strings.ToLower(archivePath)
	var err error
	if strings.HasSuffix(lower, ".zip") || strings.HasSuffix(lower, ".jar") {
		err = walkZip(archivePath, match, fn, maxBytes)
	} else {
		err = walkTar(archivePath, match, fn, maxBytes)
	}

	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func walkZip(archivePath string, match func(string) bool, fn WalkFunc, maxBytes int64) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open zip archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := ValidateEntryName(f.Name); err != nil {
			return err
		}
		if !match(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
		}
		err = fn(f.Name, NewLimitedReader(rc, maxBytes))
		_ = rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func walkTar(archivePath string, match func(string) bool, fn WalkFunc, maxBytes int64) error {
	file, err := os.Open(archivePath) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return fmt.Errorf("failed to open tar archive: %w", err)
	}
	defer file.Close()

	rc, err := NewReader(file, DetectFormat(archivePath))
	if err != nil {
		return err
	}
	defer rc.Close()

	tr := tar.NewReader(rc)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar archive: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := ValidateEntryName(header.Name); err != nil {
			return err
		}
		if !match(header.Name) {
			continue
		}

		if err := fn(header.Name, NewLimitedReader(tr, maxBytes)); err != nil {
			return err
		}
	}
}

// ValidateEntryName rejects archive entry names that are absolute or climb
// out of the archive root.
func ValidateEntryName(name string) error {
	if name == "" {
		return fmt.Errorf("empty file path in archive")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return fmt.Errorf("absolute paths in archives are not allowed: %s", name)
	}
	for _, part := range strings.Split(path.Clean(name), "/") {
		if part == ".." {
			return fmt.Errorf("file path contains directory traversal (..) - not allowed: %s", name)
		}
	}
	return nil
}
