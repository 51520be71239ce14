package glyph

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Shipped font resources, usable without any files on disk
//
//go:embed font_size_5.txt font_size_7.txt
var embedded embed.FS

// ResourceName returns the font resource filename for a glyph size
func ResourceName(size Size) string {
	return fmt.Sprintf("font_size_%d.txt", int(size))
}

// Load builds a table from the embedded font resource for size
func Load(size Size) (*Table, error) {
	if !size.Valid() {
		return nil, &ResourceError{Resource: ResourceName(size), Err: fmt.Errorf("unsupported glyph size %d", int(size))}
	}
	name := ResourceName(size)
	f, err := embedded.Open(name)
	if err != nil {
		return nil, &ResourceError{Resource: name, Err: err}
	}
	defer f.Close()

	t, err := parse(f, size)
	if err != nil {
		return nil, &ResourceError{Resource: name, Err: err}
	}
	return t, nil
}

// LoadFile builds a table from a font resource on disk
func LoadFile(path string, size Size) (*Table, error) {
	if !size.Valid() {
		return nil, &ResourceError{Resource: path, Err: fmt.Errorf("unsupported glyph size %d", int(size))}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Resource: path, Err: err}
	}
	defer f.Close()

	t, err := parse(f, size)
	if err != nil {
		return nil, &ResourceError{Resource: path, Err: err}
	}
	return t, nil
}

// LoadAuto loads a table with priority: customPath > fontDir > embedded
func LoadAuto(customPath, fontDir string, size Size) (*Table, error) {
	if customPath != "" {
		return LoadFile(customPath, size)
	}
	if fontDir != "" {
		path := filepath.Join(fontDir, ResourceName(size))
		if fileExists(path) {
			return LoadFile(path, size)
		}
	}
	return Load(size)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
