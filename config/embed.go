package config

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed *.yaml
var FS embed.FS

// Read returns the named file from disk when it exists, otherwise the copy
// built into the binary.
func Read(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return FS.ReadFile(filepath.ToSlash(filepath.Base(name)))
}
