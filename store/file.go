package store

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is a Config persisted as a flat yaml mapping on disk.
type File struct {
	path string

	mu   sync.Mutex
	data values
}

// OpenFile reads the yaml store at path. A missing file yields an empty
// store that Save will create.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, data: values{}}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Reload replaces the in-memory contents with what is on disk.
func (f *File) Reload() error {
	if f == nil {
		return nil
	}
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.mu.Lock()
		f.data = values{}
		f.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read %s: %w", f.path, err)
	}

	data := values{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("store: unmarshal %s: %w", f.path, err)
	}
	if data == nil {
		data = values{}
	}

	f.mu.Lock()
	f.data = data
	f.mu.Unlock()
	return nil
}

// Save writes the store through a temporary file so a crash never leaves a
// truncated profile behind.
func (f *File) Save() error {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	raw, err := yaml.Marshal(map[string]any(f.data))
	f.mu.Unlock()
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", f.path, err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}

// Keys returns every stored key in sorted order.
func (f *File) Keys() []string {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Sorted(maps.Keys(f.data))
}

func (f *File) HasKey(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

func (f *File) GetFloat(key string, def float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data.float(key); ok {
		return v
	}
	return def
}

func (f *File) GetBool(key string, def bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data.bool(key); ok {
		return v
	}
	return def
}

func (f *File) GetString(key string, def string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data.string(key); ok {
		return v
	}
	return def
}

func (f *File) GetInt(key string, def int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.data.int(key); ok {
		return v
	}
	return def
}

func (f *File) set(key string, value any) {
	f.mu.Lock()
	f.data[key] = value
	f.mu.Unlock()
}

func (f *File) SetFloat(key string, value float64) { f.set(key, value) }
func (f *File) SetBool(key string, value bool)     { f.set(key, value) }
func (f *File) SetString(key string, value string) { f.set(key, value) }
func (f *File) SetInt(key string, value int)       { f.set(key, value) }

func (f *File) RemoveKey(key string) {
	f.mu.Lock()
	delete(f.data, key)
	f.mu.Unlock()
}

var _ Config = (*File)(nil)
