package machine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Spec is the on-disk form of a machine. Data holds the machine-embedded
// key/value blob: its axes and control settings.
type Spec struct {
	Name    string         `yaml:"name"`
	Gravity float64        `yaml:"gravity,omitempty"`
	Blocks  []BlockSpec    `yaml:"blocks"`
	Data    map[string]any `yaml:"data,omitempty"`
}

type BlockSpec struct {
	ID     string  `yaml:"id"`
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle,omitempty"`
	Mass   float64 `yaml:"mass,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	// Radius makes the block round; Width and Height are then ignored.
	Radius float64 `yaml:"radius,omitempty"`
	// Stroke is how far a piston extends at full position.
	Stroke  float64            `yaml:"stroke,omitempty"`
	Sliders map[string]float64 `yaml:"sliders,omitempty"`
}

// LoadSpec reads a machine file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("machine: read %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("machine: unmarshal %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("machine: %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks block ids are present and unique.
func (s *Spec) Validate() error {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool, len(s.Blocks))
	var errs []error
	for i, b := range s.Blocks {
		switch {
		case b.ID == "":
			errs = append(errs, fmt.Errorf("block %d: %w", i, ErrEmptyID))
		case seen[b.ID]:
			errs = append(errs, fmt.Errorf("block %d: %w: %s", i, ErrDuplicateBlock, b.ID))
		}
		seen[b.ID] = true
	}
	return errors.Join(errs...)
}

// WriteSpec writes s to path through a temporary file.
func WriteSpec(path string, s *Spec) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("machine: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("machine: mkdir %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("machine: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("machine: rename %s: %w", tmp, err)
	}
	return nil
}
