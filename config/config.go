// Package config loads the runner configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTPS     = 60
	DefaultProfile = "profile.yaml"
	// DemoMachine is the machine built into the binary.
	DemoMachine = "buggy.yaml"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	// Profile is the yaml store holding local axes.
	Profile string `yaml:"profile"`
	// Machine is the machine file to simulate; empty runs the demo machine.
	Machine string `yaml:"machine"`
	TPS     int    `yaml:"tps"`
	Paused  bool   `yaml:"paused"`
	// Watch reloads the profile when it changes on disk.
	Watch  bool   `yaml:"watch"`
	Window Window `yaml:"window"`
}

func Default() Config {
	return Config{
		Profile: DefaultProfile,
		TPS:     DefaultTPS,
		Watch:   true,
		Window:  Window{Width: 1280, Height: 720, Title: "axis controls"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	d := Default()
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.Profile == "" {
		c.Profile = d.Profile
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
}

// LoadSpec decodes a yaml file from disk or, failing that, from the files
// built into the binary.
func LoadSpec[T any](name string) (T, error) {
	var zero T
	data, err := Read(name)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", name, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	return spec, nil
}
