// Package config loads the render settings used to start an engine. Settings come from a YAML
// file laid over Default, so a file only needs the keys it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// maxConfigSize bounds the file Load will read.
const maxConfigSize = 1024 * 1024

// Present mode names accepted in Render.PresentMode.
const (
	PresentModeVSync    = "vsync"
	PresentModeUncapped = "uncapped"
)

// Window holds the window settings.
type Window struct {
	Title string `yaml:"title"`
	// Width and Height of 0 select the primary monitor's resolution.
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
}

// Render holds the GPU settings.
type Render struct {
	PresentMode     string `yaml:"present_mode"`
	ValidateShaders bool   `yaml:"validate_shaders"`
	ForceSoftware   bool   `yaml:"force_software"`
}

// Animation holds the animator settings.
type Animation struct {
	TimeScale float32 `yaml:"time_scale"`
	// FixedStep, when positive, replaces the measured frame time in seconds.
	FixedStep float32 `yaml:"fixed_step"`
	Paused    bool    `yaml:"paused"`
}

// Profiling holds the profiler settings.
type Profiling struct {
	Enabled bool `yaml:"enabled"`
	// IntervalMs is the logging interval in milliseconds.
	IntervalMs int `yaml:"interval_ms"`
}

// Config is the full settings tree.
type Config struct {
	Window    Window    `yaml:"window"`
	Render    Render    `yaml:"render"`
	Animation Animation `yaml:"animation"`
	Profiling Profiling `yaml:"profiling"`
}

// Default returns the settings used when no file is given.
//
// Returns:
//   - Config: a 1280x720 vsync window with validation off and real-time animation
func Default() Config {
	return Config{
		Window: Window{
			Title:  "oxy-rt",
			Width:  1280,
			Height: 720,
		},
		Render: Render{
			PresentMode: PresentModeVSync,
		},
		Animation: Animation{
			TimeScale: 1,
		},
		Profiling: Profiling{
			IntervalMs: 1000,
		},
	}
}

// Load reads a YAML file and lays it over Default.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the merged settings
//   - error: a read, parse or validation error
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigSize+1))
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if len(data) > maxConfigSize {
		return Config{}, fmt.Errorf("config: %q is larger than %d bytes", path, maxConfigSize)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML laid over Default. Unknown keys are rejected.
//
// Parameters:
//   - data: the YAML document; empty input yields Default
//
// Returns:
//   - Config: the merged settings
//   - error: a parse or validation error
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d must not be negative", c.Window.Width, c.Window.Height)
	}
	switch c.Render.PresentMode {
	case PresentModeVSync, PresentModeUncapped:
	default:
		return fmt.Errorf("unknown present_mode %q", c.Render.PresentMode)
	}
	if c.Animation.TimeScale < 0 {
		return fmt.Errorf("time_scale %v must not be negative", c.Animation.TimeScale)
	}
	if c.Animation.FixedStep < 0 {
		return fmt.Errorf("fixed_step %v must not be negative", c.Animation.FixedStep)
	}
	if c.Profiling.IntervalMs <= 0 {
		return fmt.Errorf("profiling interval_ms %d must be positive", c.Profiling.IntervalMs)
	}
	return nil
}

// Marshal encodes the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
