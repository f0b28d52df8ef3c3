// Package config loads and writes the gameforge configuration file.
//
// The file lives under the XDG config directory and is optional: every field
// has a usable built-in default, and a missing file means defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/anonychat/gameforge/internal/xdg"
)

// Configuration validation errors.
var (
	ErrInvalidMaxWidth    = errors.New("image.max_width must be at least 16")
	ErrInvalidJPEGQuality = errors.New("image.jpeg_quality must be between 1 and 100")
	ErrMissingPreviewAddr = errors.New("preview.addr must not be empty")
)

// Config represents the complete gameforge configuration.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Preview   PreviewConfig `yaml:"preview"`
	Image     ImageConfig   `yaml:"image"`
}

// PreviewConfig controls the local preview server.
type PreviewConfig struct {
	Addr string `yaml:"addr"`
}

// ImageConfig controls cover re-encoding when optimization is requested.
type ImageConfig struct {
	MaxWidth    int `yaml:"max_width"`
	JPEGQuality int `yaml:"jpeg_quality"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Preview: PreviewConfig{Addr: "127.0.0.1:3000"},
		Image:   ImageConfig{MaxWidth: 800, JPEGQuality: 80},
	}
}

// Path returns the config file location under the XDG config directory.
func Path() string {
	return filepath.Join(xdg.ConfigDir(), "config.yaml")
}

// Load reads Path and overlays it onto the defaults. A missing file is not an
// error; a malformed or invalid file is.
func Load() (*Config, error) {
	cfg := Default()
	path := Path()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their built-in values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Image.MaxWidth < 16 {
		return ErrInvalidMaxWidth
	}
	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return ErrInvalidJPEGQuality
	}
	if c.Preview.Addr == "" {
		return ErrMissingPreviewAddr
	}
	return nil
}

// Init writes a commented default config file to Path, creating the config
// directory if needed. It refuses to overwrite an existing file. Returns the
// path written.
func Init() (string, error) {
	path := Path()
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultYAML), 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}

// defaultYAML is the commented starter file written by Init. The values match
// Default so a fresh file changes nothing.
const defaultYAML = `# gameforge configuration

# Folder generated tiles and pages land in when no explicit output is given.
# Empty means the current directory.
output_dir: ""

preview:
  # Address the preview server listens on.
  addr: "127.0.0.1:3000"

image:
  # Covers wider than this are downscaled when --optimize is set.
  max_width: 800
  # JPEG quality used when --optimize re-encodes a cover.
  jpeg_quality: 80
`
