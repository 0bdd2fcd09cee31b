// Package config loads the board settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"LocalPaint/internal/paint"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Style is the textual form of paint.StyleSpec.
type Style struct {
	Color string  `toml:"color" yaml:"color"`
	Join  string  `toml:"join" yaml:"join"`
	Width float64 `toml:"width" yaml:"width"`
}

// Output names files written when the board closes. Empty means skip.
type Output struct {
	PNG string `toml:"png" yaml:"png"`
	PDF string `toml:"pdf" yaml:"pdf"`
}

// Config holds every adjustable setting of the board.
type Config struct {
	Width      int             `toml:"width" yaml:"width"`
	Height     int             `toml:"height" yaml:"height"`
	Background string          `toml:"background" yaml:"background"`
	Shape      paint.ShapeKind `toml:"shape" yaml:"shape"`
	Style      Style           `toml:"style" yaml:"style"`
	Output     Output          `toml:"output" yaml:"output"`
}

// Default returns the built-in settings: a 1024x768 white board drawing
// yellow, bevel-joined segments five units wide.
func Default() Config {
	return Config{
		Width:      1024,
		Height:     768,
		Background: "white",
		Shape:      paint.KindSegment,
		Style: Style{
			Color: "yellow",
			Join:  "bevel",
			Width: 5,
		},
	}
}

// Load reads path on top of Default. The format follows the extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or
// ".yml") on top of Default and validates the result.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, the shape kind, the background and the style.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if !c.Shape.Valid() {
		return fmt.Errorf("%w: %d", paint.ErrUnknownShapeKind, c.Shape)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := c.StyleSpec(); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}

// StyleSpec converts the textual style into a paint.StyleSpec.
func (c Config) StyleSpec() (paint.StyleSpec, error) {
	return paint.NewStyle(c.Style.Color, c.Style.Join, c.Style.Width)
}

// BackgroundColor parses Background. An empty value is transparent.
func (c Config) BackgroundColor() (color.Color, error) {
	if strings.TrimSpace(c.Background) == "" {
		return color.Transparent, nil
	}
	return paint.ParseColor(c.Background)
}
