// Package config loads editor configuration from a JSON file with
// environment variable overrides.
//
// Resolution order: built-in defaults, then the config file (when given),
// then PIXELSTORM_-prefixed environment variables. Values are validated
// after all layers apply.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/pixelstorm/internal/raster"
)

// Grid size limits. The upper bound matches the import codec's cap; nothing
// larger fits a terminal surface anyway.
const (
	MinGridSize = 1
	MaxGridSize = 100
)

// ErrInvalidConfig indicates configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved editor configuration.
type Config struct {
	// Width and Height are the grid dimensions in cells.
	Width  int
	Height int

	// Scale is the size of one cell in surface units.
	Scale int

	// Background is the fill color of a new picture.
	Background raster.Color

	// SessionPath, when set, is loaded on start and saved on exit.
	SessionPath string

	// LogPath receives the application log. Empty disables logging.
	LogPath string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:      32,
		Height:     16,
		Scale:      1,
		Background: raster.White,
	}
}

// fileConfig is the JSON shape of a config file. All fields are optional;
// absent fields keep the previous layer's value.
type fileConfig struct {
	Width      *int    `json:"width"`
	Height     *int    `json:"height"`
	Scale      *int    `json:"scale"`
	Background *string `json:"background"`
	Session    *string `json:"session"`
	Log        *string `json:"log"`
}

// Load resolves the configuration, reading path when non-empty.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var fc fileConfig
		if err := json.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if err := cfg.applyFile(fc); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFile merges the present file fields into the config.
func (c *Config) applyFile(fc fileConfig) error {
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.Background != nil {
		bg, err := raster.ParseColor(*fc.Background)
		if err != nil {
			return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
		}
		c.Background = bg
	}
	if fc.Session != nil {
		c.SessionPath = *fc.Session
	}
	if fc.Log != nil {
		c.LogPath = *fc.Log
	}
	return nil
}

// applyEnv merges PIXELSTORM_ environment overrides into the config.
func (c *Config) applyEnv() error {
	intVars := []struct {
		name string
		dst  *int
	}{
		{"PIXELSTORM_WIDTH", &c.Width},
		{"PIXELSTORM_HEIGHT", &c.Height},
		{"PIXELSTORM_SCALE", &c.Scale},
	}
	for _, v := range intVars {
		val, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.name, val)
		}
		*v.dst = n
	}

	if val, ok := os.LookupEnv("PIXELSTORM_BACKGROUND"); ok {
		bg, err := raster.ParseColor(val)
		if err != nil {
			return fmt.Errorf("%w: PIXELSTORM_BACKGROUND: %v", ErrInvalidConfig, err)
		}
		c.Background = bg
	}
	if val, ok := os.LookupEnv("PIXELSTORM_SESSION"); ok {
		c.SessionPath = val
	}
	if val, ok := os.LookupEnv("PIXELSTORM_LOG"); ok {
		c.LogPath = val
	}
	return nil
}

// Validate checks the resolved values. Callers that override fields after
// Load must re-validate.
func (c *Config) Validate() error {
	if c.Width < MinGridSize || c.Width > MaxGridSize {
		return fmt.Errorf("%w: width %d outside [%d,%d]", ErrInvalidConfig, c.Width, MinGridSize, MaxGridSize)
	}
	if c.Height < MinGridSize || c.Height > MaxGridSize {
		return fmt.Errorf("%w: height %d outside [%d,%d]", ErrInvalidConfig, c.Height, MinGridSize, MaxGridSize)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d below 1", ErrInvalidConfig, c.Scale)
	}
	return nil
}
