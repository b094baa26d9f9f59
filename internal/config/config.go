// Package config provides YAML-based configuration for the vsvg binary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reidab/vsvg/plot"
)

// Config is the root configuration structure.
type Config struct {
	// Window settings
	Window WindowConfig `yaml:"window"`

	// Canvas style settings
	Canvas CanvasConfig `yaml:"canvas"`

	// Demo document settings
	Document DocumentConfig `yaml:"document"`
}

// WindowConfig contains window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CanvasConfig contains canvas style settings.
type CanvasConfig struct {
	ShadowOffset float64 `yaml:"shadow_offset"`
	MarkerScale  float64 `yaml:"marker_scale"`
	GridStep     float64 `yaml:"grid_step"`
}

// DocumentConfig contains settings for the demo document producer.
type DocumentConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	Page      string  `yaml:"page"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "vsvg",
			Width:  800,
			Height: 600,
		},
		Canvas: CanvasConfig{
			ShadowOffset: plot.DefaultStyle.ShadowOffset,
			MarkerScale:  plot.DefaultStyle.MarkerScale,
			GridStep:     plot.DefaultStyle.GridStep,
		},
		Document: DocumentConfig{
			Tolerance: 0.1,
			Page:      "a4",
		},
	}
}

// Load loads configuration from a YAML file. Keys absent from the file
// keep their default values; a missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Style returns the canvas style described by the configuration.
func (c *Config) Style() plot.Style {
	return plot.Style{
		ShadowOffset: c.Canvas.ShadowOffset,
		MarkerScale:  c.Canvas.MarkerScale,
		GridStep:     c.Canvas.GridStep,
	}
}
