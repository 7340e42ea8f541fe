// Package config loads gesture tuning values (gestures.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appium-gestures/pkg/gesture"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "250ms" or "1s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the on-disk tuning file. Every field is optional; unset
// values fall back to the tuned defaults in the gesture package.
type Config struct {
	// Crop factors bounding the scrollable window.
	CropFactors gesture.CropFactors `yaml:"cropFactors"`

	// Seek loop tuning.
	ProbeAttempts  int      `yaml:"probeAttempts"`
	ProbeTimeout   Duration `yaml:"probeTimeout"`
	SwipePause     Duration `yaml:"swipePause"`
	SwipeThreshold int      `yaml:"swipeThreshold"`

	// Blind probe swipe fractions of the scrollable extent.
	VerticalProbeFraction   float64 `yaml:"verticalProbeFraction"`
	HorizontalProbeFraction float64 `yaml:"horizontalProbeFraction"`

	// Target settings.
	Platform  string `yaml:"platform"`  // android, ios
	ServerURL string `yaml:"serverURL"` // Appium server
	LogPath   string `yaml:"logPath"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFromDir looks for gestures.yaml or gestures.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"gestures.yaml", "gestures.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// Options converts the file values into gesture options, leaving unset
// fields to be defaulted by the gesture package.
func (c *Config) Options() gesture.Options {
	return gesture.Options{
		CropFactors:             c.CropFactors,
		ProbeAttempts:           c.ProbeAttempts,
		ProbeTimeout:            time.Duration(c.ProbeTimeout),
		SwipePause:              time.Duration(c.SwipePause),
		SwipeThreshold:          c.SwipeThreshold,
		VerticalProbeFraction:   c.VerticalProbeFraction,
		HorizontalProbeFraction: c.HorizontalProbeFraction,
	}
}
