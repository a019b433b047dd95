// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// ColorScheme selects the terminal color scheme for rendered output.
	ColorScheme string

	// Config is the portrait application configuration.
	Config struct {
		// ManifestPath is the manifest location relative to the project root.
		ManifestPath string `mapstructure:"manifest_path"`

		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui"`

		// Serve holds settings for the SSH report server.
		Serve ServeConfig `mapstructure:"serve"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// ColorScheme is one of auto, dark, light.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// ServeConfig holds SSH report server settings.
	ServeConfig struct {
		// Host is the address to bind to.
		Host string `mapstructure:"host"`
		// Port is the port to listen on (0 = auto-select).
		Port int `mapstructure:"port"`
	}
)

// IsValid reports whether the color scheme is one of the recognized values.
func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true
	default:
		return false
	}
}

// Validate checks constraints that the CUE schema cannot express because the
// config file may set only a subset of fields.
func (c *Config) Validate() error {
	if !c.UI.ColorScheme.IsValid() {
		return fmt.Errorf("%w: %q (expected auto, dark, or light)", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ManifestPath: "project.toml",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Serve: ServeConfig{
			Host: "127.0.0.1",
			Port: 0,
		},
	}
}
