// Package config loads img2ascii settings from a TOML file.
//
// A config file only supplies defaults; command-line flags override it.
//
//	ramp      = "@%#*+=-:. "
//	filter    = "lanczos3"
//	scale     = "120:_"
//	raster    = false
//	font      = "/usr/share/fonts/TTF/DejaVuSansMono.ttf"
//	font_size = 16
//	glyphs    = ""
//	log_level = "info"
package config

import (
	"fmt"

	"github.com/wbrown/img2ascii"
)

// Config holds the settings of a conversion run.
type Config struct {
	// Ramp lists characters from darkest to lightest.
	Ramp string `toml:"ramp"`
	// Filter names the resampling kernel.
	Filter string `toml:"filter"`
	// Scale is a scale expression such as "100", "100:_" or "_:50".
	// Empty means no scaling.
	Scale string `toml:"scale"`
	// Raster selects image output instead of text.
	Raster bool `toml:"raster"`
	// Font is a TrueType font path. Empty selects the bundled font.
	Font string `toml:"font"`
	// FontSize is the glyph cell size in pixels.
	FontSize int `toml:"font_size"`
	// Glyphs is an optional pre-computed .glyphs file.
	Glyphs string `toml:"glyphs"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Ramp:     img2ascii.DefaultRamp,
		Filter:   img2ascii.DefaultFilter.String(),
		FontSize: img2ascii.DefaultCellSize,
		LogLevel: "info",
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := img2ascii.NewRamp(c.Ramp); err != nil {
		return err
	}
	if _, err := img2ascii.ParseFilter(c.Filter); err != nil {
		return err
	}
	if _, err := c.ScaleSpec(); err != nil {
		return err
	}
	if c.FontSize < 1 {
		return fmt.Errorf("invalid font size %d", c.FontSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// ScaleSpec parses Scale. An empty Scale means no scaling.
func (c *Config) ScaleSpec() (img2ascii.ScaleSpec, error) {
	if c.Scale == "" {
		return img2ascii.NoScale, nil
	}
	return img2ascii.ParseScale(c.Scale)
}
