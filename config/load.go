package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/img2ascii/config.toml
//  2. ~/.config/img2ascii/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Keys missing
// from the input keep their default values.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IMG2ASCII_RAMP"); v != "" {
		cfg.Ramp = v
	}
	if v := os.Getenv("IMG2ASCII_FONT"); v != "" {
		cfg.Font = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
// Paths under the home directory are skipped when it cannot be
// determined.
func configSearchPaths() []string {
	var paths []string
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg != "" {
		paths = append(paths, filepath.Join(xdg, "img2ascii", "config.toml"))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return paths
	}

	// Try the default location when XDG_CONFIG_HOME is unset or elsewhere.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "img2ascii", "config.toml"))
	}

	return paths
}
