// Package config handles global z157 configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultMaxDepth bounds filter nesting when no config file sets max_depth.
const DefaultMaxDepth = 64

// Output formats for commands that print a tree.
const (
	FormatTree  = "tree"
	FormatPaths = "paths"
	FormatYAML  = "yaml"
)

// Config represents the global z157 configuration.
type Config struct {
	// MaxDepth bounds how deeply field sets may nest. 0 means unbounded.
	MaxDepth int `toml:"max_depth"`

	// Format is the default output format: tree, paths, or yaml.
	Format string `toml:"format"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		Format:   FormatTree,
	}
}

// Validate checks field values that toml decoding cannot.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	switch c.Format {
	case FormatTree, FormatPaths, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", c.Format, FormatTree, FormatPaths, FormatYAML)
	}
	return nil
}

// Load loads the configuration from explicit, or from DefaultPath when
// explicit is empty. A missing default file yields the default config; a
// missing explicit file is an error.
func Load(explicit string) (*Config, error) {
	configPath := ResolveConfigPath(explicit)

	if _, err := os.Stat(configPath); explicit == "" && os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path. Keys missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/z157/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "z157", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "z157", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// ResolveConfigPath returns the explicit path if set, otherwise DefaultPath.
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultPath()
}
