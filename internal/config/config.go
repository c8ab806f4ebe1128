package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds pick configuration.
type Config struct {
	// Theme is the catppuccin flavour used for the interface
	// (mocha, macchiato, frappe, latte).
	Theme string `json:"theme,omitempty" yaml:"theme"`

	// Highlight holds the SGR parameters applied to matched characters,
	// e.g. "1;31" for bold red.
	Highlight string `json:"highlight,omitempty" yaml:"highlight"`

	// RankAll ranks every matching line before cutting the list down to
	// what fits on screen. When false only the first matches in file order
	// are ranked.
	RankAll bool `json:"rank_all,omitempty" yaml:"rank_all"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:     "mocha",
		Highlight: "1;31",
	}
}

// Paths returns the locations searched for a config file, in order.
func Paths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pick", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "pick", "config.yaml"),
			filepath.Join(home, ".pick", "config.json"),
		)
	}
	return paths
}

// LoadFile reads the config from path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON. Unset fields keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	// Override defaults with loaded values
	if loaded.Theme != "" {
		cfg.Theme = loaded.Theme
	}
	if loaded.Highlight != "" {
		cfg.Highlight = loaded.Highlight
	}
	cfg.RankAll = loaded.RankAll

	return cfg, nil
}

// LoadFrom reads the config from the given path, or returns defaults if not
// found or invalid.
func LoadFrom(path string) Config {
	cfg, err := LoadFile(path)
	if err != nil {
		slog.Debug("config ignored", "path", path, "err", err)
		return DefaultConfig()
	}
	return cfg
}

// Load reads the first config file that exists in Paths, or returns
// defaults when there is none.
func Load() Config {
	for _, p := range Paths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFrom(p)
		}
	}
	return DefaultConfig()
}
