package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ruminaider/sift/internal/editor"
	"github.com/ruminaider/sift/internal/match"
	"github.com/ruminaider/sift/internal/session"
	"go.yaml.in/yaml/v3"
)

// PasteAction is the key action that reads the clipboard into the query.
const PasteAction = "paste"

// Themes lists the accepted palette names.
var Themes = []string{"mocha", "macchiato", "frappe", "latte"}

// Config represents ~/.config/sift/config.yaml (or config.toml).
type Config struct {
	Prompt          string            `yaml:"prompt,omitempty" toml:"prompt,omitempty"`
	Lines           int               `yaml:"lines" toml:"lines"`
	Columns         int               `yaml:"columns" toml:"columns"`
	Prefix          bool              `yaml:"prefix" toml:"prefix"`
	CaseInsensitive bool              `yaml:"case_insensitive" toml:"case_insensitive"`
	Delimiters      string            `yaml:"delimiters" toml:"delimiters"`
	Bottom          bool              `yaml:"bottom" toml:"bottom"`
	Capacity        int               `yaml:"capacity" toml:"capacity"`
	MaxItems        int               `yaml:"max_items" toml:"max_items"`
	Theme           string            `yaml:"theme" toml:"theme"`
	Keys            map[string]string `yaml:"keys,omitempty" toml:"keys,omitempty"`
}

// Default returns the built-in configuration: flow layout, substring matching,
// case-sensitive, space-delimited.
func Default() Config {
	return Config{
		Delimiters: match.DefaultDelimiters,
		Capacity:   editor.DefaultCapacity,
		Theme:      "mocha",
	}
}

// Parse parses config.yaml bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ParseTOML parses config.toml bytes on top of the defaults.
func ParseTOML(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// MarshalTOML serializes a Config to TOML bytes.
func MarshalTOML(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads the config at path, choosing the format by extension. A missing
// file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if isTOML(path) {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = MarshalTOML(cfg)
	} else {
		data, err = Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Normalize applies the grid defaults: setting only one of lines or columns
// makes the other 1.
func (c *Config) Normalize() {
	if c.Columns > 0 && c.Lines == 0 {
		c.Lines = 1
	}
	if c.Lines > 0 && c.Columns == 0 {
		c.Columns = 1
	}
	if c.Theme == "" {
		c.Theme = "mocha"
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Lines < 0 {
		return fmt.Errorf("lines must not be negative, got %d", c.Lines)
	}
	if c.Columns < 0 {
		return fmt.Errorf("columns must not be negative, got %d", c.Columns)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max_items must not be negative, got %d", c.MaxItems)
	}
	if c.Theme != "" && !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	for key, action := range c.Keys {
		if action == PasteAction {
			continue
		}
		if _, ok := session.Action(action); !ok {
			return fmt.Errorf("key %q: unknown action %q", key, action)
		}
	}
	return nil
}

// MatchOptions returns the matcher settings.
func (c Config) MatchOptions() match.Options {
	delims := c.Delimiters
	if delims == "" {
		delims = match.DefaultDelimiters
	}
	return match.Options{
		Delimiters:      delims,
		PrefixOnly:      c.Prefix,
		CaseInsensitive: c.CaseInsensitive,
	}
}
