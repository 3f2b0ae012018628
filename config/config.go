// Package config holds the linker's optional configuration file. It governs
// the ancillary surfaces only (report destination, cross-reference output,
// viewer appearance); the linker's diagnostic text is fixed and cannot be
// configured.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded configuration
type Config struct {
	// Output settings
	Output struct {
		File string `toml:"file"` // report destination, empty for stdout
		Xref bool   `toml:"xref"` // always append the cross-reference report
	} `toml:"output"`

	// Viewer settings
	Viewer struct {
		ColorOutput bool   `toml:"color_output"`
		StartPanel  string `toml:"start_panel"` // symbols, map, warnings
		ShowTitles  bool   `toml:"show_titles"`
	} `toml:"viewer"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.File = ""
	cfg.Output.Xref = false

	cfg.Viewer.ColorOutput = true
	cfg.Viewer.StartPanel = "map"
	cfg.Viewer.ShowTitles = true

	return cfg
}

// Path returns the default config file location,
// <user config dir>/marie-linker/config.toml, or a file in the current
// directory when the user config dir cannot be determined
func Path() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(base, "marie-linker", "config.toml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults; a file that decodes is
// validated before use.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks the fields whose values the rest of the program indexes
// on. An empty start panel falls back to the default rather than erroring.
func (c *Config) validate() error {
	switch c.Viewer.StartPanel {
	case "symbols", "map", "warnings":
	case "":
		c.Viewer.StartPanel = "map"
	default:
		return fmt.Errorf("viewer.start_panel must be symbols, map or warnings, not %q", c.Viewer.StartPanel)
	}

	if c.Output.File != "" {
		if dir := filepath.Dir(c.Output.File); dir != "." {
			if info, err := os.Stat(dir); err == nil && !info.IsDir() {
				return fmt.Errorf("output.file directory %s is not a directory", dir)
			}
		}
	}

	return nil
}

// Save writes the configuration to path, or the default location when path
// is empty, creating the directory as needed
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}
	if err := c.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
